package lexdawg_test

import (
	"fmt"
	"log"
	"os"

	"github.com/milden6/lexdawg"
	"github.com/milden6/lexdawg/internal/builder"
)

func ExampleDawg_Contains() {
	buf, err := builder.Compile([]string{"cat", "catnip", "cats", "dog"})
	if err != nil {
		log.Fatal(err)
	}

	d, err := lexdawg.New(buf)
	if err != nil {
		log.Fatal(err)
	}

	for _, word := range []string{"cat", "catn", "cats", "do", "dog"} {
		fmt.Println(word, d.Contains(word))
	}

	// Output:
	// cat true
	// catn false
	// cats true
	// do false
	// dog true
}

func ExampleDawg_Dump() {
	buf, err := builder.Compile([]string{"ab"})
	if err != nil {
		log.Fatal(err)
	}

	d, err := lexdawg.New(buf)
	if err != nil {
		log.Fatal(err)
	}

	if err := d.Dump(os.Stdout, 0, -1); err != nil {
		log.Fatal(err)
	}

	// Output:
	//        0  0  a  1
	//        1  0  b  2
	//        2  0  $  0
}

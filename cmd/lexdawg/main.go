// Command lexdawg queries, inspects and compiles DAWG lexicons.
package main

func main() {
	execute()
}

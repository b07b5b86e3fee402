package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testWordList returns the path of the shared test word list
func testWordList(t *testing.T) string {
	t.Helper()
	// Go up two directories from cmd/lexdawg to repo root
	path := filepath.Join("..", "..", "testdata", "words.txt")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("test file not found: %s", path)
	}
	return path
}

// compileLexicon compiles the shared word list with the given codec and
// returns the lexicon path
func compileLexicon(t *testing.T, codec string) string {
	t.Helper()
	resetFlags()
	codecName = codec
	quiet = true

	out := filepath.Join(t.TempDir(), "words."+codec)
	if err := runCompile([]string{testWordList(t), out}); err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	resetFlags()
	codecName = codec
	return out
}

func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	codecName = "deflate"
	checkNormalize = false
	checkStdin = false
	dumpFrom = 0
	dumpCount = -1
	compileNormalize = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

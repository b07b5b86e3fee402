package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name        string
		codec       string
		words       []string
		stdin       string
		normalize   bool
		useStdin    bool
		wantJSON    bool
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "found and missing",
			codec:       "deflate",
			words:       []string{"hello", "qi", "pointiest", "traveler", "qa", "pointierst"},
			wantContain: []string{"hello\ttrue", "qi\ttrue", "pointiest\ttrue", "traveler\ttrue", "qa\tfalse", "pointierst\tfalse"},
		},
		{
			name:        "prefix is not a word",
			codec:       "snappy",
			words:       []string{"hell", "travel"},
			wantContain: []string{"hell\tfalse", "travel\ttrue"},
		},
		{
			name:        "raw lexicon",
			codec:       "raw",
			words:       []string{"zest", "zesty"},
			wantContain: []string{"zest\ttrue", "zesty\tfalse"},
		},
		{
			name:        "exact match by default",
			codec:       "zlib",
			words:       []string{"Hello"},
			wantContain: []string{"Hello\tfalse"},
		},
		{
			name:        "normalize",
			codec:       "zlib",
			words:       []string{"Hello", " TRAVELER ", "Quiét"},
			normalize:   true,
			wantContain: []string{"hello\ttrue", "traveler\ttrue", "quiet\ttrue"},
		},
		{
			name:        "stdin",
			codec:       "deflate",
			stdin:       "oak\n\noaken\noakum\n",
			useStdin:    true,
			wantContain: []string{"oak\ttrue", "oaken\ttrue", "oakum\tfalse"},
		},
		{
			name:        "json",
			codec:       "deflate",
			words:       []string{"cat", "ca"},
			wantJSON:    true,
			wantContain: []string{`"word": "cat"`, `"found": true`, `"found": false`},
		},
		{
			name:    "no words",
			codec:   "deflate",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexicon := compileLexicon(t, tt.codec)
			checkNormalize = tt.normalize
			checkStdin = tt.useStdin
			jsonOut = tt.wantJSON

			args := append([]string{lexicon}, tt.words...)
			output, err := captureOutput(t, func() error {
				return runCheck(args, strings.NewReader(tt.stdin))
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runCheck() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			if tt.wantJSON && !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestCheckCommand_JSONShape(t *testing.T) {
	lexicon := compileLexicon(t, "deflate")
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runCheck([]string{lexicon, "qi", "qa"}, strings.NewReader(""))
	})
	require.NoError(t, err)

	var results []checkResult
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	assert.Equal(t, []checkResult{{Word: "qi", Found: true}, {Word: "qa", Found: false}}, results)
}

func TestCheckCommand_WrongCodec(t *testing.T) {
	lexicon := compileLexicon(t, "raw")
	codecName = "snappy"

	_, err := captureOutput(t, func() error {
		return runCheck([]string{lexicon, "qi"}, strings.NewReader(""))
	})
	assert.ErrorContains(t, err, "failed to open lexicon")
}

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "cafe", normalizeWord("Café"))
	assert.Equal(t, "naive", normalizeWord("  NAÏVE "))
	assert.Equal(t, "hello", normalizeWord("hello"))
}

package main

import (
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want options
	}{
		{
			name: "Defaults",
			argv: []string{"in.bam"},
			want: options{Input: "in.bam", Output: "./output.ubam", KeepLength: 145},
		},
		{
			name: "ShortOutput",
			argv: []string{"in.bam", "-o", "out/trimmed.ubam", "--keep-length", "100"},
			want: options{Input: "in.bam", Output: "out/trimmed.ubam", KeepLength: 100},
		},
		{
			name: "LongOptionsBeforePositional",
			argv: []string{"--keep-length=50", "--output=x.ubam", "in.bam"},
			want: options{Input: "in.bam", Output: "x.ubam", KeepLength: 50},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseArgs(&docopt.Parser{HelpHandler: docopt.NoHelpHandler}, tc.argv)
			require.NoError(t, err)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"MissingInput", []string{}},
		{"ExtraPositional", []string{"a.bam", "b.bam"}},
		{"ZeroKeepLength", []string{"in.bam", "--keep-length", "0"}},
		{"NegativeKeepLength", []string{"in.bam", "--keep-length=-5"}},
		{"NonIntegerKeepLength", []string{"in.bam", "--keep-length", "abc"}},
		{"UnknownFlag", []string{"in.bam", "--threads", "4"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseArgs(&docopt.Parser{HelpHandler: docopt.NoHelpHandler}, tc.argv)
			assert.Error(t, err)
		})
	}
}

// Package lang turns Leaky Buckets source text into instructions.
// Normalization and parsing live here; the engine only ever sees the
// closed Instr union, never raw text patterns.
package lang

import (
	"os"
	"regexp"
	"strings"
)

// Line is one normalized, non-blank source line together with its
// original 1-based line number for error reporting.
type Line struct {
	Text string
	Num  int
}

var (
	commentRe    = regexp.MustCompile(`--.*$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize strips a trailing "--" comment, lowercases, and collapses
// runs of whitespace into single spaces. Returns "" for blank lines.
func Normalize(raw string) string {
	s := commentRe.ReplaceAllString(raw, "")
	s = strings.ToLower(strings.TrimSpace(s))
	return whitespaceRe.ReplaceAllString(s, " ")
}

// SplitLines normalizes a whole source text, dropping blank lines but
// preserving original line numbers.
func SplitLines(src string) []Line {
	var lines []Line
	for i, raw := range strings.Split(src, "\n") {
		text := Normalize(raw)
		if text == "" {
			continue
		}
		lines = append(lines, Line{Text: text, Num: i + 1})
	}
	return lines
}

// LoadFile reads and normalizes a program from disk.
func LoadFile(path string) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

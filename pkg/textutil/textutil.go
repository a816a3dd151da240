// Package textutil holds small text helpers shared by help formatting.
package textutil

import "strings"

// Wrap greedily wraps text into lines of at most width characters, breaking
// on whitespace. Runs of whitespace collapse to a single space. A word
// longer than width gets a line of its own rather than being split.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  []string
		used  int
	)
	for _, word := range strings.Fields(text) {
		switch {
		case used == 0:
			line = []string{word}
			used = len(word)
		case used+1+len(word) > width:
			lines = append(lines, strings.Join(line, " "))
			line = []string{word}
			used = len(word)
		default:
			line = append(line, word)
			used += 1 + len(word)
		}
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return lines
}

// Package analysis provides small text-analysis helpers used by the intake
// workflow, such as counting the word tokens of a submitted complaint.
package analysis

import "strings"

// WordCount returns the number of whitespace-delimited tokens in text.
// strings.Fields collapses runs of whitespace, so "  a   b " counts as 2.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

// nextSequence computes the next yearly sequence value for document
// numbers shaped like EST-2025-014 or INV-2025-003.
//
// It takes the lexicographically greatest number carrying the given
// prefix (zero-padding makes lexicographic and numeric order agree up to
// 999) and increments its trailing segment. Numbers from other years or
// with an unexpected shape are ignored. Returns 1 when nothing matches.
func nextSequence(numbers []string, prefix string) int {
	last := ""
	for _, n := range numbers {
		if strings.HasPrefix(n, prefix) && n > last {
			last = n
		}
	}
	if last == "" {
		return 1
	}
	parts := strings.Split(last, "-")
	if len(parts) != 3 {
		return 1
	}
	v, err := strconv.Atoi(parts[2])
	if err != nil {
		return 1
	}
	return v + 1
}

// formatSequenceNumber renders a document number, e.g. ("EST", 2025, 7)
// becomes EST-2025-007.
func formatSequenceNumber(kind string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", kind, year, seq)
}

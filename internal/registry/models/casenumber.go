package models

import "fmt"

// FormatCaseNumber renders the human-readable dwelling case number, e.g. "2026-0042".
func FormatCaseNumber(year int, seq int64) string {
	return fmt.Sprintf("%d-%04d", year, seq)
}

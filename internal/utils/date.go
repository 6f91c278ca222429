package utils

import (
	"time"

	"github.com/araddon/dateparse"
)

// ParseIssueDate accepts YYYY-MM-DD, RFC3339 and the other layouts dateparse
// understands. Values without a zone are read as UTC.
func ParseIssueDate(raw string) (time.Time, error) {
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

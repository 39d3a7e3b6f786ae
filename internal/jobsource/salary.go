package jobsource

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// formatSalary renders a display string from whatever salary bounds a
// provider supplied: both bounds become a range, a lone minimum gets a
// "+" suffix, anything else renders empty. Zero values count as absent.
func formatSalary(min, max *float64) string {
	switch {
	case present(min) && present(max):
		return fmt.Sprintf("₹%s – ₹%s", humanize.Comma(int64(*min)), humanize.Comma(int64(*max)))
	case present(min):
		return fmt.Sprintf("₹%s+", humanize.Comma(int64(*min)))
	default:
		return ""
	}
}

func present(v *float64) bool {
	return v != nil && *v > 0
}

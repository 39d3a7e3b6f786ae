package skills

import "strings"

const (
	// maxQuerySkills caps how many matched skills feed the search query.
	maxQuerySkills = 5

	// defaultQuery is returned when no skills were matched at all.
	defaultQuery = "software developer"
)

// SearchQuery builds a job-search query from matched skills. The input
// is expected in Vocabulary order, so truncation keeps the
// highest-priority skills.
func SearchQuery(matched []string) string {
	if len(matched) == 0 {
		return defaultQuery
	}
	if len(matched) > maxQuerySkills {
		matched = matched[:maxQuerySkills]
	}
	return strings.Join(matched, " ")
}

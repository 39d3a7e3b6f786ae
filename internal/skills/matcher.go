// Package skills detects technology skills in resume text and turns them
// into job-search queries.
package skills

import "regexp"

// rule pairs a canonical label with its compiled presence pattern.
type rule struct {
	label   string
	pattern *regexp.Regexp
}

// rules holds one compiled pattern per Vocabulary entry, in Vocabulary
// order. Built once at init and read-only afterwards, so concurrent
// matching needs no locking.
var rules = compileRules()

func compileRules() []rule {
	compiled := make([]rule, 0, len(Vocabulary))
	for _, label := range Vocabulary {
		expr, ok := customPatterns[label]
		if !ok {
			expr = `\b` + regexp.QuoteMeta(label) + `\b`
		}
		compiled = append(compiled, rule{label: label, pattern: regexp.MustCompile(expr)})
	}
	return compiled
}

// Extract returns the vocabulary labels present in text, in Vocabulary
// order regardless of where they appear in the text.
//
// Matching is case-SENSITIVE on purpose: case-insensitive or substring
// matching on short labels produces false positives against ordinary
// prose, so a skill is only reported when its exact canonical casing
// appears at a word boundary. A candidate who writes "python" in all
// lowercase is an accepted false negative, not a bug.
func Extract(text string) []string {
	if text == "" {
		return []string{}
	}

	found := make([]string, 0, 8)
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			found = append(found, r.label)
		}
	}
	return found
}

// Cell parsing and code resolution for the curriculum importer.
//
// The resolution rules are keyword heuristics over free-text cells. Every
// resolver has a documented default so that a sparse or sloppy sheet still
// imports; the defaults mirror the most common values in the source
// workbooks.
package importer

import (
	"regexp"
	"strings"

	"github.com/ayurlms/slotrack/pkg/types"
)

// listSeparators splits method and integration cells: commas, semicolons,
// slashes, and parenthesized asides all delimit items.
var listSeparators = regexp.MustCompile(`[,;/()]`)

// cleanText trims a cell value; empty cells become "".
func cleanText(s string) string {
	return strings.TrimSpace(s)
}

// parseList splits a delimited cell into trimmed items, dropping fragments
// shorter than two characters (stray letters left by the separators).
func parseList(s string) []string {
	if s == "" {
		return []string{}
	}
	var items []string
	for _, part := range listSeparators.Split(s, -1) {
		part = strings.TrimSpace(part)
		if len(part) > 1 {
			items = append(items, part)
		}
	}
	if items == nil {
		return []string{}
	}
	return items
}

// capList bounds a list at n items, preserving order.
func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// resolveDomain maps a free-text domain cell to its (code, full form)
// pair. Default is Cognitive / Comprehension.
func resolveDomain(raw string) (string, string) {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "recall") || strings.Contains(lower, "knowledge"):
		return "CK", "Cognitive / Knowledge"
	case strings.Contains(lower, "application"):
		return "CAP", "Cognitive / Application"
	case strings.Contains(lower, "analysis"):
		return "CAN", "Cognitive / Analysis"
	case strings.Contains(lower, "psychomotor"):
		return "PSY-MEC", "Psychomotor / Mechanism"
	case strings.Contains(lower, "affective"):
		return "AFT-RES", "Affective / Responding"
	default:
		return "CC", "Cognitive / Comprehension"
	}
}

// resolvePriority maps a priority cell to its (code, full form) pair.
// Default is Must know. Matching is case-sensitive on the code tokens.
func resolvePriority(raw string) (string, string) {
	switch {
	case strings.Contains(raw, "Dk") || strings.Contains(raw, "Desirable"):
		return types.PriorityDesirable, types.PriorityDesirableFull
	case strings.Contains(raw, "Nk") || strings.Contains(raw, "Nice"):
		return types.PriorityNiceToKnow, types.PriorityNiceFull
	default:
		return types.PriorityMustKnow, types.PriorityMustKnowFull
	}
}

// resolveCompetency maps a competency cell to its (code, full form) pair.
// Default is Knows How. The bare "D" and "K" codes only match exactly;
// "Know " keeps its trailing space to avoid matching "Knows How".
func resolveCompetency(raw string) (string, string) {
	switch {
	case raw == "D" || strings.Contains(raw, "Does"):
		return types.CompetencyDoes, "Does"
	case strings.Contains(raw, "Sh") || strings.Contains(raw, "Shows"):
		return types.CompetencyShowsHow, "Shows How"
	case raw == "K" || strings.Contains(raw, "Know "):
		return types.CompetencyKnows, "Knows"
	default:
		return types.CompetencyKnowsHow, "Knows How"
	}
}

// resolveAssessmentType maps an assessment-type cell to its (code, full
// form) pair. Only the bare codes select a single type; everything else is
// both.
func resolveAssessmentType(raw string) (string, string) {
	switch raw {
	case types.AssessmentSummative:
		return types.AssessmentSummative, types.AssessmentSummativeFull
	case types.AssessmentFormative:
		return types.AssessmentFormative, types.AssessmentFormativeFull
	default:
		return types.AssessmentBoth, types.AssessmentBothFull
	}
}

// resolveTerm accepts only the three literal terms; anything else
// defaults to term I.
func resolveTerm(raw string) string {
	if types.ValidTerm(raw) {
		return raw
	}
	return types.TermI
}

// Package importer reads the combined curriculum workbook and loads its
// learning objectives into the store.
//
// The workbook layout is only loosely structured: each subject sheet has a
// header row somewhere near the top, column labels that vary between
// sheets, and topic rows interleaved with objective rows. The importer is
// therefore heuristic throughout — header discovery by marker tokens,
// column roles by substring matching, and per-field keyword resolution
// with defaults. A malformed sheet or row is skipped and recorded, never
// fatal; only an unopenable workbook aborts the import.
package importer

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ayurlms/slotrack/internal/sqlite"
	"github.com/ayurlms/slotrack/pkg/types"
)

// headerScanRows bounds the header search window per sheet.
const headerScanRows = 30

// Skip reasons.
const (
	SkipNoHeader          = "no_header"
	SkipNoObjectiveColumn = "no_objective_column"
	SkipRowRejected       = "row_rejected"
)

// Skip records one sheet or row the importer could not process. Row is
// 1-based and 0 for sheet-level skips.
type Skip struct {
	Sheet  string `json:"sheet"`
	Row    int    `json:"row,omitempty"`
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

// Result reports an import run. Imported counts stored objectives across
// all sheets; Skips itemizes what was left out and why. A zero Imported
// with a populated Skips list tells the caller the workbook was readable
// but unusable.
type Result struct {
	Imported int    `json:"imported"`
	Skips    []Skip `json:"skips,omitempty"`
}

// Import loads every known curriculum sheet of the workbook at path into
// the store. Sheets with unrecognized names are ignored; recognized sheets
// that cannot be parsed contribute a Skip. Returns an error only when the
// workbook itself cannot be opened or read.
func Import(path string, store *sqlite.Store) (Result, error) {
	var res Result

	f, err := excelize.OpenFile(path)
	if err != nil {
		return res, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		subject, ok := SubjectForSheet(sheet)
		if !ok {
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return res, fmt.Errorf("reading sheet %s: %w", sheet, err)
		}
		importSheet(store, subject, sheet, rows, &res)
	}
	return res, nil
}

// importSheet processes one recognized sheet, appending its objectives and
// skips to res.
func importSheet(store *sqlite.Store, subject Subject, sheet string, rows [][]string, res *Result) {
	headerIdx := findHeader(rows)
	if headerIdx < 0 {
		res.Skips = append(res.Skips, Skip{Sheet: sheet, Reason: SkipNoHeader})
		return
	}

	cols := mapColumns(rows[headerIdx])
	if cols.b3 < 0 {
		res.Skips = append(res.Skips, Skip{Sheet: sheet, Reason: SkipNoObjectiveColumn})
		return
	}

	// Cross-row fold state: a topic row labels all objective rows beneath
	// it until the next topic row.
	var topicShort, topicFull string

	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]

		if a3 := cleanText(cell(row, cols.a3)); a3 != "" {
			if strings.Contains(a3, "Topic") {
				parts := strings.Fields(a3)
				if len(parts) >= 2 {
					topicShort = parts[0] + " " + parts[1]
				} else if len(parts) == 1 {
					topicShort = parts[0]
				}
				topicFull = a3
			} else if strings.HasPrefix(a3, "CO") {
				topicShort = a3
				if topicFull == "" {
					topicFull = a3
				}
			}
		}

		text := cleanText(cell(row, cols.b3))
		if text == "" || len(text) < types.MinObjectiveLength {
			continue
		}
		// Repeated header fragments inside the data region.
		if strings.Contains(strings.ToLower(text), "learning objective") {
			continue
		}

		o := buildObjective(subject, topicShort, topicFull, text, row, cols)
		if _, err := store.InsertObjective(o); err != nil {
			res.Skips = append(res.Skips, Skip{
				Sheet:  sheet,
				Row:    i + 1,
				Reason: SkipRowRejected,
				Detail: err.Error(),
			})
			continue
		}
		res.Imported++
	}
}

// buildObjective resolves one data row into a stored objective, applying
// the per-field defaults.
func buildObjective(subject Subject, topicShort, topicFull, text string, row []string, cols columnMap) *types.Objective {
	o := &types.Objective{
		SubjectCode: subject.Code,
		SubjectName: subject.Name,
		Year:        subject.Year,
		Text:        text,
	}

	o.TopicNumber = topicShort
	o.TopicName = topicFull
	o.CourseOutcome = topicShort
	if o.TopicNumber == "" {
		o.TopicNumber = "Topic 1"
	}
	if o.CourseOutcome == "" {
		o.CourseOutcome = "CO 1"
	}
	o.ProgrammeOutcome = "PO1, PO2"

	o.DomainCode, o.DomainFull = resolveDomain(cleanText(cell(row, cols.c3)))
	o.PriorityLevel, o.PriorityFull = resolvePriority(cleanText(cell(row, cols.d3)))
	o.CompetencyLevel, o.CompetencyFull = resolveCompetency(cleanText(cell(row, cols.e3)))

	if raw := cleanText(cell(row, cols.f3)); raw != "" {
		o.TeachingMethods = capList(parseList(raw), types.MaxMethodCodes)
	} else {
		o.TeachingMethods = []string{"Lecture"}
	}
	if raw := cleanText(cell(row, cols.g3)); raw != "" {
		o.AssessmentMethods = capList(parseList(raw), types.MaxMethodCodes)
	} else {
		o.AssessmentMethods = []string{"Written"}
	}

	o.AssessmentType, o.AssessmentTypeFull = resolveAssessmentType(cleanText(cell(row, cols.h3)))
	o.Term = resolveTerm(cleanText(cell(row, cols.i3)))
	o.IntegrationCodes = parseList(cleanText(cell(row, cols.j3)))
	return o
}

// findHeader returns the index of the first row in the scan window whose
// concatenated non-empty cells contain both header marker tokens, or -1.
func findHeader(rows [][]string) int {
	limit := len(rows)
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for i := 0; i < limit; i++ {
		var parts []string
		for _, c := range rows[i] {
			if strings.TrimSpace(c) != "" {
				parts = append(parts, c)
			}
		}
		joined := strings.Join(parts, " ")
		if strings.Contains(joined, "A3") && strings.Contains(joined, "Course outcome") {
			return i
		}
	}
	return -1
}

// columnMap holds the column index per role; -1 means the role was not
// found on the sheet.
type columnMap struct {
	a3, b3, c3, d3, e3, f3, g3, h3, i3, j3 int
}

// mapColumns assigns a role to each header label by an ordered substring
// test; the first matching predicate decides the column's role, and
// unmatched columns are ignored. When two columns claim the same role the
// later one wins.
func mapColumns(labels []string) columnMap {
	m := columnMap{a3: -1, b3: -1, c3: -1, d3: -1, e3: -1, f3: -1, g3: -1, h3: -1, i3: -1, j3: -1}
	for idx, label := range labels {
		l := strings.ToLower(label)
		switch {
		case strings.Contains(l, "a3") || strings.Contains(l, "course outcome"):
			m.a3 = idx
		case strings.Contains(l, "b3") || strings.Contains(l, "learning objective"):
			m.b3 = idx
		case strings.Contains(l, "c3") || strings.Contains(l, "domain"):
			m.c3 = idx
		case strings.Contains(l, "d3") || strings.Contains(l, "must"):
			m.d3 = idx
		case strings.Contains(l, "e3") || strings.Contains(l, "level"):
			m.e3 = idx
		case strings.Contains(l, "f3") || strings.Contains(l, "t-l"):
			m.f3 = idx
		case strings.Contains(l, "g3") ||
			(strings.Contains(l, "assessment") && !strings.Contains(l, "formative")):
			m.g3 = idx
		case strings.Contains(l, "h3") || strings.Contains(l, "formative"):
			m.h3 = idx
		case strings.Contains(l, "i3") || strings.TrimSpace(l) == "term":
			m.i3 = idx
		case strings.Contains(l, "j3") || strings.Contains(l, "integration"):
			m.j3 = idx
		}
	}
	return m
}

// cell returns the trimmed-by-caller cell at idx, tolerating short rows
// and missing columns.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Package export renders query results as CSV or workbook snapshots. Both
// writers make the same guarantee: one row per record, header equal to
// field names, row order preserved.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ayurlms/slotrack/pkg/types"
)

// WriteCSV writes the header and rows to w in CSV form.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteWorkbook writes the header and rows to a single-sheet workbook at
// path.
func WriteWorkbook(path, sheet string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cellRef, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("addressing row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheet, cellRef, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", rowNum, err)
	}
	return nil
}

// objectiveHeader is the column set shared by objective and coverage
// exports.
var objectiveHeader = []string{
	"subject_code", "subject_name", "year", "topic_number", "topic_name",
	"learning_objective_text", "domain_code", "priority_level",
	"competency_level", "teaching_methods", "assessment_methods",
	"assessment_type", "term", "course_outcome", "programme_outcome",
	"integration_codes",
}

// ObjectiveRows flattens objectives into exportable rows.
func ObjectiveRows(objectives []*types.Objective) ([]string, [][]string) {
	rows := make([][]string, 0, len(objectives))
	for _, o := range objectives {
		rows = append(rows, objectiveRow(o))
	}
	return objectiveHeader, rows
}

// CoverageRows flattens covered objectives into exportable rows, with the
// coverage date appended.
func CoverageRows(covered []types.CoveredObjective) ([]string, [][]string) {
	header := append(append([]string{}, objectiveHeader...), "coverage_date")
	rows := make([][]string, 0, len(covered))
	for i := range covered {
		row := objectiveRow(&covered[i].Objective)
		rows = append(rows, append(row, covered[i].CoverageDate.Format("2006-01-02")))
	}
	return header, rows
}

func objectiveRow(o *types.Objective) []string {
	return []string{
		o.SubjectCode, o.SubjectName, strconv.Itoa(o.Year),
		o.TopicNumber, o.TopicName, o.Text,
		o.DomainCode, o.PriorityLevel, o.CompetencyLevel,
		strings.Join(o.TeachingMethods, ", "),
		strings.Join(o.AssessmentMethods, ", "),
		o.AssessmentType, o.Term,
		o.CourseOutcome, o.ProgrammeOutcome,
		strings.Join(o.IntegrationCodes, ", "),
	}
}

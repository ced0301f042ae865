package export

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ayurlms/slotrack/pkg/types"
)

func sampleObjective() *types.Objective {
	return &types.Objective{
		SubjectCode:       "AyUG-KS",
		SubjectName:       "Kriya Sharir",
		Year:              1,
		TopicNumber:       "Topic 1",
		TopicName:         "Topic 1 Dosha Vignaniyam",
		Text:              "Describe the physiological functions of vata dosha",
		DomainCode:        "CC",
		PriorityLevel:     "Mk",
		CompetencyLevel:   "Kh",
		TeachingMethods:   []string{"L", "DIS"},
		AssessmentMethods: []string{"Viva"},
		AssessmentType:    "F & S",
		Term:              "I",
		CourseOutcome:     "CO 1",
		ProgrammeOutcome:  "PO1, PO2",
		IntegrationCodes:  []string{"H-RS"},
	}
}

func TestWriteCSV(t *testing.T) {
	header, rows := ObjectiveRows([]*types.Objective{sampleObjective()})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, header, rows))

	out := buf.String()
	lines := bytes.Count([]byte(out), []byte("\n"))
	assert.Equal(t, 2, lines)
	assert.Contains(t, out, "subject_code,subject_name")
	assert.Contains(t, out, "Describe the physiological functions of vata dosha")
	assert.Contains(t, out, `"L, DIS"`)
}

func TestWriteCSVEmptyResult(t *testing.T) {
	header, rows := ObjectiveRows(nil)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, header, rows))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestWriteWorkbookRoundTrip(t *testing.T) {
	header, rows := ObjectiveRows([]*types.Objective{sampleObjective()})
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, WriteWorkbook(path, "Objectives", header, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Objectives")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "subject_code", got[0][0])
	assert.Equal(t, "AyUG-KS", got[1][0])
	assert.Contains(t, got[1], "Describe the physiological functions of vata dosha")
}

func TestCoverageRowsAppendDate(t *testing.T) {
	covered := []types.CoveredObjective{{
		Objective:    *sampleObjective(),
		CoverageDate: time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
	}}

	header, rows := CoverageRows(covered)
	assert.Equal(t, "coverage_date", header[len(header)-1])
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-01-15", rows[0][len(rows[0])-1])
	assert.Len(t, rows[0], len(header))
}

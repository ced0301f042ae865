package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayurlms/slotrack/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedSubject inserts n objectives for a subject and returns their IDs in
// insertion order.
func seedSubject(t *testing.T, s *Store, subjectCode string, n int) []string {
	t.Helper()

	texts := []string{
		"Describe the physiological functions of vata dosha",
		"Explain the seasonal variation of dosha predominance",
		"Enumerate the subtypes of pitta with their seats",
		"Describe the formation and functions of mala",
		"Explain the concept of agni and its clinical relevance",
	}
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := s.InsertObjective(testObjective(subjectCode, texts[i%len(texts)]))
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestAddDiaryEntryLogsCoverage(t *testing.T) {
	s := newTestStore(t)
	ids := seedSubject(t, s, "AyUG-KS", 3)
	teacherID := createTestTeacher(t, s, "vaidya", "secret-pass")

	entry := &types.DiaryEntry{
		TeacherID:    teacherID,
		SubjectCode:  "AyUG-KS",
		EntryDate:    date(2026, time.January, 15),
		Term:         types.TermII,
		PeriodNumber: 3,
		Remarks:      "covered dosha basics",
	}
	diaryID, err := s.AddDiaryEntry(entry, ids[:2])
	require.NoError(t, err)
	require.NotEmpty(t, diaryID)

	stats, err := s.CoverageStats(teacherID, "AyUG-KS")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Covered)
}

func TestAddDiaryEntryValidation(t *testing.T) {
	s := newTestStore(t)
	teacherID := createTestTeacher(t, s, "vaidya", "secret-pass")

	_, err := s.AddDiaryEntry(&types.DiaryEntry{SubjectCode: "AyUG-KS"}, nil)
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = s.AddDiaryEntry(&types.DiaryEntry{
		TeacherID: teacherID, SubjectCode: "AyUG-KS", Term: "IV",
	}, nil)
	assert.ErrorIs(t, err, types.ErrInvalidTerm)
}

func TestLogCoverageIsIdempotentPerDay(t *testing.T) {
	s := newTestStore(t)
	ids := seedSubject(t, s, "AyUG-KS", 2)
	teacherID := createTestTeacher(t, s, "vaidya", "secret-pass")
	day := date(2026, time.January, 15)

	require.NoError(t, s.LogCoverage(teacherID, "AyUG-KS", ids[0], day))
	require.NoError(t, s.LogCoverage(teacherID, "AyUG-KS", ids[0], day))

	history, err := s.CoverageHistory(teacherID, "AyUG-KS")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestCoverageStatsDistinctCounting(t *testing.T) {
	s := newTestStore(t)
	ids := seedSubject(t, s, "AyUG-KS", 4)
	teacherID := createTestTeacher(t, s, "vaidya", "secret-pass")

	// Same objective on two different dates still counts once.
	require.NoError(t, s.LogCoverage(teacherID, "AyUG-KS", ids[0], date(2026, time.January, 10)))
	require.NoError(t, s.LogCoverage(teacherID, "AyUG-KS", ids[0], date(2026, time.January, 20)))
	require.NoError(t, s.LogCoverage(teacherID, "AyUG-KS", ids[1], date(2026, time.January, 20)))

	stats, err := s.CoverageStats(teacherID, "AyUG-KS")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Covered)
	assert.Equal(t, 50.0, stats.Percentage)
}

func TestCoverageStatsByPriority(t *testing.T) {
	s := newTestStore(t)
	teacherID := createTestTeacher(t, s, "vaidya", "secret-pass")

	mk, err := s.InsertObjective(testObjective("AyUG-KS", "Describe the physiological functions of vata dosha"))
	require.NoError(t, err)

	dk := testObjective("AyUG-KS", "Explain the seasonal variation of dosha predominance")
	dk.PriorityLevel = types.PriorityDesirable
	_, err = s.InsertObjective(dk)
	require.NoError(t, err)

	require.NoError(t, s.LogCoverage(teacherID, "AyUG-KS", mk, date(2026, time.February, 1)))

	stats, err := s.CoverageStats(teacherID, "AyUG-KS")
	require.NoError(t, err)
	require.Contains(t, stats.ByPriority, types.PriorityMustKnow)
	require.Contains(t, stats.ByPriority, types.PriorityDesirable)
	assert.Equal(t, types.PriorityStats{Total: 1, Covered: 1, Percentage: 100}, stats.ByPriority[types.PriorityMustKnow])
	assert.Equal(t, types.PriorityStats{Total: 1, Covered: 0, Percentage: 0}, stats.ByPriority[types.PriorityDesirable])
}

func TestCoverageStatsEmptySubject(t *testing.T) {
	s := newTestStore(t)
	teacherID := createTestTeacher(t, s, "vaidya", "secret-pass")

	stats, err := s.CoverageStats(teacherID, "AyUG-KS")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Covered)
	assert.Equal(t, 0.0, stats.Percentage)
}

func TestCoverageStatsIsolatedPerTeacher(t *testing.T) {
	s := newTestStore(t)
	ids := seedSubject(t, s, "AyUG-KS", 2)
	first := createTestTeacher(t, s, "vaidya", "secret-pass")
	second := createTestTeacher(t, s, "acharya", "secret-pass")

	require.NoError(t, s.LogCoverage(first, "AyUG-KS", ids[0], date(2026, time.March, 1)))

	stats, err := s.CoverageStats(second, "AyUG-KS")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 0, stats.Covered)
}

func TestMonthlyCoverage(t *testing.T) {
	s := newTestStore(t)
	ids := seedSubject(t, s, "AyUG-KS", 3)
	teacherID := createTestTeacher(t, s, "vaidya", "secret-pass")

	require.NoError(t, s.LogCoverage(teacherID, "AyUG-KS", ids[0], date(2026, time.January, 5)))
	require.NoError(t, s.LogCoverage(teacherID, "AyUG-KS", ids[1], date(2026, time.January, 25)))
	require.NoError(t, s.LogCoverage(teacherID, "AyUG-KS", ids[2], date(2026, time.February, 2)))

	january, err := s.MonthlyCoverage(teacherID, "AyUG-KS", 2026, time.January)
	require.NoError(t, err)
	require.Len(t, january, 2)
	assert.Equal(t, date(2026, time.January, 5), january[0].CoverageDate)
	assert.Equal(t, date(2026, time.January, 25), january[1].CoverageDate)

	march, err := s.MonthlyCoverage(teacherID, "AyUG-KS", 2026, time.March)
	require.NoError(t, err)
	assert.Empty(t, march)
}

func TestCoverageHistoryNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ids := seedSubject(t, s, "AyUG-KS", 2)
	teacherID := createTestTeacher(t, s, "vaidya", "secret-pass")

	require.NoError(t, s.LogCoverage(teacherID, "AyUG-KS", ids[0], date(2026, time.January, 5)))
	require.NoError(t, s.LogCoverage(teacherID, "AyUG-KS", ids[1], date(2026, time.February, 5)))

	history, err := s.CoverageHistory(teacherID, "AyUG-KS")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, date(2026, time.February, 5), history[0].CoverageDate)
	assert.Equal(t, date(2026, time.January, 5), history[1].CoverageDate)
}

func TestPercentageRounding(t *testing.T) {
	tests := []struct {
		covered, total int
		want           float64
	}{
		{0, 0, 0},
		{0, 10, 0},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{10, 10, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, percentage(tt.covered, tt.total))
	}
}

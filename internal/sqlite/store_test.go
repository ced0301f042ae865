package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayurlms/slotrack/pkg/types"
)

// newTestStore opens a store against a fresh temp directory and registers
// cleanup.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s := New()
	cfg := types.Config{DataDir: t.TempDir(), AcademicYear: "2025-26"}
	require.NoError(t, s.Open(cfg))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	s := New()
	require.NoError(t, s.Open(types.Config{DataDir: dir, AcademicYear: "2025-26"}))
	defer s.Close()

	assert.FileExists(t, filepath.Join(dir, DBFileName))
	assert.Equal(t, "2025-26", s.AcademicYear())
}

func TestOpenTwiceFails(t *testing.T) {
	s := newTestStore(t)
	err := s.Open(types.Config{DataDir: t.TempDir(), AcademicYear: "2025-26"})
	assert.ErrorIs(t, err, types.ErrStoreOpen)
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  types.Config
		want error
	}{
		{"empty data dir", types.Config{AcademicYear: "2025-26"}, types.ErrDataDirEmpty},
		{"bad academic year", types.Config{DataDir: "/tmp/x", AcademicYear: "25-26"}, types.ErrAcademicYearInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Open(tt.cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err := s.SubjectSummaries()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestClosedStoreRejectsOperations(t *testing.T) {
	s := New()

	_, err := s.InsertObjective(&types.Objective{})
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.CoverageStats("t", "s")
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	err = s.LogCoverage("t", "s", "o", nowUTC())
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestReopenPreservesDataAndSkipsSeed(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{DataDir: dir, AcademicYear: "2025-26"}

	s := New()
	require.NoError(t, s.Open(cfg))

	domains, err := s.Lookup(types.LookupDomains)
	require.NoError(t, err)
	require.Len(t, domains, 18)

	_, err = s.InsertObjective(testObjective("AyUG-KS", "Describe the functions of dosha in health"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Second open against the same directory must not duplicate seed rows
	// or lose data.
	s2 := New()
	require.NoError(t, s2.Open(cfg))
	defer s2.Close()

	domains, err = s2.Lookup(types.LookupDomains)
	require.NoError(t, err)
	assert.Len(t, domains, 18)

	ready, err := s2.Ready()
	require.NoError(t, err)
	assert.True(t, ready)
}

func TestReadyOnEmptyStore(t *testing.T) {
	s := newTestStore(t)
	ready, err := s.Ready()
	require.NoError(t, err)
	assert.False(t, ready)
}

func TestLookupTables(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name  string
		count int
	}{
		{types.LookupDomains, 18},
		{types.LookupTeachingMethods, 20},
		{types.LookupAssessmentMethods, 12},
		{types.LookupPriorities, 3},
		{types.LookupCompetencies, 4},
		{types.LookupIntegrations, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := s.Lookup(tt.name)
			require.NoError(t, err)
			assert.Len(t, entries, tt.count)
			for i := 1; i < len(entries); i++ {
				assert.Less(t, entries[i-1].DisplayOrder, entries[i].DisplayOrder)
			}
		})
	}
}

func TestLookupUnknownName(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Lookup("nonsense")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestLookupPriorityContent(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.Lookup(types.LookupPriorities)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Mk", entries[0].Code)
	assert.Equal(t, "Must know", entries[0].Full)
	assert.Empty(t, entries[0].Category)
}

func TestGenerateIDIsSortableByTime(t *testing.T) {
	a := generateID()
	b := generateID()
	assert.NotEqual(t, a, b)
	// UUID v7 encodes a millisecond timestamp in its leading bits, so two
	// IDs generated in order never sort reversed.
	assert.LessOrEqual(t, a[:8], b[:8])
}

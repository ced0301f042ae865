package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayurlms/slotrack/pkg/types"
)

// testObjective builds a minimal valid objective for a subject.
func testObjective(subjectCode, text string) *types.Objective {
	return &types.Objective{
		SubjectCode:       subjectCode,
		SubjectName:       "Kriya Sharir",
		Year:              1,
		PaperNumber:       "Paper 1",
		TopicNumber:       "Topic 1",
		TopicName:         "Dosha",
		Text:              text,
		DomainCode:        "CC",
		DomainFull:        "Cognitive / Comprehension",
		PriorityLevel:     types.PriorityMustKnow,
		PriorityFull:      types.PriorityMustKnowFull,
		CompetencyLevel:   types.CompetencyKnowsHow,
		CompetencyFull:    "Knows How",
		TeachingMethods:   []string{"Lecture"},
		AssessmentMethods: []string{"Written"},
		AssessmentType:    types.AssessmentBoth,
		Term:              types.TermI,
	}
}

func TestInsertObjectiveRoundTrip(t *testing.T) {
	s := newTestStore(t)

	o := testObjective("AyUG-KS", "Describe the physiological functions of vata dosha")
	o.IntegrationCodes = []string{"H-RS", "V-KC"}
	o.LectureHours = 2.5

	id, err := s.InsertObjective(o)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.ObjectiveByID(id)
	require.NoError(t, err)
	assert.Equal(t, "AyUG-KS", got.SubjectCode)
	assert.Equal(t, o.Text, got.Text)
	assert.Equal(t, []string{"Lecture"}, got.TeachingMethods)
	assert.Equal(t, []string{"H-RS", "V-KC"}, got.IntegrationCodes)
	assert.Equal(t, 2.5, got.LectureHours)
	assert.Equal(t, types.StatusActive, got.Status)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestInsertObjectiveValidation(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name string
		o    *types.Objective
		want error
	}{
		{"empty text", testObjective("AyUG-KS", ""), types.ErrEmptyObjective},
		{"short text", testObjective("AyUG-KS", "too short"), types.ErrEmptyObjective},
		{"missing subject", testObjective("", "Describe the functions of pitta dosha"), types.ErrSubjectUnknown},
		{"bad term", func() *types.Objective {
			o := testObjective("AyUG-KS", "Describe the functions of pitta dosha")
			o.Term = "IV"
			return o
		}(), types.ErrInvalidTerm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.InsertObjective(tt.o)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestObjectivesBySubjectFilters(t *testing.T) {
	s := newTestStore(t)

	mk := testObjective("AyUG-KS", "Describe the physiological functions of vata dosha")
	mk.Term = types.TermI
	_, err := s.InsertObjective(mk)
	require.NoError(t, err)

	dk := testObjective("AyUG-KS", "Explain the seasonal variation of dosha predominance")
	dk.PriorityLevel = types.PriorityDesirable
	dk.Term = types.TermII
	_, err = s.InsertObjective(dk)
	require.NoError(t, err)

	other := testObjective("AyUG-RS", "Describe the surface anatomy of the thorax in detail")
	_, err = s.InsertObjective(other)
	require.NoError(t, err)

	all, err := s.ObjectivesBySubject("AyUG-KS", types.ObjectiveFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	termII, err := s.ObjectivesBySubject("AyUG-KS", types.ObjectiveFilter{Term: types.TermII})
	require.NoError(t, err)
	require.Len(t, termII, 1)
	assert.Equal(t, dk.Text, termII[0].Text)

	// Filters combine with AND; a matching term with a non-matching
	// priority yields nothing.
	none, err := s.ObjectivesBySubject("AyUG-KS", types.ObjectiveFilter{
		Term:     types.TermII,
		Priority: types.PriorityMustKnow,
	})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestObjectivesBySubjectOrdering(t *testing.T) {
	s := newTestStore(t)

	// Insert out of paper/topic order; retrieval must sort by paper, then
	// topic, then insertion order.
	second := testObjective("AyUG-KS", "Describe the formation and functions of mala")
	second.PaperNumber = "Paper 2"
	second.TopicNumber = "Topic 1"
	_, err := s.InsertObjective(second)
	require.NoError(t, err)

	firstB := testObjective("AyUG-KS", "Enumerate the subtypes of pitta with their seats")
	firstB.PaperNumber = "Paper 1"
	firstB.TopicNumber = "Topic 2"
	_, err = s.InsertObjective(firstB)
	require.NoError(t, err)

	firstA := testObjective("AyUG-KS", "Describe the physiological functions of vata dosha")
	firstA.PaperNumber = "Paper 1"
	firstA.TopicNumber = "Topic 1"
	_, err = s.InsertObjective(firstA)
	require.NoError(t, err)

	got, err := s.ObjectivesBySubject("AyUG-KS", types.ObjectiveFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, firstA.Text, got[0].Text)
	assert.Equal(t, firstB.Text, got[1].Text)
	assert.Equal(t, second.Text, got[2].Text)
}

func TestSearchObjectives(t *testing.T) {
	s := newTestStore(t)

	_, err := s.InsertObjective(testObjective("AyUG-KS", "Describe the physiological functions of vata dosha"))
	require.NoError(t, err)
	_, err = s.InsertObjective(testObjective("AyUG-KS", "Explain the concept of agni and its clinical relevance"))
	require.NoError(t, err)

	hits, err := s.SearchObjectives("AyUG-KS", "agni")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Contains(t, hits[0].Text, "agni")

	// Topic name matches too.
	hits, err = s.SearchObjectives("AyUG-KS", "Dosha")
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = s.SearchObjectives("AyUG-KS", "nothing-here")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestObjectiveByIDNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ObjectiveByID("no-such-id")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.ObjectiveByID("")
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestSubjectSummaries(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		_, err := s.InsertObjective(testObjective("AyUG-KS", "Describe the physiological functions of vata dosha"))
		require.NoError(t, err)
	}
	third := testObjective("AyUG-ST", "Describe the classification of shastra and anushastra")
	third.SubjectName = "Shalya Tantra"
	third.Year = 3
	_, err := s.InsertObjective(third)
	require.NoError(t, err)

	subjects, err := s.SubjectSummaries()
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "AyUG-KS", subjects[0].SubjectCode)
	assert.Equal(t, 3, subjects[0].Objectives)
	assert.Equal(t, "AyUG-ST", subjects[1].SubjectCode)
	assert.Equal(t, 3, subjects[1].Year)
}

package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "Lecture", []string{"Lecture"}},
		{"commas", "Lec, DIS, PBL", []string{"Lec", "DIS", "PBL"}},
		{"slashes", "Viva/OSPE", []string{"Viva", "OSPE"}},
		{"parens", "Lecture (with demonstration)", []string{"Lecture", "with demonstration"}},
		{"drops one-char fragments", "L, DIS", []string{"DIS"}},
		{"mixed separators", "T-MEQs; P-VIVA, SA", []string{"T-MEQs", "P-VIVA", "SA"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseList(tt.in))
		})
	}
}

func TestCapList(t *testing.T) {
	assert.Equal(t, []string{"a1", "b2", "c3"}, capList([]string{"a1", "b2", "c3", "d4"}, 3))
	assert.Equal(t, []string{"a1"}, capList([]string{"a1"}, 3))
}

func TestResolveDomain(t *testing.T) {
	tests := []struct {
		in, code string
	}{
		{"", "CC"},
		{"Comprehension", "CC"},
		{"Recall of facts", "CK"},
		{"Knowledge", "CK"},
		{"Application in clinic", "CAP"},
		{"Analysis", "CAN"},
		{"Psychomotor skill", "PSY-MEC"},
		{"Affective domain", "AFT-RES"},
	}
	for _, tt := range tests {
		code, full := resolveDomain(tt.in)
		assert.Equal(t, tt.code, code, "input %q", tt.in)
		assert.NotEmpty(t, full)
	}
}

func TestResolvePriority(t *testing.T) {
	tests := []struct {
		in, code string
	}{
		{"", "Mk"},
		{"Mk", "Mk"},
		{"Must know", "Mk"},
		{"Dk", "Dk"},
		{"Desirable to know", "Dk"},
		{"Nk", "Nk"},
		{"Nice to know", "Nk"},
	}
	for _, tt := range tests {
		code, _ := resolvePriority(tt.in)
		assert.Equal(t, tt.code, code, "input %q", tt.in)
	}
}

func TestResolveCompetency(t *testing.T) {
	tests := []struct {
		in, code string
	}{
		{"", "Kh"},
		{"KH", "Kh"},
		{"D", "D"},
		{"Does", "D"},
		{"Sh", "Sh"},
		{"Shows How", "Sh"},
		{"K", "K"},
		{"Know this", "K"},
		// "Knows How" must not fall into the bare-K bucket.
		{"Knows How", "Kh"},
	}
	for _, tt := range tests {
		code, _ := resolveCompetency(tt.in)
		assert.Equal(t, tt.code, code, "input %q", tt.in)
	}
}

func TestResolveAssessmentType(t *testing.T) {
	tests := []struct {
		in, code string
	}{
		{"", "F & S"},
		{"F & S", "F & S"},
		{"S", "S"},
		{"F", "F"},
		// Only the bare codes narrow the type.
		{"Formative", "F & S"},
	}
	for _, tt := range tests {
		code, _ := resolveAssessmentType(tt.in)
		assert.Equal(t, tt.code, code, "input %q", tt.in)
	}
}

func TestResolveTerm(t *testing.T) {
	assert.Equal(t, "I", resolveTerm(""))
	assert.Equal(t, "I", resolveTerm("Term 2"))
	assert.Equal(t, "II", resolveTerm("II"))
	assert.Equal(t, "III", resolveTerm("III"))
}

func TestSubjectForSheet(t *testing.T) {
	s, ok := SubjectForSheet("LMS1_KS")
	assert.True(t, ok)
	assert.Equal(t, Subject{"AyUG-KS", "Kriya Sharir", 1}, s)

	_, ok = SubjectForSheet("Notes")
	assert.False(t, ok)
}

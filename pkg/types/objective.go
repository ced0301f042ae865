package types

import (
	"strings"
	"time"
)

// Priority tiers (must/desirable/nice to know).
const (
	PriorityMustKnow      = "Mk"
	PriorityDesirable     = "Dk"
	PriorityNiceToKnow    = "Nk"
	PriorityMustKnowFull  = "Must know"
	PriorityDesirableFull = "Desirable to know"
	PriorityNiceFull      = "Nice to know"
)

// Competency levels, Miller's pyramid.
const (
	CompetencyKnows    = "K"
	CompetencyKnowsHow = "Kh"
	CompetencyShowsHow = "Sh"
	CompetencyDoes     = "D"
)

// Assessment types.
const (
	AssessmentFormative     = "F"
	AssessmentSummative     = "S"
	AssessmentBoth          = "F & S"
	AssessmentFormativeFull = "Formative"
	AssessmentSummativeFull = "Summative"
	AssessmentBothFull      = "Formative & Summative"
)

// Academic terms.
const (
	TermI   = "I"
	TermII  = "II"
	TermIII = "III"
)

// Entity status values. Objectives are never deleted; deactivation is the
// soft-delete mechanism.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// MinObjectiveLength is the shortest objective text accepted by the
// importer. Shorter cells are treated as stray fragments, not objectives.
const MinObjectiveLength = 10

// MaxMethodCodes caps the teaching and assessment method lists per
// objective. Integration lists are unbounded.
const MaxMethodCodes = 3

// ValidTerm reports whether s is one of the three academic terms.
func ValidTerm(s string) bool {
	return s == TermI || s == TermII || s == TermIII
}

// ValidPriority reports whether s is a recognized priority tier code.
func ValidPriority(s string) bool {
	return s == PriorityMustKnow || s == PriorityDesirable || s == PriorityNiceToKnow
}

// Objective is one curriculum line item (SLO) from the syllabus master.
// Objective text is immutable after creation; there is no update path.
type Objective struct {
	SyllabusID            string    `json:"syllabus_id"`
	SubjectCode           string    `json:"subject_code"`
	SubjectName           string    `json:"subject_name"`
	Year                  int       `json:"year"`
	PaperNumber           string    `json:"paper_number"`
	Part                  string    `json:"part"`
	TopicNumber           string    `json:"topic_number"`
	TopicName             string    `json:"topic_name"`
	Text                  string    `json:"learning_objective_text"`
	DomainCode            string    `json:"domain_code"`
	DomainFull            string    `json:"domain_full"`
	PriorityLevel         string    `json:"priority_level"`
	PriorityFull          string    `json:"priority_full"`
	CompetencyLevel       string    `json:"competency_level"`
	CompetencyFull        string    `json:"competency_full"`
	TeachingMethods       []string  `json:"teaching_methods_codes"`
	AssessmentMethods     []string  `json:"assessment_methods_codes"`
	AssessmentType        string    `json:"assessment_type"`
	AssessmentTypeFull    string    `json:"assessment_type_full"`
	Term                  string    `json:"term"`
	LectureHours          float64   `json:"lecture_hours"`
	NonLectureHoursTheory float64   `json:"non_lecture_hours_theory"`
	NonLectureHoursPract  float64   `json:"non_lecture_hours_practical"`
	CourseOutcome         string    `json:"course_outcome"`
	ProgrammeOutcome      string    `json:"programme_outcome"`
	IntegrationCodes      []string  `json:"integration_codes"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// Validate checks the invariants every stored objective must satisfy.
func (o *Objective) Validate() error {
	if strings.TrimSpace(o.Text) == "" || len(o.Text) < MinObjectiveLength {
		return ErrEmptyObjective
	}
	if o.SubjectCode == "" {
		return ErrSubjectUnknown
	}
	if o.Term != "" && !ValidTerm(o.Term) {
		return ErrInvalidTerm
	}
	return nil
}

// ObjectiveFilter narrows ObjectivesBySubject results. Empty fields are
// ignored; supplied fields combine with AND semantics.
type ObjectiveFilter struct {
	Term     string
	Priority string
	Paper    string
}

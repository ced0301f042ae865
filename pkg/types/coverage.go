package types

import "time"

// CoverageStatusCompleted is the status tag written for every coverage
// log entry.
const CoverageStatusCompleted = "completed"

// DiaryEntry records one taught class. Coverage-log rows reference the
// diary entry they were logged from.
type DiaryEntry struct {
	DiaryID      string    `json:"diary_id"`
	TeacherID    string    `json:"teacher_id"`
	EntryDate    time.Time `json:"entry_date"`
	Term         string    `json:"term"`
	SubjectCode  string    `json:"subject_code"`
	PeriodNumber int       `json:"period_number"`
	Remarks      string    `json:"remarks,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CoverageEntry records that a teacher covered an objective on a date.
// The log is append-only; repeat entries for the same (teacher, objective,
// date) are ignored rather than duplicated, and distinct-objective
// counting makes repeats on other dates harmless for statistics.
type CoverageEntry struct {
	LogID        string    `json:"log_id"`
	TeacherID    string    `json:"teacher_id"`
	SubjectCode  string    `json:"subject_code"`
	SyllabusID   string    `json:"syllabus_id"`
	DiaryID      string    `json:"diary_id,omitempty"`
	CoverageDate time.Time `json:"coverage_date"`
	Status       string    `json:"coverage_status"`
	CreatedAt    time.Time `json:"created_at"`
}

// CoveredObjective is an objective joined with the date it was covered,
// as returned by the monthly and history queries.
type CoveredObjective struct {
	Objective
	CoverageDate time.Time `json:"coverage_date"`
}

// PriorityStats is the per-tier slice of a coverage breakdown.
type PriorityStats struct {
	Total      int     `json:"total"`
	Covered    int     `json:"covered"`
	Percentage float64 `json:"percentage"`
}

// CoverageStats summarizes a teacher's coverage of one subject. Covered
// counts distinct objectives regardless of how often each was logged.
// Percentage is round(100*covered/total, 1), or 0 when Total is 0.
type CoverageStats struct {
	Total      int                      `json:"total"`
	Covered    int                      `json:"covered"`
	Percentage float64                  `json:"percentage"`
	ByPriority map[string]PriorityStats `json:"by_priority"`
}

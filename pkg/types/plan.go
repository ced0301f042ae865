package types

import "time"

// Plan kinds. A teacher can mark an objective for today's class or for
// next month; one plan row exists per (teacher, objective, kind).
const (
	PlanToday     = "today"
	PlanNextMonth = "next_month"
)

// ValidPlanKind reports whether s is a recognized plan kind.
func ValidPlanKind(s string) bool {
	return s == PlanToday || s == PlanNextMonth
}

// PlannedObjective binds a teacher to an objective with a plan kind and
// date. Re-planning the same (teacher, objective, kind) overwrites the
// date in place.
type PlannedObjective struct {
	PlanID      string    `json:"plan_id"`
	TeacherID   string    `json:"teacher_id"`
	SubjectCode string    `json:"subject_code"`
	SyllabusID  string    `json:"syllabus_id"`
	Kind        string    `json:"plan_type"`
	PlanDate    time.Time `json:"plan_date"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined objective fields for listing.
	Text        string `json:"learning_objective_text,omitempty"`
	TopicNumber string `json:"topic_number,omitempty"`
}

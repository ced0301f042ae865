package types

import "time"

// Teacher is a user identity. Teachers are created at signup or by the
// login fallback and are never deleted; Status deactivates them.
type Teacher struct {
	TeacherID    string    `json:"teacher_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Designation  string    `json:"designation,omitempty"`
	Department   string    `json:"department,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Assignment binds a teacher to a subject, year, and academic year.
// Creating the same assignment twice is a no-op.
type Assignment struct {
	AssignmentID string    `json:"assignment_id"`
	TeacherID    string    `json:"teacher_id"`
	SubjectCode  string    `json:"subject_code"`
	SubjectName  string    `json:"subject_name,omitempty"`
	Year         int       `json:"year"`
	AcademicYear string    `json:"academic_year"`
	Section      string    `json:"section,omitempty"`
	AssignedDate time.Time `json:"assigned_date"`
	Status       string    `json:"status"`
}

// SubjectSummary is one distinct subject present in the syllabus master,
// with its objective count. Used by the subject picker and by the
// store-readiness check.
type SubjectSummary struct {
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	Year        int    `json:"year"`
	Objectives  int    `json:"objectives"`
}

// Teacher-subject assignment accessors.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/ayurlms/slotrack/pkg/types"
)

// AssignSubject binds a teacher to a subject for an academic year. The
// operation is idempotent: assigning the same (teacher, subject, year,
// academic year) again is a no-op, not an error.
func (s *Store) AssignSubject(a *types.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return err
	}
	if a.TeacherID == "" || a.SubjectCode == "" {
		return types.ErrInvalidID
	}
	if a.AcademicYear == "" {
		a.AcademicYear = s.academicYear
	}

	now := nowUTC()
	a.AssignmentID = generateID()
	a.Status = types.StatusActive
	if a.AssignedDate.IsZero() {
		a.AssignedDate = now
	}

	_, err := s.db.Exec(`INSERT OR IGNORE INTO teacher_subject_assignments (
        assignment_id, teacher_id, subject_code, year, academic_year,
        section, assigned_date, status
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.AssignmentID, a.TeacherID, a.SubjectCode, a.Year, a.AcademicYear,
		a.Section, formatDate(a.AssignedDate), a.Status,
	)
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

// TeacherSubjects lists a teacher's active assignments, joined with the
// subject names found in the syllabus master. An empty academicYear
// returns assignments across all years.
func (s *Store) TeacherSubjects(teacherID, academicYear string) ([]types.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	query := `SELECT DISTINCT tsa.assignment_id, tsa.teacher_id, tsa.subject_code,
        tsa.year, tsa.academic_year, tsa.section, tsa.assigned_date, tsa.status,
        sm.subject_name
        FROM teacher_subject_assignments tsa
        JOIN syllabus_master sm ON tsa.subject_code = sm.subject_code
        WHERE tsa.teacher_id = ? AND tsa.status = ?`
	args := []any{teacherID, types.StatusActive}
	if academicYear != "" {
		query += " AND tsa.academic_year = ?"
		args = append(args, academicYear)
	}
	query += " ORDER BY tsa.year, tsa.subject_code"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying assignments: %w", err)
	}
	defer rows.Close()

	var out []types.Assignment
	for rows.Next() {
		var (
			a        types.Assignment
			section  sql.NullString
			assigned string
		)
		if err := rows.Scan(&a.AssignmentID, &a.TeacherID, &a.SubjectCode,
			&a.Year, &a.AcademicYear, &section, &assigned, &a.Status,
			&a.SubjectName); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		a.Section = section.String
		if a.AssignedDate, err = parseDate(assigned); err != nil {
			return nil, fmt.Errorf("parsing assigned_date: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return out, nil
}

// Teaching diary, coverage log, and coverage aggregation.
//
// The coverage log is append-only and historical: a teacher may cover the
// same objective on several dates, and every dated entry matters for the
// monthly report. Statistics count distinct objectives, so repeats never
// inflate coverage.
package sqlite

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/ayurlms/slotrack/pkg/types"
)

// AddDiaryEntry stores a diary entry and logs coverage for every covered
// objective in one transaction. Each coverage insert is idempotent on
// (teacher, objective, date). Returns the diary ID.
func (s *Store) AddDiaryEntry(e *types.DiaryEntry, coveredIDs []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return "", err
	}
	if e.TeacherID == "" || e.SubjectCode == "" {
		return "", types.ErrInvalidID
	}
	if e.Term != "" && !types.ValidTerm(e.Term) {
		return "", types.ErrInvalidTerm
	}

	now := nowUTC()
	e.DiaryID = generateID()
	e.CreatedAt = now
	if e.EntryDate.IsZero() {
		e.EntryDate = now
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning diary transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO teaching_diary (
        diary_id, teacher_id, entry_date, term, subject_code,
        period_number, remarks, created_at
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.DiaryID, e.TeacherID, formatDate(e.EntryDate), e.Term,
		e.SubjectCode, e.PeriodNumber, e.Remarks, now.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("inserting diary entry: %w", err)
	}

	for _, syllabusID := range coveredIDs {
		_, err = tx.Exec(`INSERT OR IGNORE INTO syllabus_coverage_log (
            log_id, teacher_id, subject_code, syllabus_id, diary_id,
            coverage_date, coverage_status, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			generateID(), e.TeacherID, e.SubjectCode, syllabusID, e.DiaryID,
			formatDate(e.EntryDate), types.CoverageStatusCompleted,
			now.Format(time.RFC3339),
		)
		if err != nil {
			return "", fmt.Errorf("logging coverage for %s: %w", syllabusID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing diary entry: %w", err)
	}
	return e.DiaryID, nil
}

// LogCoverage records that a teacher covered an objective on a date,
// without a diary entry. Repeated calls for the same (teacher, objective,
// date) are a no-op.
func (s *Store) LogCoverage(teacherID, subjectCode, syllabusID string, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return err
	}
	if teacherID == "" || syllabusID == "" {
		return types.ErrInvalidID
	}

	_, err := s.db.Exec(`INSERT OR IGNORE INTO syllabus_coverage_log (
        log_id, teacher_id, subject_code, syllabus_id, diary_id,
        coverage_date, coverage_status, created_at
    ) VALUES (?, ?, ?, ?, NULL, ?, ?, ?)`,
		generateID(), teacherID, subjectCode, syllabusID,
		formatDate(date), types.CoverageStatusCompleted,
		nowUTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("logging coverage: %w", err)
	}
	return nil
}

// CoverageStats computes a teacher's coverage of one subject: total active
// objectives, distinct covered objectives, overall percentage, and the
// same three numbers per priority tier. Pure read, no side effects.
func (s *Store) CoverageStats(teacherID, subjectCode string) (types.CoverageStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := types.CoverageStats{ByPriority: map[string]types.PriorityStats{}}
	if err := s.checkOpen(); err != nil {
		return stats, err
	}

	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM syllabus_master WHERE subject_code = ? AND status = ?",
		subjectCode, types.StatusActive,
	).Scan(&stats.Total)
	if err != nil {
		return stats, fmt.Errorf("counting objectives: %w", err)
	}

	err = s.db.QueryRow(
		"SELECT COUNT(DISTINCT syllabus_id) FROM syllabus_coverage_log WHERE teacher_id = ? AND subject_code = ?",
		teacherID, subjectCode,
	).Scan(&stats.Covered)
	if err != nil {
		return stats, fmt.Errorf("counting covered objectives: %w", err)
	}

	stats.Percentage = percentage(stats.Covered, stats.Total)

	rows, err := s.db.Query(`SELECT sm.priority_level,
        COUNT(DISTINCT sm.syllabus_id),
        COUNT(DISTINCT scl.syllabus_id)
        FROM syllabus_master sm
        LEFT JOIN syllabus_coverage_log scl
            ON sm.syllabus_id = scl.syllabus_id AND scl.teacher_id = ?
        WHERE sm.subject_code = ? AND sm.status = ?
        GROUP BY sm.priority_level`,
		teacherID, subjectCode, types.StatusActive,
	)
	if err != nil {
		return stats, fmt.Errorf("querying priority breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tier string
		var ps types.PriorityStats
		if err := rows.Scan(&tier, &ps.Total, &ps.Covered); err != nil {
			return stats, fmt.Errorf("scanning priority breakdown: %w", err)
		}
		ps.Percentage = percentage(ps.Covered, ps.Total)
		stats.ByPriority[tier] = ps
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("iterating priority breakdown: %w", err)
	}
	return stats, nil
}

// MonthlyCoverage returns the objectives a teacher covered in one calendar
// month, joined with their coverage dates, ordered by date.
func (s *Store) MonthlyCoverage(teacherID, subjectCode string, year int, month time.Month) ([]types.CoveredObjective, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	query := "SELECT " + coveredColumns + ` FROM syllabus_coverage_log scl
        JOIN syllabus_master sm ON scl.syllabus_id = sm.syllabus_id
        WHERE scl.teacher_id = ? AND scl.subject_code = ?
        AND strftime('%Y', scl.coverage_date) = ?
        AND strftime('%m', scl.coverage_date) = ?
        ORDER BY scl.coverage_date`
	return s.queryCovered(query, teacherID, subjectCode,
		fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", int(month)))
}

// CoverageHistory returns every coverage entry for a teacher and subject,
// newest first, for the full export.
func (s *Store) CoverageHistory(teacherID, subjectCode string) ([]types.CoveredObjective, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	query := "SELECT " + coveredColumns + ` FROM syllabus_coverage_log scl
        JOIN syllabus_master sm ON scl.syllabus_id = sm.syllabus_id
        WHERE scl.teacher_id = ? AND scl.subject_code = ?
        ORDER BY scl.coverage_date DESC`
	return s.queryCovered(query, teacherID, subjectCode)
}

// coveredColumns prefixes every objective column with the syllabus_master
// alias and appends the coverage date.
const coveredColumns = `sm.syllabus_id, sm.subject_code, sm.subject_name, sm.year,
    sm.paper_number, sm.part, sm.topic_number, sm.topic_name,
    sm.learning_objective_text, sm.domain_code, sm.domain_full,
    sm.priority_level, sm.priority_full, sm.competency_level,
    sm.competency_full, sm.teaching_methods_codes,
    sm.assessment_methods_codes, sm.assessment_type, sm.assessment_type_full,
    sm.term, sm.lecture_hours, sm.non_lecture_hours_theory,
    sm.non_lecture_hours_practical, sm.course_outcome, sm.programme_outcome,
    sm.integration_codes, sm.status, sm.created_at, sm.updated_at,
    scl.coverage_date`

// scanCoveredObjective hydrates an objective row with its trailing
// coverage_date column.
func scanCoveredObjective(rows *sql.Rows) (*types.CoveredObjective, error) {
	var dateStr string
	o, err := scanObjective(rows, &dateStr)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing coverage_date: %w", err)
	}
	return &types.CoveredObjective{Objective: *o, CoverageDate: date}, nil
}

func (s *Store) queryCovered(query string, args ...any) ([]types.CoveredObjective, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying coverage: %w", err)
	}
	defer rows.Close()

	var out []types.CoveredObjective
	for rows.Next() {
		co, err := scanCoveredObjective(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *co)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating coverage: %w", err)
	}
	if out == nil {
		out = []types.CoveredObjective{}
	}
	return out, nil
}

// percentage returns round(100*covered/total, 1), defined as 0 when total
// is 0.
func percentage(covered, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(covered)/float64(total)*1000) / 10
}

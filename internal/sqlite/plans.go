// Planned objective accessors.
package sqlite

import (
	"fmt"
	"time"

	"github.com/ayurlms/slotrack/pkg/types"
)

// PlanObjective marks an objective as planned for today's class or next
// month. One plan row exists per (teacher, objective, kind); re-planning
// overwrites the plan date in place instead of adding a row.
func (s *Store) PlanObjective(p *types.PlannedObjective) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return err
	}
	if p.TeacherID == "" || p.SyllabusID == "" {
		return types.ErrInvalidID
	}
	if !types.ValidPlanKind(p.Kind) {
		return types.ErrInvalidKind
	}

	now := nowUTC()
	p.PlanID = generateID()
	p.CreatedAt = now
	if p.PlanDate.IsZero() {
		p.PlanDate = now
	}

	_, err := s.db.Exec(`INSERT INTO planned_slos (
        plan_id, teacher_id, subject_code, syllabus_id, plan_type,
        plan_date, created_at
    ) VALUES (?, ?, ?, ?, ?, ?, ?)
    ON CONFLICT (teacher_id, syllabus_id, plan_type)
    DO UPDATE SET plan_date = excluded.plan_date`,
		p.PlanID, p.TeacherID, p.SubjectCode, p.SyllabusID, p.Kind,
		formatDate(p.PlanDate), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("planning objective: %w", err)
	}
	return nil
}

// PlannedObjectives lists a teacher's plans of one kind for a subject,
// joined with objective text and topic, newest plan date first.
func (s *Store) PlannedObjectives(teacherID, subjectCode, kind string) ([]types.PlannedObjective, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if !types.ValidPlanKind(kind) {
		return nil, types.ErrInvalidKind
	}

	rows, err := s.db.Query(`SELECT ps.plan_id, ps.teacher_id, ps.subject_code,
        ps.syllabus_id, ps.plan_type, ps.plan_date, ps.created_at,
        sm.learning_objective_text, sm.topic_number
        FROM planned_slos ps
        JOIN syllabus_master sm ON ps.syllabus_id = sm.syllabus_id
        WHERE ps.teacher_id = ? AND ps.subject_code = ? AND ps.plan_type = ?
        ORDER BY ps.plan_date DESC, ps.plan_id`,
		teacherID, subjectCode, kind,
	)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var out []types.PlannedObjective
	for rows.Next() {
		var (
			p                 types.PlannedObjective
			planDate, created string
		)
		if err := rows.Scan(&p.PlanID, &p.TeacherID, &p.SubjectCode,
			&p.SyllabusID, &p.Kind, &planDate, &created,
			&p.Text, &p.TopicNumber); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		if p.PlanDate, err = parseDate(planDate); err != nil {
			return nil, fmt.Errorf("parsing plan_date: %w", err)
		}
		if p.CreatedAt, err = parseTimestamp(created); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	if out == nil {
		out = []types.PlannedObjective{}
	}
	return out, nil
}

// Syllabus master accessors: objective insertion (importer-only) and the
// filtered retrieval, search, and subject-summary queries.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ayurlms/slotrack/pkg/types"
)

// objectiveColumns is the select list shared by every objective query.
const objectiveColumns = `syllabus_id, subject_code, subject_name, year,
    paper_number, part, topic_number, topic_name, learning_objective_text,
    domain_code, domain_full, priority_level, priority_full,
    competency_level, competency_full, teaching_methods_codes,
    assessment_methods_codes, assessment_type, assessment_type_full, term,
    lecture_hours, non_lecture_hours_theory, non_lecture_hours_practical,
    course_outcome, programme_outcome, integration_codes, status,
    created_at, updated_at`

// objectiveOrder keeps retrieval deterministic: paper, then topic, then
// insertion order (UUID v7 IDs sort chronologically).
const objectiveOrder = " ORDER BY paper_number, topic_number, syllabus_id"

// InsertObjective validates and stores a new learning objective, returning
// its generated ID. Objectives are immutable once stored; there is no
// update or delete path.
func (s *Store) InsertObjective(o *types.Objective) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return "", err
	}
	if err := o.Validate(); err != nil {
		return "", err
	}

	now := nowUTC()
	o.SyllabusID = generateID()
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Status == "" {
		o.Status = types.StatusActive
	}

	teaching, err := marshalList(o.TeachingMethods)
	if err != nil {
		return "", fmt.Errorf("marshaling teaching methods: %w", err)
	}
	assessment, err := marshalList(o.AssessmentMethods)
	if err != nil {
		return "", fmt.Errorf("marshaling assessment methods: %w", err)
	}
	integration, err := marshalList(o.IntegrationCodes)
	if err != nil {
		return "", fmt.Errorf("marshaling integration codes: %w", err)
	}

	_, err = s.db.Exec(`INSERT INTO syllabus_master (
        syllabus_id, subject_code, subject_name, year, paper_number, part,
        topic_number, topic_name, learning_objective_text,
        domain_code, domain_full, priority_level, priority_full,
        competency_level, competency_full,
        teaching_methods_codes, teaching_methods_full,
        assessment_methods_codes, assessment_methods_full,
        assessment_type, assessment_type_full, term,
        lecture_hours, non_lecture_hours_theory, non_lecture_hours_practical,
        course_outcome, programme_outcome, integration_codes, integration_full,
        status, created_at, updated_at
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.SyllabusID, o.SubjectCode, o.SubjectName, o.Year, o.PaperNumber, o.Part,
		o.TopicNumber, o.TopicName, o.Text,
		o.DomainCode, o.DomainFull, o.PriorityLevel, o.PriorityFull,
		o.CompetencyLevel, o.CompetencyFull,
		teaching, teaching,
		assessment, assessment,
		o.AssessmentType, o.AssessmentTypeFull, o.Term,
		o.LectureHours, o.NonLectureHoursTheory, o.NonLectureHoursPract,
		o.CourseOutcome, o.ProgrammeOutcome, integration, integration,
		o.Status, now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("inserting objective: %w", err)
	}
	return o.SyllabusID, nil
}

// ObjectivesBySubject returns active objectives for a subject, narrowed by
// every supplied filter field (AND semantics), in stable paper/topic/
// insertion order.
func (s *Store) ObjectivesBySubject(subjectCode string, filter types.ObjectiveFilter) ([]*types.Objective, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	query := "SELECT " + objectiveColumns + " FROM syllabus_master WHERE subject_code = ? AND status = ?"
	args := []any{subjectCode, types.StatusActive}

	if filter.Term != "" {
		query += " AND term = ?"
		args = append(args, filter.Term)
	}
	if filter.Priority != "" {
		query += " AND priority_level = ?"
		args = append(args, filter.Priority)
	}
	if filter.Paper != "" {
		query += " AND paper_number = ?"
		args = append(args, filter.Paper)
	}
	query += objectiveOrder

	return s.queryObjectives(query, args...)
}

// SearchObjectives returns active objectives whose text or topic name
// contains the search term. SQLite LIKE is case-insensitive for ASCII.
func (s *Store) SearchObjectives(subjectCode, term string) ([]*types.Objective, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	pattern := "%" + term + "%"
	query := "SELECT " + objectiveColumns + ` FROM syllabus_master
        WHERE subject_code = ? AND status = ?
        AND (learning_objective_text LIKE ? OR topic_name LIKE ?)` + objectiveOrder
	return s.queryObjectives(query, subjectCode, types.StatusActive, pattern, pattern)
}

// ObjectiveByID returns a single objective or ErrNotFound.
func (s *Store) ObjectiveByID(id string) (*types.Objective, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := s.db.Query("SELECT "+objectiveColumns+" FROM syllabus_master WHERE syllabus_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("getting objective %s: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("getting objective %s: %w", id, err)
		}
		return nil, types.ErrNotFound
	}
	return scanObjective(rows)
}

// SubjectSummaries lists the distinct subjects present in the syllabus
// master with their objective counts, ordered by year then code.
func (s *Store) SubjectSummaries() ([]types.SubjectSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT subject_code, subject_name, year, COUNT(*)
        FROM syllabus_master GROUP BY subject_code, subject_name, year
        ORDER BY year, subject_code`)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()

	var out []types.SubjectSummary
	for rows.Next() {
		var sum types.SubjectSummary
		if err := rows.Scan(&sum.SubjectCode, &sum.SubjectName, &sum.Year, &sum.Objectives); err != nil {
			return nil, fmt.Errorf("scanning subject summary: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	return out, nil
}

func (s *Store) queryObjectives(query string, args ...any) ([]*types.Objective, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying objectives: %w", err)
	}
	defer rows.Close()

	var out []*types.Objective
	for rows.Next() {
		o, err := scanObjective(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating objectives: %w", err)
	}
	if out == nil {
		out = []*types.Objective{}
	}
	return out, nil
}

// scanObjective hydrates one syllabus_master row. NULLable columns go
// through sql.Null* wrappers; JSON list columns are decoded back to
// slices. Extra destinations receive any columns appended after the
// standard objective column list.
func scanObjective(rows *sql.Rows, extra ...any) (*types.Objective, error) {
	var (
		o                                       types.Objective
		paper, part, topicNum, topicName        sql.NullString
		domainCode, domainFull                  sql.NullString
		priority, priorityFull                  sql.NullString
		competency, competencyFull              sql.NullString
		teaching, assessment                    sql.NullString
		assessType, assessTypeFull, term        sql.NullString
		lectureHours, nlhTheory, nlhPract       sql.NullFloat64
		courseOutcome, programmeOutcome, integr sql.NullString
		createdAt, updatedAt                    string
	)

	dests := []any{
		&o.SyllabusID, &o.SubjectCode, &o.SubjectName, &o.Year,
		&paper, &part, &topicNum, &topicName, &o.Text,
		&domainCode, &domainFull, &priority, &priorityFull,
		&competency, &competencyFull, &teaching,
		&assessment, &assessType, &assessTypeFull, &term,
		&lectureHours, &nlhTheory, &nlhPract,
		&courseOutcome, &programmeOutcome, &integr, &o.Status,
		&createdAt, &updatedAt,
	}
	dests = append(dests, extra...)
	if err := rows.Scan(dests...); err != nil {
		return nil, fmt.Errorf("scanning objective: %w", err)
	}

	o.PaperNumber = paper.String
	o.Part = part.String
	o.TopicNumber = topicNum.String
	o.TopicName = topicName.String
	o.DomainCode = domainCode.String
	o.DomainFull = domainFull.String
	o.PriorityLevel = priority.String
	o.PriorityFull = priorityFull.String
	o.CompetencyLevel = competency.String
	o.CompetencyFull = competencyFull.String
	o.AssessmentType = assessType.String
	o.AssessmentTypeFull = assessTypeFull.String
	o.Term = term.String
	o.LectureHours = lectureHours.Float64
	o.NonLectureHoursTheory = nlhTheory.Float64
	o.NonLectureHoursPract = nlhPract.Float64
	o.CourseOutcome = courseOutcome.String
	o.ProgrammeOutcome = programmeOutcome.String

	var err error
	if o.TeachingMethods, err = unmarshalList(teaching.String); err != nil {
		return nil, fmt.Errorf("parsing teaching methods for %s: %w", o.SyllabusID, err)
	}
	if o.AssessmentMethods, err = unmarshalList(assessment.String); err != nil {
		return nil, fmt.Errorf("parsing assessment methods for %s: %w", o.SyllabusID, err)
	}
	if o.IntegrationCodes, err = unmarshalList(integr.String); err != nil {
		return nil, fmt.Errorf("parsing integration codes for %s: %w", o.SyllabusID, err)
	}

	if o.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if o.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &o, nil
}

// marshalList serializes an ordered code list to its JSON column form.
// The lists are deliberately denormalized: the four-sheet-to-table query
// pattern never joins on individual method codes.
func marshalList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalList(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Teacher identity accessors. Credentials are bcrypt-hashed; the store
// never returns the hash to callers through the JSON boundary.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayurlms/slotrack/pkg/types"
)

const teacherColumns = `teacher_id, username, password_hash, full_name,
    email, phone, designation, department, status, created_at, updated_at`

// CreateTeacher stores a new teacher with a bcrypt-hashed password and
// returns the generated ID. Returns ErrUsernameTaken when the username is
// already present.
func (s *Store) CreateTeacher(t *types.Teacher, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return "", err
	}
	if strings.TrimSpace(t.Username) == "" || strings.TrimSpace(t.FullName) == "" {
		return "", types.ErrInvalidID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	now := nowUTC()
	t.TeacherID = generateID()
	t.PasswordHash = string(hash)
	t.Status = types.StatusActive
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err = s.db.Exec(`INSERT INTO teachers (
        teacher_id, username, password_hash, full_name, email, phone,
        designation, department, status, created_at, updated_at
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TeacherID, t.Username, t.PasswordHash, t.FullName, t.Email, t.Phone,
		t.Designation, t.Department, t.Status,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", types.ErrUsernameTaken
		}
		return "", fmt.Errorf("inserting teacher: %w", err)
	}
	return t.TeacherID, nil
}

// AuthenticateTeacher verifies a username/password pair against the
// stored bcrypt hash. A missing user, an inactive account, and a wrong
// password all return ErrNotFound; the caller decides the fallback (the
// CLI provisions the demo account).
func (s *Store) AuthenticateTeacher(username, password string) (*types.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	t, err := s.teacherWhere("username = ? AND status = ?", username, types.StatusActive)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password)); err != nil {
		return nil, types.ErrNotFound
	}
	return t, nil
}

// TeacherByID returns a teacher or ErrNotFound.
func (s *Store) TeacherByID(id string) (*types.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}
	return s.teacherWhere("teacher_id = ?", id)
}

// TeacherByUsername returns a teacher or ErrNotFound, regardless of status.
func (s *Store) TeacherByUsername(username string) (*types.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.teacherWhere("username = ?", username)
}

func (s *Store) teacherWhere(where string, args ...any) (*types.Teacher, error) {
	row := s.db.QueryRow("SELECT "+teacherColumns+" FROM teachers WHERE "+where, args...)

	var (
		t                               types.Teacher
		email, phone, designation, dept sql.NullString
		createdAt, updatedAt            string
	)
	err := row.Scan(&t.TeacherID, &t.Username, &t.PasswordHash, &t.FullName,
		&email, &phone, &designation, &dept, &t.Status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("querying teacher: %w", err)
	}
	t.Email = email.String
	t.Phone = phone.String
	t.Designation = designation.String
	t.Department = dept.String
	if t.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. modernc.org/sqlite surfaces these as plain errors with the
// constraint name in the message.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

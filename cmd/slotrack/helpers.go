// Shared helpers for slotrack CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ayurlms/slotrack/internal/sqlite"
	"github.com/ayurlms/slotrack/pkg/types"
)

// openStore resolves the data directory, opens the store (creating schema
// and seed data on first run), and returns it. The caller must defer
// store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		DataDir:      dataDir,
		AcademicYear: configAcademicYear,
	}

	store := sqlite.New()
	if err := store.Open(cfg); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// lookupTeacher resolves a --teacher username to its stored identity.
func lookupTeacher(store *sqlite.Store, username string) (*types.Teacher, error) {
	if username == "" {
		return nil, errors.New("--teacher is required")
	}
	t, err := store.TeacherByUsername(username)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, fmt.Errorf("no teacher named %q (run 'slotrack teacher add' first)", username)
		}
		return nil, err
	}
	return t, nil
}

// parseDateFlag parses a --date flag value, defaulting to today.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode json:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// isUserError reports whether err stems from bad input rather than a
// system failure, for exit-code selection.
func isUserError(err error) bool {
	return errors.Is(err, types.ErrNotFound) ||
		errors.Is(err, types.ErrInvalidID) ||
		errors.Is(err, types.ErrEmptyObjective) ||
		errors.Is(err, types.ErrSubjectUnknown) ||
		errors.Is(err, types.ErrInvalidTerm) ||
		errors.Is(err, types.ErrInvalidKind) ||
		errors.Is(err, types.ErrUsernameTaken)
}

// fail prints the error and exits with the appropriate code.
func fail(context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", context, err)
	if isUserError(err) {
		os.Exit(exitUserError)
	}
	os.Exit(exitSysError)
}

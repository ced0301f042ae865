package types

import (
	"errors"
	"regexp"
)

// DefaultAcademicYear is used when the config file does not set one.
const DefaultAcademicYear = "2025-26"

// Config holds store location and session parameters for Store.Open.
type Config struct {
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	AcademicYear string `json:"academic_year" yaml:"academic_year"`
}

// Config validation errors.
var (
	ErrDataDirEmpty        = errors.New("data directory must not be empty")
	ErrAcademicYearInvalid = errors.New("academic year must look like 2025-26")
)

var academicYearRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Validate checks that the Config is well-formed. An empty academic year is
// allowed; Open substitutes DefaultAcademicYear.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.AcademicYear != "" && !academicYearRe.MatchString(c.AcademicYear) {
		return ErrAcademicYearInvalid
	}
	return nil
}

// Assign command binds a teacher to a subject for an academic year.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayurlms/slotrack/pkg/types"
)

var (
	assignTeacher      string
	assignSubject      string
	assignYear         int
	assignAcademicYear string
	assignSection      string
)

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign a subject to a teacher",
	Long: `Assign binds a teacher to a subject for an academic year. Repeating an
assignment is a no-op. With no --subject, assign lists the teacher's
current assignments.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fail("assign", err)
		}
		defer store.Close()

		teacher, err := lookupTeacher(store, assignTeacher)
		if err != nil {
			fail("assign", err)
		}

		if assignSubject == "" {
			assignments, err := store.TeacherSubjects(teacher.TeacherID, assignAcademicYear)
			if err != nil {
				fail("assign", err)
			}
			if flagJSON {
				printJSON(assignments)
				return nil
			}
			for _, a := range assignments {
				fmt.Printf("%-12s %-40s year %d  %s\n",
					a.SubjectCode, a.SubjectName, a.Year, a.AcademicYear)
			}
			return nil
		}

		if assignYear < 1 || assignYear > 3 {
			fmt.Fprintln(os.Stderr, "assign: --year must be 1, 2, or 3")
			os.Exit(exitUserError)
		}

		a := &types.Assignment{
			TeacherID:    teacher.TeacherID,
			SubjectCode:  assignSubject,
			Year:         assignYear,
			AcademicYear: assignAcademicYear,
			Section:      assignSection,
		}
		if err := store.AssignSubject(a); err != nil {
			fail("assign", err)
		}

		fmt.Printf("Assigned %s to %s for %s\n", a.SubjectCode, teacher.Username, a.AcademicYear)
		return nil
	},
}

func init() {
	assignCmd.Flags().StringVar(&assignTeacher, "teacher", "", "teacher username (required)")
	assignCmd.Flags().StringVar(&assignSubject, "subject", "", "subject code to assign")
	assignCmd.Flags().IntVar(&assignYear, "year", 1, "professional year (1-3)")
	assignCmd.Flags().StringVar(&assignAcademicYear, "academic-year", "", "academic year (default from config)")
	assignCmd.Flags().StringVar(&assignSection, "section", "", "class section")
}

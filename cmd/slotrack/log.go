// Log command records taught objectives, with or without a diary entry.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayurlms/slotrack/pkg/types"
)

var (
	logTeacher    string
	logSubject    string
	logObjectives []string
	logDate       string
	logTerm       string
	logPeriod     int
	logRemarks    string
	logNoDiary    bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log covered objectives for a class",
	Long: `Log records that the listed objectives were covered on a date. By
default a teaching-diary entry is written alongside the coverage log;
--no-diary records coverage only. Logging the same objective twice on the
same date is a no-op.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if logSubject == "" || len(logObjectives) == 0 {
			fmt.Fprintln(os.Stderr, "log: --subject and --objective are required")
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fail("log", err)
		}
		defer store.Close()

		teacher, err := lookupTeacher(store, logTeacher)
		if err != nil {
			fail("log", err)
		}

		date, err := parseDateFlag(logDate)
		if err != nil {
			fail("log", err)
		}

		ids := make([]string, 0, len(logObjectives))
		for _, id := range logObjectives {
			ids = append(ids, strings.TrimSpace(id))
		}

		// Verify the objectives exist before touching the log.
		for _, id := range ids {
			if _, err := store.ObjectiveByID(id); err != nil {
				fail(fmt.Sprintf("log %s", id), err)
			}
		}

		if logNoDiary {
			for _, id := range ids {
				if err := store.LogCoverage(teacher.TeacherID, logSubject, id, date); err != nil {
					fail("log", err)
				}
			}
			fmt.Printf("Logged %d objectives for %s\n", len(ids), date.Format("2006-01-02"))
			return nil
		}

		entry := &types.DiaryEntry{
			TeacherID:    teacher.TeacherID,
			SubjectCode:  logSubject,
			EntryDate:    date,
			Term:         logTerm,
			PeriodNumber: logPeriod,
			Remarks:      logRemarks,
		}
		diaryID, err := store.AddDiaryEntry(entry, ids)
		if err != nil {
			fail("log", err)
		}

		fmt.Printf("Diary entry %s: %d objectives covered on %s\n",
			diaryID, len(ids), date.Format("2006-01-02"))
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logTeacher, "teacher", "", "teacher username (required)")
	logCmd.Flags().StringVar(&logSubject, "subject", "", "subject code (required)")
	logCmd.Flags().StringSliceVar(&logObjectives, "objective", nil, "objective ID (repeatable)")
	logCmd.Flags().StringVar(&logDate, "date", "", "coverage date YYYY-MM-DD (default today)")
	logCmd.Flags().StringVar(&logTerm, "term", "", "term (I, II, III)")
	logCmd.Flags().IntVar(&logPeriod, "period", 0, "period number")
	logCmd.Flags().StringVar(&logRemarks, "remarks", "", "diary remarks")
	logCmd.Flags().BoolVar(&logNoDiary, "no-diary", false, "record coverage without a diary entry")
}

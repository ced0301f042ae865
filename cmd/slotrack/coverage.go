// Coverage command reports a teacher's coverage statistics for a subject.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var (
	coverageTeacher string
	coverageSubject string
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Show coverage statistics for a subject",
	Long: `Coverage reports how much of a subject's active syllabus the teacher
has covered: overall counts and percentage, and the breakdown per priority
tier. An objective counts once no matter how often it was logged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if coverageSubject == "" {
			fmt.Fprintln(os.Stderr, "coverage: --subject is required")
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fail("coverage", err)
		}
		defer store.Close()

		teacher, err := lookupTeacher(store, coverageTeacher)
		if err != nil {
			fail("coverage", err)
		}

		stats, err := store.CoverageStats(teacher.TeacherID, coverageSubject)
		if err != nil {
			fail("coverage", err)
		}

		if flagJSON {
			printJSON(stats)
			return nil
		}

		fmt.Printf("%s / %s\n", teacher.Username, coverageSubject)
		fmt.Printf("Covered %d of %d objectives (%.1f%%)\n",
			stats.Covered, stats.Total, stats.Percentage)

		tiers := make([]string, 0, len(stats.ByPriority))
		for tier := range stats.ByPriority {
			tiers = append(tiers, tier)
		}
		sort.Strings(tiers)
		for _, tier := range tiers {
			ps := stats.ByPriority[tier]
			fmt.Printf("  %-3s %3d/%3d (%.1f%%)\n", tier, ps.Covered, ps.Total, ps.Percentage)
		}
		return nil
	},
}

func init() {
	coverageCmd.Flags().StringVar(&coverageTeacher, "teacher", "", "teacher username (required)")
	coverageCmd.Flags().StringVar(&coverageSubject, "subject", "", "subject code (required)")
}

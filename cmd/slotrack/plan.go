// Plan command group: marking objectives for today's class or next month.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayurlms/slotrack/pkg/types"
)

var (
	planTeacher   string
	planSubject   string
	planObjective string
	planKind      string
	planDate      string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan objectives for today's class or next month",
}

var planAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Mark an objective as planned",
	Long: `Plan add marks one objective for today's class or for next month.
Re-planning the same objective moves its plan date instead of duplicating
the entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if planSubject == "" || planObjective == "" {
			fmt.Fprintln(os.Stderr, "plan add: --subject and --objective are required")
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fail("plan add", err)
		}
		defer store.Close()

		teacher, err := lookupTeacher(store, planTeacher)
		if err != nil {
			fail("plan add", err)
		}

		// Verify the objective exists before planning it.
		if _, err := store.ObjectiveByID(planObjective); err != nil {
			fail("plan add", err)
		}

		date, err := parseDateFlag(planDate)
		if err != nil {
			fail("plan add", err)
		}

		p := &types.PlannedObjective{
			TeacherID:   teacher.TeacherID,
			SubjectCode: planSubject,
			SyllabusID:  planObjective,
			Kind:        planKind,
			PlanDate:    date,
		}
		if err := store.PlanObjective(p); err != nil {
			fail("plan add", err)
		}

		fmt.Printf("Planned %s (%s) for %s\n", planObjective, planKind, date.Format("2006-01-02"))
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List planned objectives",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if planSubject == "" {
			fmt.Fprintln(os.Stderr, "plan list: --subject is required")
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fail("plan list", err)
		}
		defer store.Close()

		teacher, err := lookupTeacher(store, planTeacher)
		if err != nil {
			fail("plan list", err)
		}

		plans, err := store.PlannedObjectives(teacher.TeacherID, planSubject, planKind)
		if err != nil {
			fail("plan list", err)
		}

		if flagJSON {
			printJSON(plans)
			return nil
		}

		for _, p := range plans {
			fmt.Printf("%s  %s  [%s] %s\n",
				p.PlanDate.Format("2006-01-02"), p.SyllabusID, p.TopicNumber, p.Text)
		}
		fmt.Printf("%d planned (%s)\n", len(plans), planKind)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{planAddCmd, planListCmd} {
		cmd.Flags().StringVar(&planTeacher, "teacher", "", "teacher username (required)")
		cmd.Flags().StringVar(&planSubject, "subject", "", "subject code (required)")
		cmd.Flags().StringVar(&planKind, "kind", types.PlanToday, "plan kind: today or next_month")
	}
	planAddCmd.Flags().StringVar(&planObjective, "objective", "", "objective ID (required)")
	planAddCmd.Flags().StringVar(&planDate, "date", "", "plan date YYYY-MM-DD (default today)")

	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planListCmd)
}

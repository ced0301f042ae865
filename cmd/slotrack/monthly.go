// Monthly command reports what a teacher covered in one calendar month.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ayurlms/slotrack/internal/export"
)

var (
	monthlyTeacher string
	monthlySubject string
	monthlyMonth   string
	monthlyOut     string
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Report objectives covered in a calendar month",
	Long: `Monthly lists the objectives a teacher covered in one calendar month,
with their coverage dates. With --out the report is written as CSV or a
workbook, chosen by file extension.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if monthlySubject == "" {
			fmt.Fprintln(os.Stderr, "monthly: --subject is required")
			os.Exit(exitUserError)
		}

		year, month, err := parseMonthFlag(monthlyMonth)
		if err != nil {
			fail("monthly", err)
		}

		store, err := openStore()
		if err != nil {
			fail("monthly", err)
		}
		defer store.Close()

		teacher, err := lookupTeacher(store, monthlyTeacher)
		if err != nil {
			fail("monthly", err)
		}

		covered, err := store.MonthlyCoverage(teacher.TeacherID, monthlySubject, year, month)
		if err != nil {
			fail("monthly", err)
		}

		if monthlyOut != "" {
			header, rows := export.CoverageRows(covered)
			if err := writeExportFile(monthlyOut, "Monthly Coverage", header, rows); err != nil {
				fail("monthly", err)
			}
			fmt.Printf("Wrote %d rows to %s\n", len(rows), monthlyOut)
			return nil
		}

		if flagJSON {
			printJSON(covered)
			return nil
		}

		for _, c := range covered {
			fmt.Printf("%s  [%s] %s\n",
				c.CoverageDate.Format("2006-01-02"), c.TopicNumber, c.Text)
		}
		fmt.Printf("%d objectives covered in %04d-%02d\n", len(covered), year, int(month))
		return nil
	},
}

// parseMonthFlag parses a --month value of the form YYYY-MM, defaulting to
// the current month.
func parseMonthFlag(s string) (int, time.Month, error) {
	if s == "" {
		now := time.Now().UTC()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	return t.Year(), t.Month(), nil
}

// writeExportFile dispatches on the output extension: .csv or .xlsx.
func writeExportFile(path, sheet string, header []string, rows [][]string) error {
	switch {
	case strings.HasSuffix(path, ".csv"):
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		return export.WriteCSV(f, header, rows)
	case strings.HasSuffix(path, ".xlsx"):
		return export.WriteWorkbook(path, sheet, header, rows)
	default:
		return fmt.Errorf("unsupported output extension for %s (use .csv or .xlsx)", path)
	}
}

func init() {
	monthlyCmd.Flags().StringVar(&monthlyTeacher, "teacher", "", "teacher username (required)")
	monthlyCmd.Flags().StringVar(&monthlySubject, "subject", "", "subject code (required)")
	monthlyCmd.Flags().StringVar(&monthlyMonth, "month", "", "calendar month YYYY-MM (default current)")
	monthlyCmd.Flags().StringVar(&monthlyOut, "out", "", "write report to file (.csv or .xlsx)")
}

// Export command writes query results as CSV or workbook files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayurlms/slotrack/internal/export"
	"github.com/ayurlms/slotrack/pkg/types"
)

var (
	exportSubject string
	exportTeacher string
	exportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export objectives or coverage history to CSV or a workbook",
	Long: `Export writes a subject's objectives to a file, one row per objective.
With --teacher, the teacher's full coverage history for the subject is
exported instead, newest first. The format follows the output extension
(.csv or .xlsx).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportSubject == "" || exportOut == "" {
			fmt.Fprintln(os.Stderr, "export: --subject and --out are required")
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fail("export", err)
		}
		defer store.Close()

		var (
			header []string
			rows   [][]string
			sheet  string
		)
		if exportTeacher != "" {
			teacher, err := lookupTeacher(store, exportTeacher)
			if err != nil {
				fail("export", err)
			}
			covered, err := store.CoverageHistory(teacher.TeacherID, exportSubject)
			if err != nil {
				fail("export", err)
			}
			header, rows = export.CoverageRows(covered)
			sheet = "Coverage History"
		} else {
			objectives, err := store.ObjectivesBySubject(exportSubject, types.ObjectiveFilter{})
			if err != nil {
				fail("export", err)
			}
			header, rows = export.ObjectiveRows(objectives)
			sheet = "Objectives"
		}

		if err := writeExportFile(exportOut, sheet, header, rows); err != nil {
			fail("export", err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(rows), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportSubject, "subject", "", "subject code (required)")
	exportCmd.Flags().StringVar(&exportTeacher, "teacher", "", "export this teacher's coverage history instead")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file, .csv or .xlsx (required)")
}

// Subjects command lists the imported subjects.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List imported subjects with their objective counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fail("subjects", err)
		}
		defer store.Close()

		subjects, err := store.SubjectSummaries()
		if err != nil {
			fail("subjects", err)
		}

		if flagJSON {
			printJSON(subjects)
			return nil
		}

		if len(subjects) == 0 {
			fmt.Fprintln(os.Stderr, "No subjects found; run 'slotrack import <workbook.xlsx>' first")
			os.Exit(exitUserError)
		}
		for _, s := range subjects {
			fmt.Printf("%-12s %-40s year %d  %4d objectives\n",
				s.SubjectCode, s.SubjectName, s.Year, s.Objectives)
		}
		return nil
	},
}

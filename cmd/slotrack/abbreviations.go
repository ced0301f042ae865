// Abbreviations command dumps the classification lookup tables.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayurlms/slotrack/pkg/types"
)

// lookupNames is the display order of the classification masters.
var lookupNames = []string{
	types.LookupDomains,
	types.LookupPriorities,
	types.LookupCompetencies,
	types.LookupTeachingMethods,
	types.LookupAssessmentMethods,
	types.LookupIntegrations,
}

var abbreviationsCmd = &cobra.Command{
	Use:   "abbreviations [table]",
	Short: "Show the abbreviation reference tables",
	Long: `Abbreviations prints the classification code tables used throughout
the syllabus: domains, priorities, competency levels, teaching and
assessment methods, and integrations. With an argument, only that table is
printed.

Valid tables: ` + strings.Join(lookupNames, ", "),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fail("abbreviations", err)
		}
		defer store.Close()

		names := lookupNames
		if len(args) == 1 {
			names = []string{args[0]}
		}

		all := make(map[string][]types.LookupEntry, len(names))
		for _, name := range names {
			entries, err := store.Lookup(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "abbreviations: unknown table %q (valid: %s)\n",
					name, strings.Join(lookupNames, ", "))
				os.Exit(exitUserError)
			}
			all[name] = entries
		}

		if flagJSON {
			printJSON(all)
			return nil
		}

		for _, name := range names {
			fmt.Printf("\n%s\n", strings.ToUpper(name))
			for _, e := range all[name] {
				if e.Category != "" {
					fmt.Printf("  %-10s %-45s %s\n", e.Code, e.Full, e.Category)
				} else {
					fmt.Printf("  %-10s %s\n", e.Code, e.Full)
				}
			}
		}
		return nil
	},
}

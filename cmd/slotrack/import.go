// Import command loads the curriculum workbook into the store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayurlms/slotrack/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <workbook.xlsx>",
	Short: "Import learning objectives from a curriculum workbook",
	Long: `Import reads every recognized subject sheet of the workbook and loads
its learning objectives. Sheets or rows the importer cannot parse are
skipped with a warning; the import succeeds as long as at least one
objective was stored. Re-importing adds rows, it does not replace them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fail("import", err)
		}
		defer store.Close()

		res, err := importer.Import(args[0], store)
		if err != nil {
			fail("import", err)
		}

		for _, skip := range res.Skips {
			if skip.Row > 0 {
				fmt.Fprintf(os.Stderr, "warning: sheet %s row %d skipped (%s): %s\n",
					skip.Sheet, skip.Row, skip.Reason, skip.Detail)
			} else {
				fmt.Fprintf(os.Stderr, "warning: sheet %s skipped (%s)\n",
					skip.Sheet, skip.Reason)
			}
		}

		if flagJSON {
			printJSON(res)
		} else {
			fmt.Printf("Imported %d objectives (%d skips)\n", res.Imported, len(res.Skips))
		}

		if res.Imported == 0 {
			fmt.Fprintln(os.Stderr, "import: no objectives imported")
			os.Exit(exitUserError)
		}
		return nil
	},
}

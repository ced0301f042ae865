// Init command creates the store and seeds the lookup tables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the slotrack store",
	Long: `Init creates the data directory, the database schema, and the
classification lookup tables. Running init against an existing store is a
no-op; no data is modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fail("init", err)
		}
		defer store.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			fail("init", err)
		}

		ready, err := store.Ready()
		if err != nil {
			fail("init", err)
		}

		fmt.Println("Initialized store at", dataDir)
		if !ready {
			fmt.Fprintln(os.Stderr, "No objectives loaded yet; run 'slotrack import <workbook.xlsx>'")
		}
		return nil
	},
}

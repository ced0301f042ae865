// Version command for the slotrack CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayurlms/slotrack/pkg/types"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the slotrack version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("slotrack", types.Version)
	},
}

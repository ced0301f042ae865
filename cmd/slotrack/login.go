// Login command verifies teacher credentials.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayurlms/slotrack/pkg/types"
)

// Demo account provisioned on first demo login, so a fresh install can be
// explored without creating an account.
const (
	demoUsername = "demo"
	demoPassword = "demo123"
	demoFullName = "Dr. Demo Teacher"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify teacher credentials",
	Long: `Login checks a username/password pair against the store. Logging in as
the demo account provisions it on first use.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginUsername == "" || loginPassword == "" {
			fmt.Fprintln(os.Stderr, "login: --username and --password are required")
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fail("login", err)
		}
		defer store.Close()

		teacher, err := store.AuthenticateTeacher(loginUsername, loginPassword)
		if errors.Is(err, types.ErrNotFound) && loginUsername == demoUsername {
			if _, lookupErr := store.TeacherByUsername(demoUsername); errors.Is(lookupErr, types.ErrNotFound) {
				if _, createErr := store.CreateTeacher(&types.Teacher{
					Username: demoUsername,
					FullName: demoFullName,
				}, demoPassword); createErr != nil {
					fail("login", createErr)
				}
				teacher, err = store.AuthenticateTeacher(loginUsername, loginPassword)
			}
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "login: invalid username or password")
			os.Exit(exitUserError)
		}

		if flagJSON {
			printJSON(teacher)
		} else {
			fmt.Printf("Logged in as %s (%s)\n", teacher.FullName, teacher.Username)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "login username (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "login password (required)")
}

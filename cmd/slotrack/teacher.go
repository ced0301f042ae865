// Teacher command group: account management.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayurlms/slotrack/pkg/types"
)

var (
	teacherUsername    string
	teacherPassword    string
	teacherFullName    string
	teacherEmail       string
	teacherPhone       string
	teacherDesignation string
	teacherDepartment  string
)

var teacherCmd = &cobra.Command{
	Use:   "teacher",
	Short: "Manage teacher accounts",
}

var teacherAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a teacher account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if teacherUsername == "" || teacherPassword == "" || teacherFullName == "" {
			fmt.Fprintln(os.Stderr, "teacher add: --username, --password, and --name are required")
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fail("teacher add", err)
		}
		defer store.Close()

		t := &types.Teacher{
			Username:    teacherUsername,
			FullName:    teacherFullName,
			Email:       teacherEmail,
			Phone:       teacherPhone,
			Designation: teacherDesignation,
			Department:  teacherDepartment,
		}
		id, err := store.CreateTeacher(t, teacherPassword)
		if err != nil {
			fail("teacher add", err)
		}

		if flagJSON {
			printJSON(t)
		} else {
			fmt.Printf("Created teacher %s (%s)\n", t.Username, id)
		}
		return nil
	},
}

func init() {
	teacherAddCmd.Flags().StringVar(&teacherUsername, "username", "", "login username (required)")
	teacherAddCmd.Flags().StringVar(&teacherPassword, "password", "", "login password (required)")
	teacherAddCmd.Flags().StringVar(&teacherFullName, "name", "", "full name (required)")
	teacherAddCmd.Flags().StringVar(&teacherEmail, "email", "", "email address")
	teacherAddCmd.Flags().StringVar(&teacherPhone, "phone", "", "phone number")
	teacherAddCmd.Flags().StringVar(&teacherDesignation, "designation", "", "designation")
	teacherAddCmd.Flags().StringVar(&teacherDepartment, "department", "", "department")

	teacherCmd.AddCommand(teacherAddCmd)
}

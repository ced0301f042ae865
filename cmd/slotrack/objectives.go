// Objectives command browses and searches learning objectives.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayurlms/slotrack/pkg/types"
)

var (
	objectivesSubject  string
	objectivesTerm     string
	objectivesPriority string
	objectivesPaper    string
	objectivesSearch   string
)

var objectivesCmd = &cobra.Command{
	Use:   "objectives",
	Short: "List or search learning objectives for a subject",
	Long: `Objectives lists the active learning objectives of a subject in
paper/topic order. Filters narrow the list and combine with AND. With
--search, a substring match on objective text or topic name replaces the
filters.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if objectivesSubject == "" {
			fmt.Fprintln(os.Stderr, "objectives: --subject is required")
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fail("objectives", err)
		}
		defer store.Close()

		var list []*types.Objective
		if objectivesSearch != "" {
			list, err = store.SearchObjectives(objectivesSubject, objectivesSearch)
		} else {
			list, err = store.ObjectivesBySubject(objectivesSubject, types.ObjectiveFilter{
				Term:     objectivesTerm,
				Priority: objectivesPriority,
				Paper:    objectivesPaper,
			})
		}
		if err != nil {
			fail("objectives", err)
		}

		if flagJSON {
			printJSON(list)
			return nil
		}

		var lastTopic string
		for _, o := range list {
			if o.TopicName != lastTopic {
				lastTopic = o.TopicName
				fmt.Println("\n##", o.TopicName)
			}
			fmt.Printf("%s  (%s/%s, term %s) %s\n",
				o.SyllabusID, o.PriorityLevel, o.CompetencyLevel, o.Term, o.Text)
		}
		fmt.Printf("\n%d objectives\n", len(list))
		return nil
	},
}

func init() {
	objectivesCmd.Flags().StringVar(&objectivesSubject, "subject", "", "subject code (required)")
	objectivesCmd.Flags().StringVar(&objectivesTerm, "term", "", "filter by term (I, II, III)")
	objectivesCmd.Flags().StringVar(&objectivesPriority, "priority", "", "filter by priority (Mk, Dk, Nk)")
	objectivesCmd.Flags().StringVar(&objectivesPaper, "paper", "", "filter by paper number")
	objectivesCmd.Flags().StringVar(&objectivesSearch, "search", "", "substring search on text or topic")
}

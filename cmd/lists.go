package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Print all lists with their progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		lists, err := app.lists.GetLists(cmd.Context())
		if err != nil {
			return err
		}
		if len(lists) == 0 {
			fmt.Println("no lists yet")
			return nil
		}

		for _, l := range lists {
			items, err := app.items.GetItems(cmd.Context(), l.ID)
			if err != nil {
				return err
			}
			done := 0
			for _, it := range items {
				if it.Checked {
					done++
				}
			}
			fmt.Printf("%-30s %d/%d\n", l.Name, done, len(items))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listsCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCreateList bool

var addCmd = &cobra.Command{
	Use:   "add <list> <text>...",
	Short: "Add an item to a list by name",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		name := args[0]
		text := strings.Join(args[1:], " ")

		lists, err := app.lists.GetLists(cmd.Context())
		if err != nil {
			return err
		}

		listID := 0
		for _, l := range lists {
			if strings.EqualFold(l.Name, name) {
				listID = l.ID
				break
			}
		}
		if listID == 0 {
			if !addCreateList {
				return fmt.Errorf("no list named %q (use --create to make one)", name)
			}
			created, err := app.lists.CreateList(cmd.Context(), name)
			if err != nil {
				return err
			}
			listID = created.ID
		}

		item, err := app.items.CreateItem(cmd.Context(), listID, text)
		if err != nil {
			return err
		}
		fmt.Printf("added %q to %s\n", item.Text, name)
		return nil
	},
}

func init() {
	addCmd.Flags().BoolVar(&addCreateList, "create", false, "create the list if it does not exist")
	rootCmd.AddCommand(addCmd)
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcubed/cubed/internal/model"
)

func newAlternateNamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "alternate-names",
		Aliases: []string{"an"},
		Short:   "Lineup alternate name commands",
	}

	cmd.AddCommand(newAlternateNamesListCmd())
	cmd.AddCommand(newAlternateNamesResolveCmd())

	return cmd
}

func newAlternateNamesListCmd() *cobra.Command {
	var sort sortFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alternate names",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []model.AlternateName

			if err := client.Get(withQuery("/lineup/alternateNames/list/json", sort.params()), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	sort.register(cmd)

	return cmd
}

func newAlternateNamesResolveCmd() *cobra.Command {
	var externalName, team, sport string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve an external feed name to its contest name",
		Long: `Resolve an external feed name to its contest name.

A name with no mapping is recorded as a missing name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.AlternateName

			path := withQuery("/lineup/alternateNames/resolve/json", map[string]string{
				"externalName": externalName,
				"team":         team,
				"sport":        sport,
			})
			if err := client.Get(path, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&externalName, "external-name", "", "Name as it appears in the feed (required)")
	cmd.Flags().StringVar(&team, "team", "", "Team, recorded if the name is missing")
	cmd.Flags().StringVar(&sport, "sport", "", "Sport (MLB, NBA, NFL, NHL), recorded if the name is missing")
	_ = cmd.MarkFlagRequired("external-name")

	return cmd
}

func newMissingNamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "missing-names",
		Aliases: []string{"mn"},
		Short:   "Lineup missing name commands",
	}

	cmd.AddCommand(newMissingNamesListCmd())
	cmd.AddCommand(newMissingNamesClearCmd())

	return cmd
}

func newMissingNamesListCmd() *cobra.Command {
	var sort sortFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List missing names",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []model.MissingName

			if err := client.Get(withQuery("/lineup/missingNames/list/json", sort.params()), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	sort.register(cmd)

	return cmd
}

func newMissingNamesClearCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete one missing name, or all of them without --id",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := withQuery("/lineup/missingNames/delete", map[string]string{"id": id})
			if err := client.Get(path, nil); err != nil {
				return err
			}

			if id == "" {
				output(cmd).PrintMessage("Cleared all missing names")
			} else {
				output(cmd).PrintMessage("Deleted missing name " + id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Missing name id")

	return cmd
}

// sortFlags are the list sort options shared by the list commands
type sortFlags struct {
	field      string
	descending bool
}

func (s *sortFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.field, "sort", "", "Field to sort by")
	cmd.Flags().BoolVar(&s.descending, "desc", false, "Sort descending")
}

func (s *sortFlags) params() map[string]string {
	params := map[string]string{"sort": s.field}
	if s.descending {
		params["ascending"] = "false"
	}
	return params
}

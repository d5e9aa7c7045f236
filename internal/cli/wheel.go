package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcubed/cubed/internal/model"
)

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Wheel category commands",
	}

	cmd.AddCommand(newCategoriesListCmd())
	cmd.AddCommand(newCategoriesCreateCmd())

	return cmd
}

func newCategoriesListCmd() *cobra.Command {
	var sort sortFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List wheel categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []model.WheelCategory

			if err := client.Get(withQuery("/wheel/categories/list/json", sort.params()), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	sort.register(cmd)

	return cmd
}

func newCategoriesCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a wheel category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/wheel/categories/edit", map[string]string{"name": name}, nil); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("Created category %q", name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Category name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Wheel word commands",
	}

	cmd.AddCommand(newWordsListCmd())
	cmd.AddCommand(newWordsDuplicatesCmd())
	cmd.AddCommand(newWordsUnverifiedCmd())
	cmd.AddCommand(newWordsApproveAllCmd())

	return cmd
}

func newWordsListCmd() *cobra.Command {
	var (
		category string
		sort     sortFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List wheel words, optionally of one category",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/wheel/words/list/json"
			if category != "" {
				path = "/wheel/categories/" + url.PathEscape(category) + "/words/list/json"
			}

			var result []model.WheelWord
			if err := client.Get(withQuery(path, sort.params()), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category id")
	sort.register(cmd)

	return cmd
}

func newWordsDuplicatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates",
		Short: "List words that appear more than once",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []model.WheelWord

			if err := client.Get("/wheel/words/duplicates/json", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newWordsUnverifiedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unverified",
		Short: "List words awaiting approval",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []model.WheelWord

			if err := client.Get("/wheel/words/unverified/json", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newWordsApproveAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve-all",
		Short: "Approve every word awaiting approval",
		RunE: func(cmd *cobra.Command, args []string) error {
			var words []model.WheelWord
			if err := client.Get("/wheel/words/unverified/json", &words); err != nil {
				return err
			}

			if len(words) == 0 {
				output(cmd).PrintMessage("No words awaiting approval")
				return nil
			}

			ids := make([]string, len(words))
			for i, w := range words {
				ids[i] = w.ID
			}

			var result ApproveManyResult
			if err := client.Post("/wheel/words/approveMany/json", map[string]string{"ids": strings.Join(ids, ",")}, &result); err != nil {
				return err
			}
			result.Approved = len(ids) - len(result.Failed)

			output(cmd).Print(result)
			return nil
		},
	}
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freejk/campscope/pkg/records"
)

// templateCmd represents the template command
var templateCmd = &cobra.Command{
	Use:   "template <identifier>",
	Short: "Render the campaign's contact template for one record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier := args[0]

		loader, err := newLoader()
		if err != nil {
			return err
		}
		dataset, err := loader.Load(context.Background())
		if err != nil {
			return err
		}

		if dataset.Campaign.ContactTemplate == "" {
			return fmt.Errorf("campaign %q has no contact template", dataset.Campaign.Name)
		}

		for _, rec := range dataset.Records {
			if rec.Identifier == identifier {
				fmt.Println(records.RenderTemplate(dataset.Campaign.ContactTemplate, rec))
				return nil
			}
		}
		return fmt.Errorf("no record with identifier %q", identifier)
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}

package main

import (
	"github.com/spf13/cobra"
)

func newTaxonomyCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the skill categories, synonyms and weights as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, tax, err := root.service(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd, tax.Describe())
		},
	}
}

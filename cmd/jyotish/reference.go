package main

import (
	"fmt"
	"jyotish-service/internal/render"

	"github.com/spf13/cobra"
)

func newReferenceCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reference",
		Short: "Print what the three signs, the five birds and the string types mean",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := root.catalog()
			if err != nil {
				return err
			}

			md, err := root.render(render.Reference(cat))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cv-builder/resume/render"
)

func newTemplatesCmd(registry *render.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the registered templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := registry.Catalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Templates"))
			def := registry.DefaultID()
			for i, entry := range entries {
				marker := ""
				if entry.ID == def {
					marker = " " + mutedStyle.Render("[DEFAULT]")
				}
				fmt.Fprintf(out, "%d. %s%s\n", i+1, entry.Label, marker)
				fmt.Fprintf(out, "   %s %s\n", labelStyle.Render("ID:"), entry.ID)
				if entry.Layout != "" {
					fmt.Fprintf(out, "   %s %s\n", labelStyle.Render("Layout:"), entry.Layout)
				}
			}
			return nil
		},
	}
}

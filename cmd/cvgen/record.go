package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cv-builder/resume/contract"
	"cv-builder/resume/model"
)

func newHydrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "hydrate <file>",
		Short:   "Print the editable form of a resume record",
		Args:    cobra.ExactArgs(1),
		Example: `  cvgen hydrate resume.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), contract.HydrateJSON(raw))
		},
	}
}

func newSerializeCmd() *cobra.Command {
	var editing bool
	cmd := &cobra.Command{
		Use:   "serialize <file>",
		Short: "Print the submission payload for a resume record",
		Args:  cobra.ExactArgs(1),
		Example: `  cvgen serialize resume.json
  cat resume.json | cvgen serialize - --editing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), contract.Serialize(contract.HydrateJSON(raw), editing))
		},
	}
	cmd.Flags().BoolVar(&editing, "editing", false, "serialize as an update of an existing resume")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a resume record the way submit does",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			form := contract.HydrateJSON(raw)

			if err := form.Validate(); err != nil {
				var fieldErrs model.FieldErrors
				if !errors.As(err, &fieldErrs) {
					return err
				}
				fmt.Fprintln(out, titleStyle.Render("Invalid fields"))
				for _, fe := range fieldErrs {
					fmt.Fprintf(out, "  %s %s\n", labelStyle.Render(fe.Field), fe.Message)
				}
				return fmt.Errorf("%d invalid field(s)", len(fieldErrs))
			}

			payload, err := json.Marshal(contract.Serialize(form, false))
			if err != nil {
				return err
			}
			if err := contract.ValidatePayloadJSON(payload); err != nil {
				return err
			}
			fmt.Fprintln(out, labelStyle.Render("✓"), "resume is valid")
			return nil
		},
	}
}

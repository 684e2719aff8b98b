package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cv-builder/internal/shared/config"
	"cv-builder/resume/render"
)

func newRootCmd(cfg config.Config) *cobra.Command {
	registry := render.NewDefaultRegistry(render.WithDefault(cfg.DefaultTemplate))

	root := &cobra.Command{
		Use:   "cvgen",
		Short: "Hydrate, serialize and preview resume records",
		Long: `cvgen runs resume records through the same hydration, serialization
and template rendering the API uses, without a server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newTemplatesCmd(registry),
		newHydrateCmd(),
		newSerializeCmd(),
		newValidateCmd(),
		newRenderCmd(registry),
	)
	return root
}

// readInput reads a file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

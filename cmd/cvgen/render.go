package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cv-builder/resume/contract"
	"cv-builder/resume/render"
)

type renderOptions struct {
	template string
	format   string
	out      string
	contact  render.Contact
}

func newRenderCmd(registry *render.Registry) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a resume record with a template",
		Args:  cobra.ExactArgs(1),
		Example: `  cvgen render resume.json --template template2 --out preview.html
  cvgen render resume.json --format text --name "Ada Lovelace"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			format := strings.ToLower(strings.TrimSpace(opts.format))
			if format != "html" && format != "text" {
				return fmt.Errorf("unknown format %q: use html or text", opts.format)
			}

			preview := render.FormPreview(contract.HydrateJSON(raw), opts.contact)
			used, node := registry.Render(opts.template, preview)
			if opts.template != "" && used != opts.template {
				fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render(fmt.Sprintf("template %q not found, using %q", opts.template, used)))
			}

			body := render.HTML(node)
			if format == "text" {
				body = render.Text(node)
			}
			return writeOutput(cmd.OutOrStdout(), opts.out, body)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.template, "template", "t", "", "template id (default: the registry default)")
	flags.StringVarP(&opts.format, "format", "f", "html", "output format: html or text")
	flags.StringVarP(&opts.out, "out", "o", "", "output file (default: stdout)")
	flags.StringVar(&opts.contact.Name, "name", "", "name shown in the header")
	flags.StringVar(&opts.contact.Email, "email", "", "contact email")
	flags.StringVar(&opts.contact.Phone, "phone", "", "contact phone")
	flags.StringVar(&opts.contact.Location, "location", "", "contact location")
	flags.StringVar(&opts.contact.GithubURL, "github", "", "GitHub profile URL")
	flags.StringVar(&opts.contact.Website, "website", "", "personal website")
	return cmd
}

func writeOutput(stdout io.Writer, path, body string) error {
	if path == "" {
		_, err := io.WriteString(stdout, body)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s wrote %s\n", labelStyle.Render("✓"), path)
	return nil
}

package main

// Work with resume records from the command line:
//   go run ./cmd/cvgen templates
//   go run ./cmd/cvgen render resume.json --template template3 --format text

import (
	"context"
	"fmt"
	"os"

	"cv-builder/internal/shared/config"
)

func main() {
	root := newRootCmd(config.Load())
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

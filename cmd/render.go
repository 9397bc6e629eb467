package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/cssel/internal/config"
	"github.com/conneroisu/cssel/internal/errors"
	"github.com/conneroisu/cssel/internal/stylesheet"
	"github.com/conneroisu/cssel/internal/validation"
)

var renderFlags *StandardFlags

// renderCmd renders a YAML stylesheet document to CSS.
var renderCmd = &cobra.Command{
	Use:   "render <document.yaml>",
	Short: "Render a YAML stylesheet document to CSS",
	Long: `Render a YAML stylesheet document to CSS.

The document lists rules; each rule names a selector (flat parts or a
combine node) and its declarations. Output goes to stdout unless -o is
given.

Examples:
  cssel render styles.yaml
  cssel render styles.yaml -o dist/site.css --minify
  cssel render styles.yaml --indent $'\t'`,
	Aliases: []string{"r"},
	Args:    cobra.ExactArgs(1),
	RunE:    runRenderCommand,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderFlags = AddStandardFlags(renderCmd, "render")
}

// renderOptions merges configuration with explicit flag overrides.
func renderOptions(cmd *cobra.Command, cfg *config.Config, flags *StandardFlags) stylesheet.RenderOptions {
	opts := stylesheet.RenderOptions{
		Indent: cfg.Render.Indent,
		Minify: cfg.Render.Minify,
	}

	if flagChanged(cmd.Flags(), "indent") {
		opts.Indent = flags.Indent
	}
	if flagChanged(cmd.Flags(), "minify") {
		opts.Minify = flags.Minify
	}

	return opts
}

// renderDocument loads, builds, and renders the document at path.
func renderDocument(path string, opts stylesheet.RenderOptions) (string, error) {
	doc, err := stylesheet.LoadFile(path)
	if err != nil {
		return "", err
	}

	sheet, err := doc.Build()
	if err != nil {
		return "", err
	}

	return sheet.Render(opts), nil
}

func runRenderCommand(cmd *cobra.Command, args []string) error {
	docPath := args[0]
	if err := validation.ValidatePath(docPath); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "config_invalid", "failed to load config")
	}

	css, err := renderDocument(docPath, renderOptions(cmd, cfg, renderFlags))
	if err != nil {
		return err
	}

	if renderFlags.OutputFile == "" {
		fmt.Fprint(cmd.OutOrStdout(), css)
		return nil
	}

	if err := validation.ValidatePath(renderFlags.OutputFile); err != nil {
		return err
	}
	if err := os.WriteFile(renderFlags.OutputFile, []byte(css), 0o644); err != nil {
		return errors.NewIOError("write_failed", "cannot write output file", err).
			WithContext("path", renderFlags.OutputFile)
	}

	return nil
}

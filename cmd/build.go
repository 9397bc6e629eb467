package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/cssel/internal/errors"
	"github.com/conneroisu/cssel/internal/selector"
)

var buildFlags *StandardFlags

// buildCmd builds a single compound selector from part tokens.
var buildCmd = &cobra.Command{
	Use:   "build [parts...]",
	Short: "Build a selector from part tokens",
	Long: `Build a compound selector from part tokens supplied in order.

Each token is classified by its leading characters:

  #name      id
  .name      class
  [expr]     attribute
  ::name     pseudo-element
  :name      pseudo-class
  name       element

Parts must follow the canonical CSS order (element, id, classes,
attributes, pseudo-classes, pseudo-element); element, id, and
pseudo-element may each appear only once.

Examples:
  cssel build div '#main' .container
  cssel build a .external '[href$=".png"]' ':hover' '::after'`,
	Aliases: []string{"b"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runBuildCommand,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildFlags = AddStandardFlags(buildCmd, "output")
}

// applyPart classifies one token and applies it to the builder.
func applyPart(b selector.Builder, token string) (selector.Builder, error) {
	switch {
	case strings.HasPrefix(token, "::"):
		return b.PseudoElement(token[2:])
	case strings.HasPrefix(token, ":"):
		return b.PseudoClass(token[1:])
	case strings.HasPrefix(token, "#"):
		return b.ID(token[1:])
	case strings.HasPrefix(token, "."):
		return b.Class(token[1:])
	case strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]"):
		return b.Attr(token[1 : len(token)-1])
	default:
		return b.Element(token)
	}
}

func runBuildCommand(cmd *cobra.Command, args []string) error {
	var (
		b   selector.Builder
		err error
	)

	for _, token := range args {
		if token == "" {
			return errors.NewValidationError("part_empty", "selector part must not be empty")
		}

		b, err = applyPart(b, token)
		if err != nil {
			return fmt.Errorf("invalid part %q: %w", token, err)
		}
	}

	switch buildFlags.OutputFormat {
	case "json":
		out, err := json.MarshalIndent(map[string]string{"selector": b.String()}, "", "  ")
		if err != nil {
			return errors.NewInternalError("encode_failed", "cannot encode selector", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "text":
		fmt.Fprintln(cmd.OutOrStdout(), b.String())
	default:
		return errors.NewValidationError("bad_format",
			fmt.Sprintf("unknown output format %q (want text or json)", buildFlags.OutputFormat))
	}

	return nil
}

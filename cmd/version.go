package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/cssel/internal/errors"
	"github.com/conneroisu/cssel/internal/version"
)

var versionFlags *StandardFlags

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for cssel including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  cssel version                # Short version
  cssel version --format json  # Full build info as JSON`,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionFlags = AddStandardFlags(versionCmd, "output")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	info := version.GetBuildInfo()

	switch versionFlags.OutputFormat {
	case "json":
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return errors.NewInternalError("encode_failed", "cannot encode version info", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "text":
		fmt.Fprintf(cmd.OutOrStdout(), "cssel %s\n", info.Short())
	default:
		return errors.NewValidationError("bad_format",
			fmt.Sprintf("unknown output format %q (want text or json)", versionFlags.OutputFormat))
	}

	return nil
}

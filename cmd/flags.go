package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// StandardFlags provides consistent flag definitions across commands
type StandardFlags struct {
	// Output flags
	OutputFormat string `flag:"format,f" desc:"Output format (text|json)" default:"text"`

	// Render flags
	OutputFile string `flag:"output,o" desc:"Write output to file instead of stdout" default:""`
	Minify     bool   `flag:"minify" desc:"Minify rendered CSS" default:"false"`
	Indent     string `flag:"indent" desc:"Per-declaration indentation" default:"  "`

	// Server flags
	Port int    `flag:"port,p" desc:"Port to serve on" default:"8080"`
	Host string `flag:"host" desc:"Host to bind to" default:"localhost"`
}

// AddStandardFlags adds the named flag groups to a command
func AddStandardFlags(cmd *cobra.Command, flagTypes ...string) *StandardFlags {
	flags := &StandardFlags{}

	for _, flagType := range flagTypes {
		switch flagType {
		case "output":
			addOutputFlags(cmd, flags)
		case "render":
			addRenderFlags(cmd, flags)
		case "server":
			addServerFlags(cmd, flags)
		}
	}

	return flags
}

func addOutputFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.OutputFormat, "format", "f", "text", "Output format (text|json)")
}

func addRenderFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().BoolVar(&flags.Minify, "minify", false, "Minify rendered CSS")
	cmd.Flags().StringVar(&flags.Indent, "indent", "  ", "Per-declaration indentation")
}

func addServerFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().IntVarP(&flags.Port, "port", "p", 8080, "Port to serve on")
	cmd.Flags().StringVar(&flags.Host, "host", "localhost", "Host to bind to")
}

// flagChanged reports whether the user explicitly set the named flag.
func flagChanged(set *pflag.FlagSet, name string) bool {
	f := set.Lookup(name)
	return f != nil && f.Changed
}

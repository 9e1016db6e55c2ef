package cmd

import (
	"fmt"

	"github.com/smazurov/halshim/internal/version"
	"github.com/spf13/cobra"
)

// VersionCmd prints build information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		v := version.Get()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "halshim %s (%s, built %s)\n", v.Version, v.GitCommit, v.BuildDate)
		fmt.Fprintf(out, "lights module %s, %s %s\n", v.ModuleVersion, v.GoVersion, v.Platform)
	},
}

package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build information injected by the linker
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	// needs no configuration
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), describeVersion(version, buildTime))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// describeVersion formats the build version, flagging anything that is not a
// release tag as a development build
func describeVersion(v, built string) string {
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return fmt.Sprintf("monta %s (development build, built %s)", v, built)
	}
	if len(parsed.Pre) > 0 {
		return fmt.Sprintf("monta %s (pre-release, built %s)", parsed, built)
	}
	return fmt.Sprintf("monta %s (built %s)", parsed, built)
}

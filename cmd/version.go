package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "happymeter", displayVersion(version))
	},
}

// displayVersion returns v in canonical semver form, or "(devel)" when v is
// not a valid semantic version.
func displayVersion(v string) string {
	if !semver.IsValid(v) {
		return "(devel)"
	}
	return semver.Canonical(v)
}

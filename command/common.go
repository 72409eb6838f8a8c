package command

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/frantjc/droid"
	xslice "github.com/frantjc/x/slice"
	"github.com/spf13/cobra"
)

// SetCommon sets the flags, logger and version template that every
// droid command shares.
func SetCommon(cmd *cobra.Command, version string) *cobra.Command {
	var verbosity int
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "V", fmt.Sprintf("Verbosity for %s.", cmd.Name()))
	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if verbose := os.Getenv("DROID_VERBOSE"); verbose != "" && verbosity < 2 &&
			xslice.Includes([]string{"1", "y", "yes", "true", "t"}, strings.ToLower(verbose)) {
			verbosity = 2
		}

		cmd.SetContext(
			droid.WithLogger(
				cmd.Context(), droid.NewLogger(cmd.ErrOrStderr(), verbosity),
			),
		)
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	cmd.Version = version
	cmd.SetVersionTemplate("{{ .Name }} {{ .Version }} " + runtime.Version() + "\n")

	return cmd
}

// Command translator-check reports which translator subpackages are linked
// into this build. It always exits 0 once the checks have run; a missing
// package is reported, not treated as a failure.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/agentuity/translator-check/check"
	"github.com/agentuity/translator-check/env"
	"github.com/agentuity/translator-check/registry"
	"github.com/agentuity/translator-check/tui"
	"github.com/spf13/cobra"
)

func newCommand(out io.Writer, reg check.Resolver) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "translator-check",
		Short:         "Report which translator packages are installed",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := env.NewLogger(cmd)
			format, err := env.Choice(cmd, "format", "TRANSLATOR_CHECK_FORMAT", string(check.FormatText), check.Formats...)
			if err != nil {
				return err
			}
			color, err := env.Choice(cmd, "color", "TRANSLATOR_CHECK_COLOR", "auto", "auto", "always", "never")
			if err != nil {
				return err
			}
			summary, _ := cmd.Flags().GetBool("summary")
			_, err = check.Run(out, reg, check.Options{
				Format:  check.Format(format),
				Color:   tui.ColorEnabled(color),
				Summary: summary,
				Logger:  log.WithPrefix("[check]"),
			})
			return err
		},
	}
	cmd.SetOut(out)
	cmd.Flags().String("log-level", "", "diagnostic log level: trace, debug, info, warn, error or none (default warn)")
	cmd.Flags().String("format", "", "report format: text, json or yaml (default text)")
	cmd.Flags().String("color", "", "colour the text report: auto, always or never (default auto)")
	cmd.Flags().Bool("summary", false, "print a summary table after the text report")
	return cmd
}

func main() {
	if err := newCommand(os.Stdout, registry.Default).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

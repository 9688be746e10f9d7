package cli

import (
	"github.com/jpl-au/terminfo"
	"github.com/spf13/cobra"
)

func newFindCommand(app *App) *cobra.Command {
	var asJSON, trace bool

	cmd := &cobra.Command{
		Use:   "find [name]",
		Short: "Resolve a terminfo entry (default $TERM)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var attempts []terminfo.Attempt
			var onAttempt func(terminfo.Attempt)
			if trace {
				onAttempt = func(a terminfo.Attempt) { attempts = append(attempts, a) }
			}
			rec, err := resolveArgs(app.resolver(onAttempt), args)

			w := cmd.OutOrStdout()
			if trace {
				printTrace(w, attempts)
			}
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(w, rec)
			}
			printRecord(w, rec, app.settings.Fingerprint)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&trace, "trace", false, "list every path tried")
	return cmd
}

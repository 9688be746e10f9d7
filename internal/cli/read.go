package cli

import (
	"errors"
	"fmt"

	"github.com/jpl-au/terminfo"
	"github.com/spf13/cobra"
)

func newReadCommand(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Load a compiled entry from an explicit file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := terminfo.FromFile(args[0])
			if err != nil {
				return err
			}
			if hdr, err := rec.Header(); err == nil {
				if names := hdr.Names(); len(names) > 0 {
					rec.Name = names[0]
				}
			} else {
				app.logger.Warn("undecodable entry", "file", args[0], "err", err)
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), rec)
			}
			printRecord(cmd.OutOrStdout(), rec, app.settings.Fingerprint)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func newSnapshotCommand(app *App) *cobra.Command {
	var restore bool

	cmd := &cobra.Command{
		Use:   "snapshot [name]",
		Short: "Print a printable compressed snapshot of an entry",
		Long: `snapshot prints the resolved entry as a single printable line that can be
stored in a config file or environment variable. With --restore the
argument is a snapshot instead, and the entry it holds is described.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if restore {
				if len(args) != 1 {
					return errors.New("--restore needs a snapshot argument")
				}
				rec, err := terminfo.FromSnapshot(args[0])
				if err != nil {
					return err
				}
				printRecord(w, rec, app.settings.Fingerprint)
				return nil
			}

			rec, err := resolveArgs(app.resolver(nil), args)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, rec.Snapshot())
			return nil
		},
	}

	cmd.Flags().BoolVar(&restore, "restore", false, "decode a snapshot instead of resolving a name")
	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/screens"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/script"
)

func scriptCmd(opts *options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "script [file]",
		Short: "Run line commands against the screens without a window",
		Long: `Reads commands from file, or stdin when no file is given, one per line:

  navigate <route>   back   set <id> <value>   press <id>   focus <id>
  key <button>   type <text>   erase   show   route   history   quit

Notifications are printed as "notify: <message>".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, appOpts, err := setup(opts)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			host, err := script.New(cmd.OutOrStdout(), appOpts)
			if err != nil {
				return err
			}
			host.Strict = strict
			return host.Run(cmd.Context(), in)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Stop at the first failing command")
	return cmd
}

func routesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, appOpts, err := setup(opts)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tHEADER")
			for _, def := range screens.Table(appOpts.Localizer, nil) {
				title := def.Title
				if title == "" {
					title = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%t\n", def.Name, title, def.HeaderShown)
			}
			return w.Flush()
		},
	}
}

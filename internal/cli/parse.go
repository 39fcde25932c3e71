package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <symbol>...",
		Short: "Shows how chord symbols are understood",
		Long: `Parses each symbol and prints its canonical spelling together with the
degrees that sound and the ones that do not.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, symbol := range args {
				v, err := a.service.ParseVoicing(cmd.Context(), symbol)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				canonical := v.Chord.String()
				if v.Bass != nil {
					canonical += "/" + v.Bass.String()
				}
				fmt.Fprintf(out, "symbol:    %s\n", strings.TrimSpace(symbol))
				fmt.Fprintf(out, "canonical: %s\n", canonical)
				fmt.Fprintln(out, v.Chord.Listing())
			}
			return nil
		},
	}
}

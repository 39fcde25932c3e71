package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/magda-harmony/internal/chord"
	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
)

func newNotesCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "notes <symbol>",
		Short: "Spells the notes of a chord",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := a.mode()
			if err != nil {
				return err
			}
			v, err := a.service.ParseVoicing(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !all {
				names := noteNames(v.Chord.Notes(mode))
				if v.Bass != nil {
					names = append([]string{v.Bass.String()}, names...)
				}
				fmt.Fprintln(out, strings.Join(names, " "))
				return nil
			}

			if v.Bass != nil {
				fmt.Fprintf(out, "  %-4s bass\n", v.Bass)
			}
			for _, voice := range v.Chord.AllNotes(mode) {
				marker := " "
				if !voice.Degree.Included {
					marker = "-"
				}
				fmt.Fprintf(out, "%s %-4s %s\n", marker, voice.Note, voice.Degree.Label())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "also list degrees that do not sound")
	return cmd
}

func noteNames(voices []chord.Voice) []string {
	names := make([]string, len(voices))
	for i, v := range voices {
		names[i] = v.Note.String()
	}
	return names
}

func newCircleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "circle <note>",
		Short: "Prints the circle of fifths starting from a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := a.mode()
			if err != nil {
				return err
			}
			root, err := theory.ParseNote(args[0])
			if err != nil {
				return err
			}
			circle := theory.CircleOfFifths(root, mode)
			names := make([]string, len(circle))
			for i, n := range circle {
				names[i] = n.String()
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
			return nil
		},
	}
}

func newIntervalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "interval <note> <interval>",
		Short:   "Spells the note an interval above another",
		Example: "  chordctl interval Eb b7\n  chordctl interval B '#9' --mode basic",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := a.mode()
			if err != nil {
				return err
			}
			from, err := theory.ParseNote(args[0])
			if err != nil {
				return err
			}
			to, err := from.Interval(args[1], mode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), to)
			return nil
		},
	}
}

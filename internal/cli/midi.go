package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/magda-harmony/internal/chart"
	"github.com/Conceptual-Machines/magda-harmony/internal/midi"
	"github.com/Conceptual-Machines/magda-harmony/internal/models"
	"github.com/Conceptual-Machines/magda-harmony/internal/services"
)

type midiFlags struct {
	output   string
	octave   int
	velocity int
	bpm      float64
}

func (f *midiFlags) register(cmd *cobra.Command, defaultOctave int) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write a Standard MIDI File to this path")
	cmd.Flags().IntVar(&f.octave, "octave", defaultOctave, "octave of the chord root (C4 = 60)")
	cmd.Flags().IntVar(&f.velocity, "velocity", 100, "note velocity 1-127")
	cmd.Flags().Float64Var(&f.bpm, "bpm", midi.DefaultBPM, "tempo written to the file")
}

func (f *midiFlags) options(cmd *cobra.Command, a *app) services.VoicingOptions {
	opts := services.VoicingOptions{Octave: f.octave, Velocity: f.velocity}
	if !cmd.Flags().Changed("octave") {
		opts.Octave = a.cfg.DefaultOctave
	}
	return opts
}

func (f *midiFlags) write(events []models.NoteEvent) error {
	out, err := os.Create(f.output)
	if err != nil {
		return err
	}
	if err := midi.WriteNoteEvents(out, events, midi.WriteOptions{BPM: f.bpm}); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func newMIDICmd(a *app) *cobra.Command {
	var (
		flags     midiFlags
		beats     float64
		rhythm    string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "midi <symbol>",
		Short: "Voices a chord as MIDI notes",
		Long: `Prints the MIDI note numbers of a chord, or writes them to a Standard
MIDI File with --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(cmd, a)
			notes, err := a.service.ChordToMIDI(cmd.Context(), args[0], opts.Octave)
			if err != nil {
				return err
			}
			if flags.output == "" {
				parts := make([]string, len(notes))
				for i, n := range notes {
					parts[i] = fmt.Sprint(n)
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
				return nil
			}

			events, err := a.service.ChordEventsToNoteEvents(cmd.Context(), []models.ChordEvent{{
				ChordSymbol:   args[0],
				DurationBeats: beats,
				Rhythm:        rhythm,
				Direction:     direction,
			}}, opts)
			if err != nil {
				return err
			}
			if err := flags.write(events); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d notes to %s\n", len(events), flags.output)
			return nil
		},
	}
	flags.register(cmd, 4)
	cmd.Flags().Float64Var(&beats, "beats", chart.DefaultBeats, "length of the chord in beats")
	cmd.Flags().StringVar(&rhythm, "rhythm", "", "rhythm template, e.g. bossa or charleston")
	cmd.Flags().StringVar(&direction, "direction", "", "arpeggiate: up, down or updown")
	return cmd
}

func newChartCmd(a *app) *cobra.Command {
	var flags midiFlags

	cmd := &cobra.Command{
		Use:   "chart <file|->",
		Short: "Renders a chord chart",
		Long: `Reads a chart such as

  chord(symbol="Dm7", beats=2); chord(symbol="G7", beats=2)
  chord(symbol="Cmaj7", rhythm="bossa")

from a file or stdin, prints the timed chords and optionally writes them to a
Standard MIDI File.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			code, err := io.ReadAll(in)
			if err != nil {
				return err
			}

			parser, err := chart.NewParser()
			if err != nil {
				return err
			}
			parsed, err := parser.Parse(cmd.Context(), string(code))
			if err != nil {
				return err
			}
			events, err := a.service.ChordEventsToNoteEvents(cmd.Context(), parsed.Events, flags.options(cmd, a))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, ev := range parsed.Events {
				fmt.Fprintf(out, "%6.2f  %-12s %g beats\n", ev.StartBeats, ev.ChordSymbol, ev.DurationBeats)
			}
			fmt.Fprintf(out, "total: %g beats, %d notes\n", parsed.TotalBeats, len(events))

			if flags.output == "" {
				return nil
			}
			if err := flags.write(events); err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %s\n", flags.output)
			return nil
		},
	}
	flags.register(cmd, 4)
	return cmd
}

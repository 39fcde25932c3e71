package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/magda-harmony/internal/config"
	"github.com/Conceptual-Machines/magda-harmony/internal/services"
	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
)

// app carries what every subcommand needs.
type app struct {
	cfg      *config.Config
	service  *services.ChordService
	modeName string
}

// NewRootCmd builds the chordctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "chordctl",
		Short: "Parse chord symbols and spell their notes",
		Long: `chordctl reads chord symbols such as Cmaj9, F#m7b5 or Bbsus4(b9),
spells the notes they contain and exports them as MIDI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.modeName, "mode", "m", "",
		"accidental mode: basic, enharmonics or doubles (default from ACCIDENTAL_MODE)")

	rootCmd.AddCommand(
		newParseCmd(a),
		newNotesCmd(a),
		newCircleCmd(a),
		newIntervalCmd(a),
		newMIDICmd(a),
		newChartCmd(a),
	)
	return rootCmd
}

// Execute runs chordctl with the process arguments.
func Execute() {
	cobra.CheckErr(NewRootCmd().Execute())
}

func (a *app) init() error {
	// A missing .env is fine
	_ = godotenv.Load()
	a.cfg = config.Load()

	mode, err := theory.ParseAccidentalMode(a.cfg.AccidentalMode)
	if err != nil {
		return fmt.Errorf("ACCIDENTAL_MODE: %w", err)
	}
	service, err := services.NewChordService(a.cfg.ChordCacheSize, mode, nil)
	if err != nil {
		return err
	}
	a.service = service
	return nil
}

// mode resolves the --mode flag against the configured default.
func (a *app) mode() (theory.AccidentalMode, error) {
	return a.service.ResolveMode(a.modeName)
}

// openInput opens a file argument, with "-" meaning the command's stdin.
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(name)
}

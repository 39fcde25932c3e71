package chart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Conceptual-Machines/grammar-school-go/gs"

	"github.com/Conceptual-Machines/magda-harmony/internal/logger"
	"github.com/Conceptual-Machines/magda-harmony/internal/models"
)

const (
	DefaultBeats = 4.0
	maxRepeat    = 64
)

var (
	ErrEmptyChart    = errors.New("empty chart")
	ErrMissingSymbol = errors.New("chord: missing symbol")
	ErrInvalidBeats  = errors.New("beats must be positive")
)

var directions = map[string]bool{"up": true, "down": true, "updown": true}

// Chart is a parsed chord chart.
type Chart struct {
	Events     []models.ChordEvent `json:"events"`
	TotalBeats float64             `json:"totalBeats"`
}

// Parser turns chart code into timed chord events.
// It is safe for concurrent use; calls are serialized.
type Parser struct {
	mu     sync.Mutex
	engine *gs.Engine
	dsl    *ChartDSL

	events []models.ChordEvent
	cursor float64
}

// ChartDSL implements the side-effect methods called by the engine.
type ChartDSL struct {
	parser *Parser
}

// NewParser creates a chart parser backed by the Grammar School engine.
func NewParser() (*Parser, error) {
	parser := &Parser{dsl: &ChartDSL{}}
	parser.dsl.parser = parser

	engine, err := gs.NewEngine(Grammar(), parser.dsl, gs.NewLarkParser())
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	parser.engine = engine
	return parser, nil
}

// Parse executes chart code. Newlines separate calls like ";" does, and
// lines starting with "#" are comments.
func (p *Parser) Parse(ctx context.Context, code string) (Chart, error) {
	code = normalize(code)
	if code == "" {
		return Chart{}, ErrEmptyChart
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = make([]models.ChordEvent, 0)
	p.cursor = 0

	if err := p.engine.Execute(ctx, code); err != nil {
		return Chart{}, fmt.Errorf("failed to execute chart: %w", err)
	}
	if len(p.events) == 0 {
		return Chart{}, ErrEmptyChart
	}

	logger.Debug("Chart parsed", logger.Fields{
		"events": len(p.events),
		"beats":  p.cursor,
	})
	return Chart{Events: p.events, TotalBeats: p.cursor}, nil
}

func normalize(code string) string {
	var calls []string
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, call := range strings.Split(line, ";") {
			if call = strings.TrimSpace(call); call != "" {
				calls = append(calls, call)
			}
		}
	}
	return strings.Join(calls, "; ")
}

// Chord handles chord() calls.
// Example: chord(symbol="Dm7", beats=2, rhythm="swing")
func (d *ChartDSL) Chord(args gs.Args) error {
	p := d.parser

	symbol := stringArg(args, "symbol")
	if symbol == "" {
		// chord("Dm7") positional form
		symbol = stringArg(args, "")
	}
	if symbol == "" {
		return ErrMissingSymbol
	}

	beats, err := beatsArg(args)
	if err != nil {
		return fmt.Errorf("chord %s: %w", symbol, err)
	}

	direction := stringArg(args, "direction")
	if direction != "" && !directions[direction] {
		return fmt.Errorf("chord %s: unknown direction %q", symbol, direction)
	}

	repeat := 1
	if v, ok := args["repeat"]; ok && v.Kind == gs.ValueNumber {
		repeat = int(v.Num)
		if repeat < 1 || repeat > maxRepeat {
			return fmt.Errorf("chord %s: repeat must be between 1 and %d", symbol, maxRepeat)
		}
	}

	for i := 0; i < repeat; i++ {
		p.events = append(p.events, models.ChordEvent{
			ChordSymbol:   symbol,
			StartBeats:    p.cursor,
			DurationBeats: beats,
			Rhythm:        stringArg(args, "rhythm"),
			Direction:     direction,
		})
		p.cursor += beats
	}
	return nil
}

// Rest handles rest() calls.
func (d *ChartDSL) Rest(args gs.Args) error {
	beats, err := beatsArg(args)
	if err != nil {
		return fmt.Errorf("rest: %w", err)
	}
	d.parser.cursor += beats
	return nil
}

func stringArg(args gs.Args, name string) string {
	v, ok := args[name]
	if !ok || v.Kind != gs.ValueString {
		return ""
	}
	return strings.TrimSpace(strings.Trim(v.Str, "\""))
}

func beatsArg(args gs.Args) (float64, error) {
	v, ok := args["beats"]
	if !ok {
		return DefaultBeats, nil
	}
	if v.Kind != gs.ValueNumber || v.Num <= 0 {
		return 0, ErrInvalidBeats
	}
	return v.Num, nil
}

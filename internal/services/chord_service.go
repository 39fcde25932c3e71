package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Conceptual-Machines/magda-harmony/internal/chord"
	"github.com/Conceptual-Machines/magda-harmony/internal/logger"
	"github.com/Conceptual-Machines/magda-harmony/internal/metrics"
	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
)

const defaultCacheSize = 512

// ChordService parses chord symbols and voices them. Parsed chords are
// immutable, so they are cached and shared between callers.
type ChordService struct {
	cache    *lru.Cache[string, *chord.Chord]
	mode     theory.AccidentalMode
	recorder metrics.Recorder
}

// NewChordService creates a service with an LRU cache of cacheSize chords.
// A nil recorder discards metrics.
func NewChordService(cacheSize int, mode theory.AccidentalMode, recorder metrics.Recorder) (*ChordService, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, *chord.Chord](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create chord cache: %w", err)
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &ChordService{cache: cache, mode: mode, recorder: recorder}, nil
}

// Mode is the accidental mode used when a request does not name one.
func (s *ChordService) Mode() theory.AccidentalMode {
	return s.mode
}

// CacheLen reports how many parsed chords are cached.
func (s *ChordService) CacheLen() int {
	return s.cache.Len()
}

// ResolveMode parses name, falling back to the service default when empty.
func (s *ChordService) ResolveMode(name string) (theory.AccidentalMode, error) {
	if strings.TrimSpace(name) == "" {
		return s.mode, nil
	}
	return theory.ParseAccidentalMode(name)
}

// Parse returns the chord for symbol, from the cache when possible.
func (s *ChordService) Parse(ctx context.Context, symbol string) (*chord.Chord, error) {
	start := time.Now()
	key := strings.TrimSpace(symbol)

	if c, ok := s.cache.Get(key); ok {
		s.recorder.RecordChordParse(ctx, "", true, time.Since(start))
		return c, nil
	}

	c, err := chord.Parse(key)
	if err != nil {
		kind := "unknown"
		var perr *chord.ParseError
		if errors.As(err, &perr) {
			kind = perr.Kind()
		}
		logger.Warn("Chord symbol rejected", logger.Fields{
			"symbol":     key,
			"error_kind": kind,
			"error":      err.Error(),
		})
		s.recorder.RecordChordParse(ctx, kind, false, time.Since(start))
		return nil, err
	}

	s.cache.Add(key, c)
	s.recorder.RecordChordParse(ctx, "", false, time.Since(start))
	logger.Debug("Chord parsed", logger.Fields{
		"symbol":    key,
		"canonical": c.String(),
	})
	return c, nil
}

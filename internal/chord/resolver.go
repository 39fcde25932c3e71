package chord

import (
	"strconv"

	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
)

// macros lists the pure alterations each quasi-quality injects.
var macros = map[string][]theory.Interval{
	"dim":  {{Accidental: theory.Flat, Number: 3}, {Accidental: theory.Flat, Number: 5}, {Accidental: theory.DoubleFlat, Number: 7}},
	"hdim": {{Accidental: theory.Flat, Number: 3}, {Accidental: theory.Flat, Number: 5}},
	"aug":  {{Accidental: theory.Sharp, Number: 5}},
}

var macroSources = map[string]Source{
	"dim":  DimMacro,
	"hdim": HalfDimMacro,
	"aug":  AugMacro,
}

// quasiExtensions are the numerals that can stand in for a missing extension.
var quasiExtensions = map[int]bool{3: true, 5: true, 7: true, 9: true, 11: true, 13: true}

// Parse reads a chord symbol such as "Cmaj9", "F#m7b5" or "Bbsus4(b9)".
// Parse either returns a complete Chord or a *ParseError; it panics with
// *InvariantError only if the grammar contradicts itself.
func Parse(symbol string) (*Chord, error) {
	p, err := split(symbol)
	if err != nil {
		return nil, err
	}
	quality, ok := lookupQuality(p.quality)
	if !ok {
		return nil, diagnose(symbol, p.postRoot)
	}
	root, err := theory.NewNote(p.root, p.rootAccidental)
	if err != nil {
		return nil, &ParseError{Symbol: symbol, Fragment: string(p.root), Err: ErrInvalidRoot}
	}

	r := &resolver{
		symbol: symbol,
		chord: &Chord{
			symbol:      symbol,
			root:        root,
			quality:     quality,
			extension:   5,
			alterations: map[int][]Degree{},
		},
	}
	tail := p.tail
	if (p.extension == "#11" || p.extension == "#15") && quality != Major {
		// Lydian extensions only exist for major chords; elsewhere the
		// numeral is an ordinary alteration.
		tail = append([]token{{kind: tokenNumeral, text: p.extension, value: p.extension}}, tail...)
		p.extension = ""
	}
	r.chord.explicit = p.quality != "" || p.extension != ""

	if err := r.applyExtension(p.extension); err != nil {
		return nil, err
	}
	if err := r.applyTail(tail); err != nil {
		return nil, err
	}
	return r.chord, nil
}

type resolver struct {
	symbol         string
	chord          *Chord
	extensionGiven bool
}

func (r *resolver) applyExtension(ext string) error {
	c := r.chord
	if ext == "" {
		return nil
	}
	r.extensionGiven = true
	if ext[0] == '#' {
		c.sharpEleven = true
		ext = ext[1:]
	}
	n, err := strconv.Atoi(ext)
	if err != nil {
		return &ParseError{Symbol: r.symbol, Fragment: ext, Err: ErrDegreeSyntax}
	}

	switch {
	case n == 2 || n == 4:
		c.extension = 5
		if c.quality == Dominant {
			r.suspend(n)
			return nil
		}
		c.added = append(c.added, newDegree(theory.Natural, n, Addition, true))
	case n == 5 && c.quality == Dominant:
		c.extension = 5
		c.removed = append(c.removed, newDegree(theory.Natural, 3, Removed, false))
	default:
		c.extension = n
	}
	return nil
}

// applyTail resolves alteration tokens left to right. Only the first token
// that is neither a quasi-quality nor "alt" may act as a quasi-extension.
func (r *resolver) applyTail(tail []token) error {
	quasiOpen := !r.chord.explicit
	for _, tok := range tail {
		switch tok.kind {
		case tokenQuasiQuality:
			if err := r.applyMacro(tok); err != nil {
				return err
			}
			continue
		case tokenAlt:
			r.chord.altered = true
			continue
		}

		first := quasiOpen
		quasiOpen = false
		var err error
		switch tok.kind {
		case tokenNumeral:
			err = r.applyNumeral(tok, first)
		case tokenAdd:
			err = r.applyAddition(tok)
		case tokenNo:
			err = r.applyRemoval(tok)
		case tokenSus:
			err = r.applySus(tok, first)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) degree(tok token, value string, source Source) (Degree, error) {
	d, err := ParseDegree(value, source)
	if err != nil {
		return Degree{}, &ParseError{Symbol: r.symbol, Fragment: tok.text, Err: err}
	}
	return d, nil
}

func (r *resolver) applyNumeral(tok token, first bool) error {
	d, err := r.degree(tok, tok.value, Alteration)
	if err != nil {
		return err
	}
	if first && d.Accidental == theory.Natural && quasiExtensions[d.Number] {
		r.chord.extension = d.Number
		r.extensionGiven = true
		return nil
	}
	r.addAlt(d)
	return nil
}

// addAlt alters a tertian tone the first time it is mentioned and turns every
// other numeral into an addition.
func (r *resolver) addAlt(d Degree) {
	c := r.chord
	n := d.Number
	if n%2 == 1 && n <= c.extension && len(c.alterations[n]) == 0 &&
		!c.isRemoved(n) && !(n == 3 && c.suspension != NoSuspension) {
		d.Source = Alteration
		c.alterations[n] = append(c.alterations[n], d)
		return
	}
	d.Source = Addition
	c.added = append(c.added, d)
}

func (r *resolver) applyAddition(tok token) error {
	d, err := r.degree(tok, tok.value, Addition)
	if err != nil {
		return err
	}
	r.chord.added = append(r.chord.added, d)
	return nil
}

func (r *resolver) applyRemoval(tok token) error {
	d, err := r.degree(tok, tok.value, Removed)
	if err != nil {
		return err
	}
	if !r.chord.isRemoved(d.Number) {
		r.chord.removed = append(r.chord.removed, d)
	}
	return nil
}

func (r *resolver) applyMacro(tok token) error {
	c := r.chord
	switch tok.value {
	case "dim", "hdim":
		if c.diminished != NotDiminished {
			return &ParseError{Symbol: r.symbol, Fragment: tok.text, Err: ErrConflictingMacro}
		}
		c.diminished = FullyDiminished
		if tok.value == "hdim" {
			c.diminished = HalfDiminished
			if !r.extensionGiven {
				c.extension = 7
			}
		}
	case "aug":
		if c.augmented {
			return &ParseError{Symbol: r.symbol, Fragment: tok.text, Err: ErrConflictingMacro}
		}
		c.augmented = true
	}
	for _, iv := range macros[tok.value] {
		c.alterations[iv.Number] = append(c.alterations[iv.Number], Degree{Interval: iv, Source: macroSources[tok.value]})
	}
	return nil
}

func (r *resolver) applySus(tok token, first bool) error {
	c := r.chord
	switch suffix := tok.value; {
	case suffix == "2" || suffix == "4":
		n, _ := strconv.Atoi(suffix)
		r.suspend(n)
	case suffix != "" && first:
		r.suspend(4)
		n, _ := strconv.Atoi(suffix)
		c.extension = n
		r.extensionGiven = true
	case suffix != "":
		r.suspend(4)
		d, err := r.degree(tok, suffix, Alteration)
		if err != nil {
			return err
		}
		r.addAlt(d)
	case first:
		r.suspend(4)
		c.extension = 9
		r.extensionGiven = true
	default:
		r.suspend(4)
	}
	return nil
}

// suspend replaces the third with degree 2 or 4. A second, different
// suspension keeps the first and adds the new degree.
func (r *resolver) suspend(n int) {
	c := r.chord
	mode := SusFour
	if n == 2 {
		mode = SusTwo
	}
	switch c.suspension {
	case NoSuspension:
		c.suspension = mode
	case mode:
	default:
		c.added = append(c.added, newDegree(theory.Natural, n, Addition, true))
	}
}

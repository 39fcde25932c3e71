package chord

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
)

type tokenKind int

const (
	tokenNumeral tokenKind = iota
	tokenQuasiQuality
	tokenAdd
	tokenNo
	tokenSus
	tokenAlt
)

// token is one alteration-tail element. value holds the degree text for
// numerals, add and no, the macro name for quasi-qualities and the suffix for
// sus.
type token struct {
	kind  tokenKind
	text  string
	value string
}

type matcher struct {
	name  string
	match func(s string) (int, token)
}

var (
	accidentalPrefixes = []string{"bb", "b", "#", "x", ""}
	alterationNumerals = []string{"11", "13", "15", "2", "3", "4", "5", "6", "7", "9"}
	susSuffixes        = []string{"11", "13", "2", "4", "7", "9"}
	bareExtensions     = []string{"2", "3", "4", "5", "7", "9", "11", "#11", "13", "15", "#15"}
	quasiQualities     = []string{"hdim", "dim", "aug", "+"}
)

// matchers are tried in order at every position; the longest match wins and
// earlier matchers win ties.
var matchers = []matcher{
	{name: "numeral", match: matchNumeral},
	{name: "quasi-quality", match: matchQuasiQuality},
	{name: "add", match: keywordDegree("add", tokenAdd)},
	{name: "no", match: keywordDegree("no", tokenNo)},
	{name: "sus", match: matchSus},
	{name: "alt", match: matchAlt},
}

// Clean drops every character a chord symbol cannot contain.
func Clean(symbol string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return r
		case r == '#', r == '+', r == '-', r == '(', r == ')':
			return r
		}
		return -1
	}, symbol)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func matchNumeral(s string) (int, token) {
	best := 0
	for _, acc := range accidentalPrefixes {
		if !strings.HasPrefix(s, acc) {
			continue
		}
		for _, num := range alterationNumerals {
			if strings.HasPrefix(s[len(acc):], num) && len(acc)+len(num) > best {
				best = len(acc) + len(num)
			}
		}
	}
	if best == 0 {
		return 0, token{}
	}
	return best, token{kind: tokenNumeral, text: s[:best], value: s[:best]}
}

func matchQuasiQuality(s string) (int, token) {
	for _, kw := range quasiQualities {
		if hasPrefixFold(s, kw) {
			value := strings.ToLower(kw)
			if value == "+" {
				value = "aug"
			}
			return len(kw), token{kind: tokenQuasiQuality, text: s[:len(kw)], value: value}
		}
	}
	return 0, token{}
}

// matchDegree matches an optional accidental followed by 1?[0-9], rejecting 0.
func matchDegree(s string) int {
	for _, acc := range accidentalPrefixes {
		if !strings.HasPrefix(s, acc) {
			continue
		}
		rest := s[len(acc):]
		switch {
		case len(rest) >= 2 && rest[0] == '1' && isDigit(rest[1]):
			return len(acc) + 2
		case len(rest) >= 1 && isDigit(rest[0]) && rest[0] != '0':
			return len(acc) + 1
		}
	}
	return 0
}

func keywordDegree(keyword string, kind tokenKind) func(string) (int, token) {
	return func(s string) (int, token) {
		if !hasPrefixFold(s, keyword) {
			return 0, token{}
		}
		n := matchDegree(s[len(keyword):])
		if n == 0 {
			return 0, token{}
		}
		end := len(keyword) + n
		return end, token{kind: kind, text: s[:end], value: s[len(keyword):end]}
	}
}

func matchSus(s string) (int, token) {
	if !hasPrefixFold(s, "sus") {
		return 0, token{}
	}
	suffix := ""
	for _, candidate := range susSuffixes {
		if strings.HasPrefix(s[3:], candidate) && len(candidate) > len(suffix) {
			suffix = candidate
		}
	}
	end := 3 + len(suffix)
	return end, token{kind: tokenSus, text: s[:end], value: suffix}
}

func matchAlt(s string) (int, token) {
	if !hasPrefixFold(s, "alt") {
		return 0, token{}
	}
	return 3, token{kind: tokenAlt, text: s[:3], value: "alt"}
}

// nextToken returns the longest token at the front of s, or zero length.
func nextToken(s string) (int, token) {
	best, bestTok := 0, token{}
	for _, m := range matchers {
		if n, tok := m.match(s); n > best {
			best, bestTok = n, tok
		}
	}
	return best, bestTok
}

// tokenize consumes s from the front and returns the tokens plus whatever
// could not be matched.
func tokenize(s string) ([]token, string) {
	var tokens []token
	for s != "" {
		n, tok := nextToken(s)
		if n == 0 {
			return tokens, s
		}
		tokens = append(tokens, tok)
		s = s[n:]
	}
	return tokens, ""
}

// parts is the structural split of a chord symbol.
type parts struct {
	root           byte
	rootAccidental theory.Accidental
	quality        string
	extension      string
	tail           []token
	postRoot       string
}

// split separates root, quality, bare extension and alteration tail. The
// quality is the shortest prefix for which the rest of the symbol tokenizes
// completely, so it never swallows extension or alteration material.
// Everything from the first parenthesis on belongs to the tail.
func split(symbol string) (parts, error) {
	cleaned := Clean(symbol)
	if cleaned == "" {
		return parts{}, &ParseError{Symbol: symbol, Err: ErrInvalidRoot}
	}
	p := parts{root: byte(unicode.ToUpper(rune(cleaned[0])))}
	if p.root < 'A' || p.root > 'G' {
		r, _ := utf8.DecodeRuneInString(cleaned)
		return parts{}, &ParseError{Symbol: symbol, Fragment: string(r), Err: ErrInvalidRoot}
	}

	rest := cleaned[1:]
	switch {
	case strings.HasPrefix(rest, "b"):
		p.rootAccidental, rest = theory.Flat, rest[1:]
	case strings.HasPrefix(rest, "#"):
		p.rootAccidental, rest = theory.Sharp, rest[1:]
	}

	head, tail := rest, ""
	if i := strings.IndexByte(rest, '('); i >= 0 {
		head, tail = rest[:i], rest[i:]
	}
	head = strings.ReplaceAll(head, ")", "")
	tail = strings.NewReplacer("(", "", ")", "").Replace(tail)
	p.postRoot = head + tail

	for q := 0; q <= len(head); q++ {
		p.quality = head[:q]
		after := head[q:]
		for _, ext := range bareExtensions {
			if !strings.HasPrefix(after, ext) {
				continue
			}
			if toks, left := tokenize(after[len(ext):] + tail); left == "" {
				p.extension, p.tail = ext, toks
				return p, nil
			}
		}
		if toks, left := tokenize(after + tail); left == "" {
			p.tail = toks
			return p, nil
		}
	}
	return parts{}, diagnose(symbol, p.postRoot)
}

// lookupQuality resolves a quality token. Single-letter forms are
// case-sensitive, word forms are not.
func lookupQuality(q string) (Quality, bool) {
	switch q {
	case "":
		return Dominant, true
	case "M", "Δ":
		return Major, true
	case "m", "-":
		return Minor, true
	}
	switch strings.ToLower(q) {
	case "t", "ma", "maj", "major":
		return Major, true
	case "mi", "min", "minor":
		return Minor, true
	}
	return Dominant, false
}

// diagnose explains why the text after the root could not be read. It skips
// characters until the first legitimate token and then requires legitimate
// tokens all the way to the end.
func diagnose(symbol, postRoot string) error {
	s, skipped, matched := postRoot, 0, false
	for s != "" {
		if n, _ := nextToken(s); n > 0 {
			matched = true
			s = s[n:]
			continue
		}
		if matched {
			return &ParseError{Symbol: symbol, Fragment: s, Err: ErrInvalidAlteration}
		}
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		skipped += size
	}
	switch {
	case !matched:
		return &ParseError{Symbol: symbol, Fragment: postRoot, Err: ErrUnrecognizedQuality}
	case skipped > 0:
		return &ParseError{Symbol: symbol, Fragment: postRoot[:skipped], Err: ErrUnrecognizedQuality}
	}
	panic(&InvariantError{Symbol: symbol, Detail: "diagnosis consumed " + postRoot + " without finding an illegal token"})
}

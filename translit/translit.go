package translit

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Expansion returns the static-table expansion for a code point, if
// there is one. Expansion strings consist of printable ASCII only.
// ASCII code points are not in the table; they represent themselves.
func Expansion(r rune) (string, bool) {
	s, ok := asciiFrom[r]
	return s, ok
}

// marklessNFKD is the decomposition fallback for code points without a
// table entry: compatibility decomposition with combining marks
// removed. 'ǻ' decomposes to 'a' plus two marks and folds to "a"
// without a table entry of its own.
var marklessNFKD = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// resolve maps a non-ASCII code point to its ASCII expansion. The
// empty expansion with ok=true means the code point is absorbed (a
// bare combining mark). ok=false means there is no ASCII
// approximation and the code point passes through unchanged.
func resolve(r rune) (string, bool) {
	if s, ok := asciiFrom[r]; ok {
		return s, true
	}
	d, _, err := transform.String(marklessNFKD, string(r))
	if err != nil {
		return "", false
	}
	if d == string(r) {
		return "", false // decomposition did not help
	}
	// Decomposition may contain non-ASCII constituents ('Ǽ' decomposes
	// to 'Æ' plus a mark), so each one is sent through the table again.
	var b strings.Builder
	for _, dr := range d {
		if dr < utf8.RuneSelf {
			b.WriteRune(dr)
			continue
		}
		if s, ok := asciiFrom[dr]; ok {
			b.WriteString(s)
			continue
		}
		tracer().Debugf("no ASCII approximation for %#U", r)
		return "", false
	}
	return b.String(), true
}

// A Reader walks an input string and lazily yields its transliterated
// ASCII character stream. Characters without an ASCII approximation
// pass through unchanged, so the stream is not guaranteed to be pure
// ASCII for arbitrary input.
//
// A Reader holds a cursor into the input and is therefore meant to be
// created afresh per operation; it must not be shared between
// goroutines. The zero value is an exhausted Reader.
type Reader struct {
	rest string // unconsumed part of the input
	exp  string // pending expansion being emitted, printable ASCII
	fold bool   // fold character case?
}

// NewReader creates a Reader over an input string. With foldCase set,
// every emitted character is additionally folded to lower case.
func NewReader(s string, foldCase bool) *Reader {
	return &Reader{rest: s, fold: foldCase}
}

// Next returns the next character of the transliterated stream, or
// ok=false when the input is exhausted.
func (rr *Reader) Next() (rune, bool) {
	if len(rr.exp) > 0 {
		c := rune(rr.exp[0])
		rr.exp = rr.exp[1:]
		return rr.foldASCII(c), true
	}
	for len(rr.rest) > 0 {
		r, size := utf8.DecodeRuneInString(rr.rest)
		rr.rest = rr.rest[size:]
		if r < utf8.RuneSelf {
			return rr.foldASCII(r), true
		}
		s, ok := resolve(r)
		if !ok { // pass through unchanged
			if rr.fold {
				return unicode.ToLower(r), true
			}
			return r, true
		}
		if s == "" { // absorbed combining mark
			continue
		}
		rr.exp = s[1:]
		return rr.foldASCII(rune(s[0])), true
	}
	return 0, false
}

// ReadRune makes Reader an io.RuneReader over the transliterated
// stream. The size return value is the number of input bytes consumed
// by the call; it is 0 while a multi-character expansion is being
// emitted.
func (rr *Reader) ReadRune() (r rune, size int, err error) {
	before := len(rr.rest)
	r, ok := rr.Next()
	if !ok {
		return 0, 0, io.EOF
	}
	return r, before - len(rr.rest), nil
}

func (rr *Reader) foldASCII(r rune) rune {
	if rr.fold && r >= 'A' && r <= 'Z' {
		return r | 0x20
	}
	return r
}

// ASCII returns the transliterated form of a string as a new string.
// It materializes the character stream of a Reader and is intended for
// building sort keys or display forms, not for comparing.
func ASCII(s string) string {
	return materialize(s, false)
}

// ASCIIFold is like ASCII, but additionally folds character case.
func ASCIIFold(s string) string {
	return materialize(s, true)
}

func materialize(s string, foldCase bool) string {
	var b strings.Builder
	b.Grow(len(s))
	rr := NewReader(s, foldCase)
	for {
		r, ok := rr.Next()
		if !ok {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

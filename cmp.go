package lexcmp

import (
	"strings"
	"unicode"

	"github.com/npillmayer/lexcmp/translit"
)

// flags select the behaviour of the generic comparison driver.
// The exported comparator functions are the only way for clients
// to choose a combination.
type flags uint8

const (
	natural   flags = 1 << iota // compare digit runs numerically
	foldcase                    // fold character case before comparing
	alnumOnly                   // skip characters which are neither letters nor digits
)

// Compare compares two strings through their transliterated ASCII
// representation, case-sensitively. It returns -1 if a sorts before b,
// +1 if a sorts after b, and 0 if and only if a == b.
func Compare(a, b string) int { return compare(a, b, 0) }

// CompareAlnum is like Compare, but skips characters which are neither
// letters nor digits.
func CompareAlnum(a, b string) int { return compare(a, b, alnumOnly) }

// CompareFold is like Compare, but folds character case, i.e. compares
// case-insensitively.
func CompareFold(a, b string) int { return compare(a, b, foldcase) }

// CompareFoldAlnum is like CompareFold, but skips characters which are
// neither letters nor digits.
func CompareFoldAlnum(a, b string) int { return compare(a, b, foldcase|alnumOnly) }

// CompareNatural compares two strings through their transliterated
// ASCII representation, treating maximal runs of ASCII digits as
// numbers: "50" sorts before "100".
func CompareNatural(a, b string) int { return compare(a, b, natural) }

// CompareNaturalAlnum is like CompareNatural, but skips characters
// which are neither letters nor digits.
func CompareNaturalAlnum(a, b string) int { return compare(a, b, natural|alnumOnly) }

// CompareNaturalFold is like CompareNatural, but folds character case,
// i.e. compares case-insensitively.
func CompareNaturalFold(a, b string) int { return compare(a, b, natural|foldcase) }

// CompareNaturalFoldAlnum is like CompareNaturalFold, but skips
// characters which are neither letters nor digits.
func CompareNaturalFoldAlnum(a, b string) int {
	return compare(a, b, natural|foldcase|alnumOnly)
}

// compare is the comparison driver behind all exported comparators.
// It runs the primary comparison over the transliterated streams and,
// on equality, breaks the tie with a raw code-point comparison of the
// untransformed inputs. For valid UTF-8, byte order equals code-point
// order, so strings.Compare is the raw comparison.
func compare(a, b string, f flags) int {
	x := stream{rd: translit.NewReader(a, f&foldcase != 0)}
	y := stream{rd: translit.NewReader(b, f&foldcase != 0)}
	var rel int
	if f&natural != 0 {
		rel = compareNatural(&x, &y, f&alnumOnly != 0)
	} else {
		rel = compareLexical(&x, &y, f&alnumOnly != 0)
	}
	if rel == 0 {
		tracer().Debugf("transliterated streams equal, falling back to raw comparison")
		return strings.Compare(a, b)
	}
	return rel
}

// compareLexical consumes two transliterated streams in lock-step and
// decides on the first mismatching character, by code-point value. A
// stream exhausting first makes its input the lesser one (prefix rule).
func compareLexical(x, y *stream, alnumOnly bool) int {
	for {
		ra, oka := x.next(alnumOnly)
		rb, okb := y.next(alnumOnly)
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return -1
		case !okb:
			return 1
		}
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
	}
}

// A stream wraps a transliterating reader with a one-character
// lookahead. The natural comparator needs to peek at the next
// character to find digit-run boundaries without consuming them.
// Streams are stack-local to a single comparison call.
type stream struct {
	rd     *translit.Reader
	la     rune // lookahead character, valid if haveLA
	haveLA bool
}

// peek returns the next character without consuming it. With skipSep
// set, characters which are neither letters nor digits are consumed
// and skipped; they act as token boundaries only.
func (s *stream) peek(skipSep bool) (rune, bool) {
	for {
		if !s.haveLA {
			r, ok := s.rd.Next()
			if !ok {
				return 0, false
			}
			s.la, s.haveLA = r, true
		}
		if skipSep && !isAlnum(s.la) {
			s.haveLA = false
			continue
		}
		return s.la, true
	}
}

// next consumes and returns the next character, honoring skipSep like peek.
func (s *stream) next(skipSep bool) (rune, bool) {
	r, ok := s.peek(skipSep)
	s.haveLA = false
	return r, ok
}

func isAlnum(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r < 0x80:
		return false
	}
	// pass-through characters beyond ASCII
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

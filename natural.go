package lexcmp

// compareNatural consumes two transliterated streams token-wise. A
// token is either a maximal run of ASCII digits or a single non-digit
// character. Two digit runs compare numerically; everything else
// compares by code-point value like the lexicographic stage, which
// places digits before letters when token kinds differ at the same
// position. With alnumOnly set, characters which are neither letters
// nor digits separate tokens but carry no value of their own.
func compareNatural(x, y *stream, alnumOnly bool) int {
	for {
		ra, oka := x.peek(alnumOnly)
		rb, okb := y.peek(alnumOnly)
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return -1
		case !okb:
			return 1
		}
		if isDigit(ra) && isDigit(rb) {
			if rel := compareDigitRuns(x, y, alnumOnly); rel != 0 {
				return rel
			}
			continue
		}
		x.next(alnumOnly)
		y.next(alnumOnly)
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
	}
}

// compareDigitRuns compares the digit runs starting at the current
// position of both streams by numeric value, consuming them. Leading
// zeros are stripped first; then the longer zero-stripped run denotes
// the greater number, and runs of equal length are decided by their
// first differing digit. Runs of numerically equal value (e.g. "007"
// and "7") compare as 0 here; the raw-input tie-break of the driver
// keeps the overall order strict.
//
// No numeric value is ever materialized, so runs of arbitrary length
// cannot overflow.
func compareDigitRuns(x, y *stream, alnumOnly bool) int {
	skipLeadingZeros(x, alnumOnly)
	skipLeadingZeros(y, alnumOnly)
	rel := 0
	for {
		ra, oka := x.peek(alnumOnly)
		rb, okb := y.peek(alnumOnly)
		da := oka && isDigit(ra)
		db := okb && isDigit(rb)
		switch {
		case da && db:
			if rel == 0 && ra != rb {
				if ra < rb {
					rel = -1
				} else {
					rel = 1
				}
			}
			x.next(alnumOnly)
			y.next(alnumOnly)
		case da: // x's run is longer, hence greater
			return 1
		case db:
			return -1
		default:
			return rel
		}
	}
}

func skipLeadingZeros(s *stream, alnumOnly bool) {
	for {
		r, ok := s.peek(alnumOnly)
		if !ok || r != '0' {
			return
		}
		s.next(alnumOnly)
	}
}

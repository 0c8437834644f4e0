/*
Package lexcmp compares strings lexicographically, in the sense that
non-ASCII characters such as 'á' or 'ß' are treated like their closest
ASCII representation: 'á' is treated as 'a', 'ß' is treated as 'ss',
and so on. Pictographic characters are treated like a short descriptive
ASCII word, so emojis group predictably instead of sorting by raw
code-point value.

Content

Comparison proceeds in two stages. The primary stage walks the two
inputs through lazily transliterated character streams (see sub-package
translit) and compares them in lock-step. If the primary stage reports
equality, a secondary stage compares the untransformed inputs by raw
code-point value. Distinct strings therefore never compare equal, and
every comparator in this package is a strict total order: reflexive,
antisymmetric, transitive, and deterministic across calls.

Natural ordering treats maximal runs of ASCII digits as numbers, so
"50" sorts before "100" and "item2" before "item10". Digit runs are
compared by zero-stripped length first and digit-by-digit second; no
arbitrary-precision number is ever materialized, so runs of any length
compare in linear time.

There are eight comparator functions, one for each combination of three
independent axes:

	function                  natural  case-insensitive  skips non-alnum
	Compare                      -            -                 -
	CompareAlnum                 -            -                yes
	CompareFold                  -           yes                -
	CompareFoldAlnum             -           yes               yes
	CompareNatural              yes           -                 -
	CompareNaturalAlnum         yes           -                yes
	CompareNaturalFold          yes          yes                -
	CompareNaturalFoldAlnum     yes          yes               yes

The Alnum variants skip characters that are neither letters nor digits,
so "f-5" sorts next to "f5".

Typical Usage

Comparators plug directly into the sort routines of the standard
library:

	names := []string{"Straße", "strasse", "item10", "item2"}
	sort.Slice(names, func(i, j int) bool {
	    return lexcmp.CompareNaturalFold(names[i], names[j]) < 0
	})

Sub-package lexsort wraps this pattern and additionally offers
precomputed sort keys for repeated comparisons.

Attention

This package does not attempt locale-aware collation. It should behave
reasonably for a wide range of locales, but language-specific ordering
rules (such as 'ö' sorting after 'z' in Swedish) are out of its scope.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexcmp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexcmp'.
func tracer() tracing.Trace {
	return tracing.Select("lexcmp")
}

/*
Package translit maps Unicode text to its closest ASCII representation.

Content

The mapping is driven by a static table from code points to short
printable-ASCII expansions: 'á' expands to "a", 'ß' to "ss", 'Œ' to
"OE", '٣' to "3", and pictographic characters to a descriptive word,
e.g. '☕' to "coffee". The table is immutable process-wide data and
lookups are total: code points without a table entry are run through
a compatibility decomposition with combining marks removed, and if
that does not produce ASCII either, the code point passes through
unchanged. Nothing is ever silently dropped, with one deliberate
exception: a bare combining mark expands to nothing, so decomposed
and precomposed spellings of the same character produce identical
ASCII streams.

The table is restricted to code points whose ASCII form the
decomposition fallback cannot recover, plus the Latin-1 range as a
fast path. It is emitted by the generator in internal/generator.

Typical Usage

Reader is a lazy producer over one input string. It expands each
character through the table and yields the resulting ASCII stream
without allocating an intermediate buffer:

	rr := translit.NewReader("déjà-vu", true)
	for {
	    r, ok := rr.Next()
	    if !ok {
	        break
	    }
	    // r walks d, e, j, a, -, v, u
	}

ASCII and ASCIIFold materialize the whole stream for callers that
want a transliterated copy rather than a comparison.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package translit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexcmp.translit'.
func tracer() tracing.Trace {
	return tracing.Select("lexcmp.translit")
}

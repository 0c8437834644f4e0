/*
Package lexsort sorts slices of strings with the comparators of
package lexcmp. It is a thin convenience over the sort routines of the
standard library; the comparison logic lives entirely in lexcmp.

Typical Usage

	names := []string{"ß", "é", "100", "hello", "world", "50", ".", "B!"}
	lexsort.SortUnstable(names, lexcmp.CompareNaturalFold)

For repeated comparisons over large inputs, Key and KeyFold produce
precomputed sort keys: comparing two keys with strings.Compare agrees
with comparing the underlying strings with lexcmp.Compare and
lexcmp.CompareFold, respectively.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexsort

import (
	"bytes"
	"context"
	"sort"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/lexcmp/translit"
)

// CompareFn is the comparator contract of package lexcmp: negative for
// less, 0 for equal, positive for greater.
type CompareFn func(a, b string) int

// Sort sorts a slice of strings with the given comparator. The sort is
// stable; as lexcmp comparators never report distinct strings equal,
// SortUnstable is usually the better choice.
func Sort(a []string, cmp CompareFn) {
	sort.SliceStable(a, func(i, j int) bool { return cmp(a[i], a[j]) < 0 })
}

// SortUnstable sorts a slice of strings with the given comparator.
func SortUnstable(a []string, cmp CompareFn) {
	sort.Slice(a, func(i, j int) bool { return cmp(a[i], a[j]) < 0 })
}

// SortBy sorts a slice of strings with the given comparator, mapping
// each string through by before comparing. The typical use is trimming:
//
//	lexsort.SortBy(lines, lexcmp.CompareNaturalFold, strings.TrimSpace)
//
// The sort is stable, so strings mapping to the same image keep their
// original relative order.
func SortBy(a []string, cmp CompareFn, by func(string) string) {
	sort.SliceStable(a, func(i, j int) bool { return cmp(by(a[i]), by(a[j])) < 0 })
}

// IsSorted tells whether a slice of strings is sorted with respect to
// the given comparator.
func IsSorted(a []string, cmp CompareFn) bool {
	return sort.SliceIsSorted(a, func(i, j int) bool { return cmp(a[i], a[j]) < 0 })
}

// Key returns a precomputed sort key for a string: the transliterated
// stream, a NUL separator, and the raw input. Comparing two keys with
// strings.Compare agrees with lexcmp.Compare on the underlying strings,
// as long as the inputs contain no NUL bytes themselves.
//
// Keys pay off when the same strings are compared many times, e.g.
// when sorting a large directory listing.
func Key(s string) string {
	return key(s, false)
}

// KeyFold is like Key, but folds character case; it corresponds to
// lexcmp.CompareFold.
func KeyFold(s string) string {
	return key(s, true)
}

// Key building creates a high fluctuation of short-lived buffers. To
// avoid multiple allocation of small objects we will pool them.
type keyBufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalKeyBufferPool *keyBufferPool

func init() {
	globalKeyBufferPool = &keyBufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &bytes.Buffer{}, nil
		})
	globalKeyBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalKeyBufferPool.opool = pool.NewObjectPool(globalKeyBufferPool.ctx, factory, config)
}

func key(s string, foldCase bool) string {
	o, _ := globalKeyBufferPool.opool.BorrowObject(globalKeyBufferPool.ctx)
	buf := o.(*bytes.Buffer)
	buf.Reset()
	rr := translit.NewReader(s, foldCase)
	for {
		r, ok := rr.Next()
		if !ok {
			break
		}
		buf.WriteRune(r)
	}
	buf.WriteByte(0)
	buf.WriteString(s)
	k := buf.String()
	_ = globalKeyBufferPool.opool.ReturnObject(globalKeyBufferPool.ctx, o)
	return k
}

package lexsort_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/lexcmp"
	"github.com/npillmayer/lexcmp/lexsort"
	"github.com/npillmayer/schuko/testconfig"
)

func ExampleSortUnstable() {
	names := []string{"ß", "é", "100", "hello", "world", "50", ".", "B!"}
	lexsort.SortUnstable(names, lexcmp.CompareNaturalFold)
	fmt.Println(names)
	// Output: [. 50 100 B! é hello ß world]
}

func TestSortStable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	names := []string{"The", "quick", "brown", "fox"}
	lexsort.Sort(names, lexcmp.CompareFold)
	expected := []string{"brown", "fox", "quick", "The"}
	for i := range expected {
		if names[i] != expected[i] {
			t.Fatalf("expected %v, have %v", expected, names)
		}
	}
	if !lexsort.IsSorted(names, lexcmp.CompareFold) {
		t.Errorf("expected IsSorted to hold after sorting")
	}
}

func TestSortBy(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	names := []string{"Eeny", " meeny", " miny", " moe"}
	lexsort.SortBy(names, lexcmp.CompareNaturalFold, strings.TrimSpace)
	expected := []string{"Eeny", " meeny", " miny", " moe"}
	for i := range expected {
		if names[i] != expected[i] {
			t.Fatalf("expected %v, have %v", expected, names)
		}
	}
}

var keyCorpus = []string{
	"", "-", "007", "7", "50", "100",
	"a", "A", "ä", "áa", "aa", "ab", "æ", "ae",
	"Foo", "fóò", "straße", "strasse", "世界", "☕", "coffee",
}

func sgn(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func TestKeyAgreesWithCompare(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, a := range keyCorpus {
		for _, b := range keyCorpus {
			want := sgn(lexcmp.Compare(a, b))
			have := sgn(strings.Compare(lexsort.Key(a), lexsort.Key(b)))
			if want != have {
				t.Errorf("Key order for %q vs %q is %d, comparator says %d",
					a, b, have, want)
			}
		}
	}
}

func TestKeyFoldAgreesWithCompareFold(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, a := range keyCorpus {
		for _, b := range keyCorpus {
			want := sgn(lexcmp.CompareFold(a, b))
			have := sgn(strings.Compare(lexsort.KeyFold(a), lexsort.KeyFold(b)))
			if want != have {
				t.Errorf("KeyFold order for %q vs %q is %d, comparator says %d",
					a, b, have, want)
			}
		}
	}
}

func TestKeysAreReusable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// Keys must not share pooled buffer memory after Key returns.
	k1 := lexsort.Key("straße")
	k2 := lexsort.Key("world")
	if k1 != lexsort.Key("straße") || k2 != lexsort.Key("world") {
		t.Errorf("expected keys to be stable across pooled buffer reuse")
	}
}

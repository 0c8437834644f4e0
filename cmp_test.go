package lexcmp_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/lexcmp"
	"github.com/npillmayer/schuko/testconfig"
)

func ExampleCompareNaturalFold() {
	names := []string{"item12", "Item2", "ítem1"}
	sort.Slice(names, func(i, j int) bool {
		return lexcmp.CompareNaturalFold(names[i], names[j]) < 0
	})
	fmt.Println(names)
	// Output: [ítem1 Item2 item12]
}

func TestTransliteratedEquality(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// "á" and "a" fold to the same ASCII stream; only the raw-input
	// tie-break distinguishes them, and it must agree with raw order.
	if rel := lexcmp.CompareFold("á", "a"); rel != 1 {
		t.Errorf("expected CompareFold(á,a) = 1 (tie-break), have %d", rel)
	}
	if rel := lexcmp.CompareFold("a", "á"); rel != -1 {
		t.Errorf("expected CompareFold(a,á) = -1 (tie-break), have %d", rel)
	}
	if rel := lexcmp.CompareFold("straße", "strasse"); rel != 1 {
		t.Errorf("expected straße after strasse via tie-break, have %d", rel)
	}
	// The tie-break must never override a decided primary stage: the
	// raw comparison would put "straßex" after "strassey".
	if rel := lexcmp.CompareFold("straßex", "strassey"); rel != -1 {
		t.Errorf("expected straßex before strassey, have %d", rel)
	}
}

func TestTieBreakDeterminism(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	first := lexcmp.CompareFold("Foo", "fóò")
	if first == 0 {
		t.Fatalf("distinct strings must not compare equal")
	}
	for i := 0; i < 10; i++ {
		if rel := lexcmp.CompareFold("Foo", "fóò"); rel != first {
			t.Fatalf("comparison not deterministic: %d, then %d", first, rel)
		}
		if rel := lexcmp.CompareFold("fóò", "Foo"); rel != -first {
			t.Fatalf("expected reversed arguments to reverse the result")
		}
	}
	if first != strings.Compare("Foo", "fóò") {
		t.Errorf("tie-break should follow raw code-point order")
	}
}

func TestEmptyAndSeparatorOnly(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if rel := lexcmp.Compare("", ""); rel != 0 {
		t.Errorf("expected two empty strings to compare equal, have %d", rel)
	}
	if rel := lexcmp.Compare("", "a"); rel != -1 {
		t.Errorf("expected empty string less than non-empty, have %d", rel)
	}
	if rel := lexcmp.Compare("a", ""); rel != 1 {
		t.Errorf("expected non-empty string greater than empty, have %d", rel)
	}
	// Separator-only strings are empty after skipping and fall through
	// to the tie-break.
	if rel := lexcmp.CompareNaturalAlnum("--", ""); rel != 1 {
		t.Errorf("expected '--' after '' via tie-break, have %d", rel)
	}
	if rel := lexcmp.CompareAlnum("-.", ".."); rel != strings.Compare("-.", "..") {
		t.Errorf("expected separator-only strings decided by tie-break")
	}
}

func TestEmojiGrouping(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// Both fold to "coffee...", so they sort adjacent to the word,
	// not by raw code-point value.
	if rel := lexcmp.CompareFold("☕ break", "coffee break"); rel == 0 {
		t.Errorf("distinct strings must not compare equal")
	}
	if rel := lexcmp.CompareFold("☕ break", "coffez"); rel != -1 {
		t.Errorf("expected '☕ break' before 'coffez', have %d", rel)
	}
	if rel := lexcmp.CompareFold("☕", "cocoa"); rel != 1 {
		t.Errorf("expected '☕' (coffee) after 'cocoa', have %d", rel)
	}
}

// Sorted fixtures: every adjacent pair must compare as strictly less.

func assertSorted(t *testing.T, fixture []string, cmp func(a, b string) int) {
	t.Helper()
	for i := 0; i+1 < len(fixture); i++ {
		if rel := cmp(fixture[i], fixture[i+1]); rel >= 0 {
			t.Errorf("expected %q < %q, have %d", fixture[i], fixture[i+1], rel)
		}
	}
}

func TestSortedFixtureLexical(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	assertSorted(t, []string{
		"-", "-$", "-a", "100", "50", "a", "ä", "aa", "áa", "AB", "Ab", "ab",
		"AE", "ae", "æ", "af",
	}, lexcmp.CompareFold)
}

func TestSortedFixtureNatural(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	assertSorted(t, []string{
		"-", "-$", "-a", "50", "100", "a", "ä", "aa", "áa", "AB", "Ab", "ab",
		"AE", "ae", "æ", "af",
	}, lexcmp.CompareNaturalFold)
	assertSorted(t, []string{
		".", "50", "100", "B!", "é", "hello", "ß", "world",
	}, lexcmp.CompareNaturalFold)
}

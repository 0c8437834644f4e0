/*
Generator for the transliteration table of package translit.

Usage:

	generator [-v] [-o table.go] [-overrides overrides.txt]

Baseline expansions are taken from the unidecode data set. A code
point makes it into the emitted table only if the decomposition
fallback of package translit would not recover its ASCII form at
runtime, except for the Latin-1 range, which is always emitted as a
fast path. The override file has one mapping per line in the form

	00DF; ss   # LATIN SMALL LETTER SHARP S

with '#' starting a comment, mirroring the field layout of Unicode
Character Database files. Overrides win over baseline expansions and
supply the descriptive emoji names, which unidecode does not have.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/arraylist"
	unidecode "github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var logger = log.New(os.Stderr, "translit generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// Candidate code-point blocks, in emission order. Blocks sharing a
// name are emitted as one section of the table file.
var blocks = []struct {
	lo, hi rune
	name   string
}{
	{0x00a0, 0x00ff, "Latin-1 Supplement"},
	{0x0100, 0x024f, "Latin Extended, code points without a useful decomposition"},
	{0x1e00, 0x1eff, "Latin Extended, code points without a useful decomposition"},
	{0x0391, 0x03c9, "Greek"},
	{0x0400, 0x045f, "Cyrillic"},
	{0x0660, 0x0669, "Digits beyond ASCII"},
	{0x06f0, 0x06f9, "Digits beyond ASCII"},
	{0x2010, 0x2265, "General punctuation and symbols"},
	{0x2600, 0x1f9ff, "Pictographs and emoji"},
}

type entry struct {
	r   rune
	exp string
}

var marklessNFKD = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// recoverable tells whether the runtime decomposition fallback would
// produce exp for r on its own, making a table entry redundant.
func recoverable(r rune, exp string) bool {
	d, _, err := transform.String(marklessNFKD, string(r))
	if err != nil {
		return false
	}
	return d == exp
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// collectBaseline walks the candidate blocks and collects table
// entries from the unidecode data set.
func collectBaseline() *arraylist.List {
	defer timeTrack(time.Now(), "collecting baseline expansions")
	list := arraylist.New()
	for _, block := range blocks {
		latin1 := block.hi <= 0x00ff
		n := 0
		for r := block.lo; r <= block.hi; r++ {
			exp := strings.TrimSpace(unidecode.Unidecode(string(r)))
			if exp == "" || exp == string(r) || !isPrintableASCII(exp) {
				continue
			}
			if !latin1 && recoverable(r, exp) {
				continue
			}
			list.Add(entry{r: r, exp: exp})
			n++
		}
		if verbose {
			logger.Printf("%s (%#U..%#U): %d entries", block.name, block.lo, block.hi, n)
		}
	}
	return list
}

// loadOverrides reads the override file. Overrides win over baseline
// entries and may add code points the baseline has no expansion for,
// e.g. the emoji names.
func loadOverrides(path string) (map[rune]string, error) {
	defer timeTrack(time.Now(), "loading "+path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	overrides := make(map[rune]string)
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, ";", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: expected 'CODEPOINT; expansion'", path, lineno)
		}
		cp, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", path, lineno, err)
		}
		exp := strings.TrimSpace(fields[1])
		if exp == "" || !isPrintableASCII(exp) {
			return nil, fmt.Errorf("%s:%d: expansion is not printable ASCII", path, lineno)
		}
		overrides[rune(cp)] = exp
	}
	return overrides, scanner.Err()
}

// A section of the emitted table file: one comment line, then the
// entries of all candidate blocks sharing the section name.
type section struct {
	Name    string
	Entries []entry
}

func sectionFor(r rune) int {
	for i, block := range blocks {
		if r >= block.lo && r <= block.hi {
			for j := range blocks[:i] {
				if blocks[j].name == blocks[i].name {
					return j
				}
			}
			return i
		}
	}
	return -1
}

func merge(baseline *arraylist.List, overrides map[rune]string) []section {
	merged := make(map[rune]string, baseline.Size()+len(overrides))
	it := baseline.Iterator()
	for it.Next() {
		e := it.Value().(entry)
		merged[e.r] = e.exp
	}
	for r, exp := range overrides {
		merged[r] = exp
	}
	sections := make(map[int]*section)
	for r, exp := range merged {
		if r < utf8.RuneSelf {
			logger.Fatalf("entry for ASCII code point %#U; ASCII maps to itself", r)
		}
		i := sectionFor(r)
		if i < 0 {
			logger.Fatalf("override for %#U is outside all candidate blocks", r)
		}
		if sections[i] == nil {
			sections[i] = &section{Name: blocks[i].name}
		}
		sections[i].Entries = append(sections[i].Entries, entry{r: r, exp: exp})
	}
	var ordered []section
	for i := range blocks {
		s := sections[i]
		if s == nil {
			continue
		}
		sort.Slice(s.Entries, func(a, b int) bool { return s.Entries[a].r < s.Entries[b].r })
		ordered = append(ordered, *s)
	}
	return ordered
}

// --- Templates --------------------------------------------------------

var header = `package translit

// This file has been generated -- you probably should NOT EDIT IT !
//
// Emitted by internal/generator. Baseline expansions stem from the
// unidecode data set, amended by the override file. Entries are
// restricted to code points whose ASCII form the decomposition
// fallback cannot recover, plus the Latin-1 range as a fast path.

// asciiFrom maps a Unicode code point to its closest printable-ASCII
// representation. ASCII code points are absent and map to themselves.
var asciiFrom = map[rune]string{
{{range $i, $s := .}}{{if $i}}
{{end}}	// {{$s.Name}}
{{range $s.Entries}}	{{printf "%q" .Rune}}: {{printf "%q" .Expansion}},
{{end}}{{end}}}
`

type templateEntry struct {
	Rune      rune
	Expansion string
}

type templateSection struct {
	Name    string
	Entries []templateEntry
}

func emit(w *os.File, sections []section) error {
	t := template.Must(template.New("table").Parse(header))
	tsections := make([]templateSection, len(sections))
	for i, s := range sections {
		tsections[i].Name = s.Name
		for _, e := range s.Entries {
			tsections[i].Entries = append(tsections[i].Entries,
				templateEntry{Rune: e.r, Expansion: e.exp})
		}
	}
	return t.Execute(w, tsections)
}

func main() {
	overridespath := flag.String("overrides", "overrides.txt", "override file to read")
	output := flag.String("o", "table.go", "table file to emit")
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.Parse()
	baseline := collectBaseline()
	overrides, err := loadOverrides(*overridespath)
	if err != nil {
		logger.Fatal(err)
	}
	sections := merge(baseline, overrides)
	n := 0
	for _, s := range sections {
		n += len(s.Entries)
	}
	logger.Printf("emitting %d table entries", n)
	f, err := os.Create(*output)
	if err != nil {
		logger.Fatal(err)
	}
	defer f.Close()
	if err := emit(f, sections); err != nil {
		logger.Fatal(err)
	}
	logger.Printf("remember to run gofmt on %s", *output)
}

func timeTrack(start time.Time, name string) {
	if verbose {
		logger.Printf("%s took %s", name, time.Since(start))
	}
}

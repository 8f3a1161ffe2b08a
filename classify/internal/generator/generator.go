/*
Package generator is a generator for the bidi bucket range tables.

The table source is not a Unicode companion file but the block inventory
below: the buckets are a deliberate three-way coarsening of Bidi_Class,
and the blocks each bucket covers are part of this module's contract.
The generator turns the inventory into "tables.go" in the classify
directory, so that adding or splitting a block stays a one-line change
here instead of hand-editing range-table literals.

Usage

The generator has just one option, a "verbose" flag.

   generator [-v]

This creates a file "tables.go" in the current directory. It is designed
to be called from the "classify" directory.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"text/template"

	"github.com/emirpasic/gods/lists/arraylist"
)

var logger = log.New(os.Stderr, "classify generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// block is one named code-point range together with the bucket it
// belongs to.
type block struct {
	Name    string
	Comment string
	Lo, Hi  rune
}

// The RTL bucket, in code-point order. Comments become trailing comments
// in the generated table literals.
var rtlBlocks = []block{
	{"Hebrew", "", 0x0590, 0x05FF},
	{"Arabic", "", 0x0600, 0x06FF},
	{"Syriac", "", 0x0700, 0x074F},
	{"ArabicSupplement", "", 0x0750, 0x077F},
	{"Thaana", "", 0x0780, 0x07BF},
	{"NKo", "", 0x07C0, 0x07FF},
	{"Samaritan", "", 0x0800, 0x083F},
	{"Mandaic", "", 0x0840, 0x085F},
	{"SyriacSupplement", "", 0x0860, 0x086F},
	{"ArabicExtendedB", "", 0x0870, 0x089F},
	{"ArabicExtendedA", "", 0x08A0, 0x08FF},
	{"RightToLeftMark", "", 0x200F, 0x200F},
	{"HebrewPresentationForms", "", 0xFB1D, 0xFB4F},
	{"ArabicPresentationFormsA", "", 0xFB50, 0xFDFF},
	{"ArabicPresentationFormsB", "", 0xFE70, 0xFEFC},
	{"RTLSupplementary", "plane-1 and plane-1E RTL blocks", 0x10800, 0x10FFF},
	{"RTLSupplementary", "", 0x1E800, 0x1EFFF},
}

// The weak bucket. Script punctuation and digits live inside RTL blocks;
// ClassForRune consults the weak table first, so no range here needs to
// be carved out of an RTL block.
var weakBlocks = []block{
	{"LatinPunctuation", "tab", 0x0009, 0x0009},
	{"LatinPunctuation", "space, ASCII punctuation, digits", 0x0020, 0x0040},
	{"LatinPunctuation", "", 0x005B, 0x0060},
	{"LatinPunctuation", "", 0x007B, 0x007E},
	{"LatinPunctuation", "Latin-1 punctuation and symbols", 0x00A0, 0x00BF},
	{"LatinPunctuation", "", 0x00D7, 0x00D7},
	{"LatinPunctuation", "", 0x00F7, 0x00F7},
	{"HebrewPunctuation", "maqaf", 0x05BE, 0x05BE},
	{"HebrewPunctuation", "paseq", 0x05C0, 0x05C0},
	{"HebrewPunctuation", "sof pasuq", 0x05C3, 0x05C3},
	{"HebrewPunctuation", "nun hafukha", 0x05C6, 0x05C6},
	{"HebrewPunctuation", "geresh, gershayim", 0x05F3, 0x05F4},
	{"ArabicPunctuation", "comma, date separator", 0x060C, 0x060D},
	{"ArabicPunctuation", "semicolon", 0x061B, 0x061B},
	{"ArabicPunctuation", "triple dot, question mark", 0x061E, 0x061F},
	{"ArabicPunctuation", "percent, decimal, thousands, star", 0x066A, 0x066D},
	{"ArabicPunctuation", "full stop", 0x06D4, 0x06D4},
	{"ArabicIndicDigits", "", 0x0660, 0x0669},
	{"ExtendedArabicIndicDigits", "", 0x06F0, 0x06F9},
	{"GeneralPunctuation", "general punctuation minus RLM", 0x2000, 0x200E},
	{"GeneralPunctuation", "", 0x2010, 0x206F},
	{"CurrencySymbols", "", 0x20A0, 0x20CF},
	{"ByteOrderMark", "", 0xFEFF, 0xFEFF},
}

var header = `package classify

// This file has been generated -- you probably should NOT EDIT IT !
//
// Regenerate with classify/internal/generator.

import (
    "unicode"

    "golang.org/x/text/unicode/rangetable"
)
`

var templateRangeTable = `
var _{{.Name}} = &unicode.RangeTable{
{{- if .R16}}
    R16: []unicode.Range16{
{{- range .R16}}
        {Lo: {{printf "0x%04x" .Lo}}, Hi: {{printf "0x%04x" .Hi}}, Stride: 1},{{with .Comment}} // {{.}}{{end}}
{{- end}}
    },
{{- end}}
{{- if .R32}}
    R32: []unicode.Range32{
{{- range .R32}}
        {Lo: {{printf "0x%05x" .Lo}}, Hi: {{printf "0x%05x" .Hi}}, Stride: 1},{{with .Comment}} // {{.}}{{end}}
{{- end}}
    },
{{- end}}
{{- if .LatinOffset}}
    LatinOffset: {{.LatinOffset}},
{{- end}}
}
`

type tableData struct {
	Name        string
	R16, R32    []block
	LatinOffset int
}

// groupByName collects blocks into per-table data, preserving inventory
// order. Ranges above 0xFFFF go to R32; entries entirely below 0x100
// count towards LatinOffset.
func groupByName(blocks []block) []tableData {
	byName := make(map[string]*tableData)
	order := arraylist.New()
	for _, b := range blocks {
		t := byName[b.Name]
		if t == nil {
			t = &tableData{Name: b.Name}
			byName[b.Name] = t
			order.Add(b.Name)
		}
		if b.Hi > 0xFFFF {
			t.R32 = append(t.R32, b)
		} else {
			t.R16 = append(t.R16, b)
			if b.Hi < 0x100 {
				t.LatinOffset++
			}
		}
	}
	tables := make([]tableData, 0, order.Size())
	it := order.Iterator()
	for it.Next() {
		tables = append(tables, *byName[it.Value().(string)])
	}
	return tables
}

func generateTables(w *bufio.Writer, comment string, blocks []block) []string {
	t := template.Must(template.New("rangetable").Parse(templateRangeTable))
	tables := groupByName(blocks)
	names := make([]string, 0, len(tables))
	fmt.Fprintf(w, "\n// --- %s ---\n", comment)
	for _, tab := range tables {
		checkFatal(t.Execute(w, tab))
		names = append(names, "_"+tab.Name)
	}
	return names
}

func generateMerge(w *bufio.Writer, varname string, names []string) {
	fmt.Fprintf(w, "\nvar %s = rangetable.Merge(\n", varname)
	for _, n := range names {
		fmt.Fprintf(w, "    %s,\n", n)
	}
	w.WriteString(")\n")
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	flag.Parse()
	verbose = *doVerbose
	f, ioerr := os.Create("tables.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	w.WriteString(header)
	rtlNames := generateTables(w, "RTL blocks", rtlBlocks)
	weakNames := generateTables(w, "Weak ranges", weakBlocks)
	generateMerge(w, "rtlRanges", rtlNames)
	generateMerge(w, "weakRanges", weakNames)
	w.Flush()
	if verbose {
		logger.Printf("generated %d RTL and %d weak tables\n", len(rtlNames), len(weakNames))
	}
}

func checkFatal(err error) {
	if err != nil {
		logger.Fatalln(err)
	}
}

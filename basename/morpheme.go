package basename

import (
	"maps"
	"slices"
)

// Morpheme holds the word parts of a root radix.
type Morpheme struct {
	// Suffix is the full form, used when the root ends the name.
	Suffix string
	// Prefix is the combining form, used everywhere else.
	Prefix string
	// Abbreviation is a short upper-case code.
	Abbreviation string
}

// rootMorphemes is fixed. The suffixes of 10 and 13 are bound forms; see standalone.
var rootMorphemes = map[int64]Morpheme{
	0:   {Suffix: "nullary", Prefix: "null", Abbreviation: "NL"},
	1:   {Suffix: "unary", Prefix: "mono", Abbreviation: "UN"},
	2:   {Suffix: "binary", Prefix: "bi", Abbreviation: "BI"},
	3:   {Suffix: "trinary", Prefix: "tri", Abbreviation: "TR"},
	4:   {Suffix: "quaternary", Prefix: "tetra", Abbreviation: "QT"},
	5:   {Suffix: "quinary", Prefix: "penta", Abbreviation: "QN"},
	6:   {Suffix: "seximal", Prefix: "hexa", Abbreviation: "SX"},
	7:   {Suffix: "septimal", Prefix: "hepta", Abbreviation: "SP"},
	8:   {Suffix: "octal", Prefix: "octo", Abbreviation: "OC"},
	9:   {Suffix: "nonary", Prefix: "enna", Abbreviation: "NN"},
	10:  {Suffix: "gesimal", Prefix: "deca", Abbreviation: "DC"},
	11:  {Suffix: "elevenary", Prefix: "leva", Abbreviation: "EL"},
	12:  {Suffix: "dozenal", Prefix: "doza", Abbreviation: "DZ"},
	13:  {Suffix: "ker's dozenal", Prefix: "baker", Abbreviation: "BK"},
	16:  {Suffix: "hex", Prefix: "tesser", Abbreviation: "HX"},
	17:  {Suffix: "suboptimal", Prefix: "mal", Abbreviation: "SB"},
	20:  {Suffix: "vigesimal", Prefix: "icosi", Abbreviation: "VG"},
	36:  {Suffix: "niftimal", Prefix: "feta", Abbreviation: "NF"},
	100: {Suffix: "centesimal", Prefix: "hecto", Abbreviation: "CT"},
}

// standalone rewrites bound root forms that make up a whole name.
var standalone = map[string]string{
	"gesimal":       "decimal",
	"ker's dozenal": "baker's dozenal",
}

// LookupMorpheme returns the morpheme of a root radix.
func LookupMorpheme(radix int64) (Morpheme, bool) {
	m, ok := rootMorphemes[radix]
	return m, ok
}

// Roots lists the root radixes in ascending order.
func Roots() []int64 {
	return slices.Sorted(maps.Keys(rootMorphemes))
}

// rootCost is the number of roots a table entry counts for.
func rootCost(radix int64) int64 {
	if radix < 2 {
		return 0
	}
	return 1
}

func fixStandalone(name string) string {
	if fixed, ok := standalone[name]; ok {
		return fixed
	}
	return name
}

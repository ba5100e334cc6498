package roster

import (
	"strings"
	"unicode"
)

// Status is the classification of a single calendar day under a schedule.
type Status string

const (
	StatusWork Status = "work"
	StatusOff  Status = "off"
)

// Family identifies a supported schedule family. Labels stored on postos are
// free text ("12x36 Par", "Seg a Sex", ...), so they are parsed into a Family
// once at the boundary instead of re-matching substrings on every day.
type Family int

const (
	FamilyUnknown Family = iota
	// fixed weekly: Mon-Fri work with the weekend off
	FamilySegASex
	// fixed weekly: Mon-Sat work, Sunday off
	FamilySegASab
	// 1 on / 1 off, anchored on the assignment start date
	FamilyTwelveThirtySix
	// 12x36 variants anchored on the calendar instead of the pivot:
	// Par works on even days of the month, Impar on odd days
	FamilyTwelveThirtySixPar
	FamilyTwelveThirtySixImpar
	FamilyFiveByOne
	FamilySixByOne
	FamilyFiveByTwo
	FamilyFourByTwo
)

func (f Family) String() string {
	switch f {
	case FamilySegASex:
		return "seg-a-sex"
	case FamilySegASab:
		return "seg-a-sab"
	case FamilyTwelveThirtySix:
		return "12x36"
	case FamilyTwelveThirtySixPar:
		return "12x36-par"
	case FamilyTwelveThirtySixImpar:
		return "12x36-impar"
	case FamilyFiveByOne:
		return "5x1"
	case FamilySixByOne:
		return "6x1"
	case FamilyFiveByTwo:
		return "5x2"
	case FamilyFourByTwo:
		return "4x2"
	default:
		return "unknown"
	}
}

// rotation describes an offset-anchored cycle: the first workDays positions of
// the cycle are worked, the remainder are off.
type rotation struct {
	cycleLength int
	workDays    int
}

var rotations = map[Family]rotation{
	FamilyTwelveThirtySix: {cycleLength: 2, workDays: 1},
	FamilyFiveByOne:       {cycleLength: 6, workDays: 5},
	FamilySixByOne:        {cycleLength: 7, workDays: 6},
	FamilyFiveByTwo:       {cycleLength: 7, workDays: 5},
	FamilyFourByTwo:       {cycleLength: 6, workDays: 4},
}

// accentFolder maps the accented characters that show up in schedule labels
// typed by operators ("Ímpar", "Sáb") to their plain forms.
var accentFolder = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u",
	"ç", "c",
)

func normalizeLabel(label string) string {
	lowered := strings.ToLower(label)
	folded := accentFolder.Replace(lowered)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}

// ParseLabel resolves a free-text schedule label to its Family. Matching is
// case-insensitive and ignores whitespace and accents. Labels that match no
// family parse to FamilyUnknown, which classifies every day as a work day;
// callers are expected to log that case so mistyped labels get noticed.
func ParseLabel(label string) Family {
	norm := normalizeLabel(label)

	// Fixed weekly families first, then rotations.
	switch {
	case strings.Contains(norm, "segasex"), strings.Contains(norm, "montofri"), strings.Contains(norm, "monfri"):
		return FamilySegASex
	case strings.Contains(norm, "segasab"), strings.Contains(norm, "montosat"), strings.Contains(norm, "monsat"):
		return FamilySegASab
	case strings.Contains(norm, "12x36"):
		switch {
		// "impar" contains "par", so it has to be tested first
		case strings.Contains(norm, "impar"):
			return FamilyTwelveThirtySixImpar
		case strings.Contains(norm, "par"):
			return FamilyTwelveThirtySixPar
		default:
			return FamilyTwelveThirtySix
		}
	case strings.Contains(norm, "5x1"):
		return FamilyFiveByOne
	case strings.Contains(norm, "6x1"):
		return FamilySixByOne
	case strings.Contains(norm, "5x2"):
		return FamilyFiveByTwo
	case strings.Contains(norm, "4x2"):
		return FamilyFourByTwo
	default:
		return FamilyUnknown
	}
}

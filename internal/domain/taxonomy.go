package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Specialties are the canonical categories shown on the landing page.
// The set is open: labels outside this list are kept as given.
var Specialties = []string{
	"Health & Fitness",
	"Psychology",
	"Legal Advice",
	"Auto Mechanics",
	"Programming",
	"Cloud Services",
	"Arts & Design",
	"Agriculture",
	"Business",
	"Languages",
}

var specialtyIndex = buildSpecialtyIndex()

func buildSpecialtyIndex() map[string]string {
	index := make(map[string]string, len(Specialties)*2)
	for _, label := range Specialties {
		folded := Fold(label)
		index[folded] = label
		index[slugKey(folded)] = label
	}
	return index
}

// Fold returns the Unicode case-folded form used for case-insensitive comparison.
func Fold(s string) string {
	return NewFolder().Fold(s)
}

// Folder reuses one Caser across many strings. A Caser is stateful, so a
// Folder must stay on one goroutine.
type Folder struct {
	caser cases.Caser
}

// NewFolder returns a Folder ready for use.
func NewFolder() *Folder {
	return &Folder{caser: cases.Fold()}
}

// Fold returns the case-folded form of s.
func (f *Folder) Fold(s string) string {
	return f.caser.String(s)
}

// CanonicalSpecialty maps aliases such as "health-fitness" or "auto_mechanics"
// onto the canonical label. Unknown labels are returned trimmed.
func CanonicalSpecialty(input string) string {
	return NewFolder().CanonicalSpecialty(input)
}

// CanonicalSpecialty is the package-level CanonicalSpecialty on this Folder's Caser.
func (f *Folder) CanonicalSpecialty(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	folded := f.Fold(trimmed)
	if label, ok := specialtyIndex[folded]; ok {
		return label
	}
	if label, ok := specialtyIndex[slugKey(folded)]; ok {
		return label
	}
	return trimmed
}

// slugKey keeps only letters and digits of folded text: "health & fitness"
// and "health-fitness" share the key "healthfitness".
func slugKey(folded string) string {
	var b strings.Builder
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

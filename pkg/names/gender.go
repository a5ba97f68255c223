package names

import (
	"fmt"
	"strings"
)

// Gender is the closed set of genders a name is suited for.
// The zero value is Unisex, so a Record always carries a gender.
type Gender uint8

const (
	Unisex Gender = iota
	Boy
	Girl
)

var genderNames = map[Gender]string{
	Unisex: "unisex",
	Boy:    "boy",
	Girl:   "girl",
}

// genderVariants maps free-text feed values to a gender.
var genderVariants = map[string]Gender{
	"male":   Boy,
	"boy":    Boy,
	"m":      Boy,
	"female": Girl,
	"girl":   Girl,
	"f":      Girl,
}

// String returns the canonical lowercase name of the gender.
func (g Gender) String() string {
	if s, ok := genderNames[g]; ok {
		return s
	}
	return genderNames[Unisex]
}

// MarshalText implements encoding.TextMarshaler.
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only canonical
// names are accepted.
func (g *Gender) UnmarshalText(b []byte) error {
	res, ok := ParseGender(string(b))
	if !ok {
		return fmt.Errorf("unknown gender %q", string(b))
	}
	*g = res
	return nil
}

// ParseGender converts a canonical gender name ("boy", "girl",
// "unisex") to Gender.
func ParseGender(s string) (Gender, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, v := range genderNames {
		if v == s {
			return k, true
		}
	}
	return Unisex, false
}

// NormalizeGender maps a free-text gender value to Gender.
// Male variants become Boy, female variants become Girl, and
// everything else, including an empty value, becomes Unisex.
func NormalizeGender(s string) Gender {
	s = strings.ToLower(strings.TrimSpace(s))
	if g, ok := genderVariants[s]; ok {
		return g
	}
	return Unisex
}

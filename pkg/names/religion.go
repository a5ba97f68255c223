package names

import "strings"

// Religion is a normalized lowercase religion category. Curated feeds
// use one of the constants below, but unrecognized values are kept
// verbatim (lowercased) instead of being rejected.
type Religion string

const (
	Hindu     Religion = "hindu"
	Muslim    Religion = "muslim"
	Christian Religion = "christian"
	Sikh      Religion = "sikh"
	Jain      Religion = "jain"
	Buddhist  Religion = "buddhist"
	// Other is used when the source leaves religion empty.
	Other Religion = "other"
)

// Curated lists religions of the curated catalog.
var Curated = []Religion{Hindu, Muslim, Christian, Sikh, Jain, Buddhist}

var religionVariants = map[string]Religion{
	"hindu":        Hindu,
	"hinduism":     Hindu,
	"muslim":       Muslim,
	"islam":        Muslim,
	"islamic":      Muslim,
	"christian":    Christian,
	"christianity": Christian,
	"sikh":         Sikh,
	"sikhism":      Sikh,
	"jain":         Jain,
	"jainism":      Jain,
	"buddhist":     Buddhist,
	"buddhism":     Buddhist,
}

// String returns the religion as a string.
func (r Religion) String() string {
	return string(r)
}

// IsCurated reports if the religion belongs to the curated set.
func (r Religion) IsCurated() bool {
	for _, v := range Curated {
		if v == r {
			return true
		}
	}
	return false
}

// NormalizeReligion maps a free-text religion value to Religion.
func NormalizeReligion(s string) Religion {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Other
	}
	if r, ok := religionVariants[s]; ok {
		return r
	}
	return Religion(s)
}

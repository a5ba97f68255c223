package names

import (
	"math"
	"strconv"
	"strings"

	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
	"github.com/namenest/namenest/pkg/i18n"
)

const (
	// DefaultPopularity is a neutral popularity for rows without one.
	DefaultPopularity = 50
	// DefaultOrigin is used when the origin is unknown.
	DefaultOrigin = "Unknown"
)

// DefaultMeaning is the placeholder meaning for rows without one.
var DefaultMeaning = i18n.Text{EN: "Beautiful name", HI: "सुंदर नाम"}

// Normalizer converts feed rows to canonical records.
type Normalizer struct {
	defaultPopularity int
}

// NewNormalizer creates a Normalizer. Popularity outside of [1,100]
// is replaced by DefaultPopularity.
func NewNormalizer(defaultPopularity int) *Normalizer {
	if defaultPopularity < 1 || defaultPopularity > 100 {
		defaultPopularity = DefaultPopularity
	}
	return &Normalizer{defaultPopularity: defaultPopularity}
}

// Normalize converts rows to records in their original order. Rows
// without a name are dropped and counted in the second return value.
// Identical rows get distinct ids by an ordinal suffix in the id seed.
func (n *Normalizer) Normalize(rows []Row) ([]Record, int) {
	res := make([]Record, 0, len(rows))
	seen := make(map[string]int, len(rows))
	var dropped int
	for _, row := range rows {
		rec, ok := n.Record(row)
		if !ok {
			dropped++
			continue
		}
		seed := idSeed(rec)
		if count := seen[seed]; count > 0 {
			rec.ID = recordID(seed + "|" + strconv.Itoa(count))
		} else {
			rec.ID = recordID(seed)
		}
		seen[seed]++
		if rec.Slug == "" {
			rec.Slug = "name-" + rec.ID[:8]
		}
		res = append(res, rec)
	}
	return res, dropped
}

// Record converts a single row. It returns false if the row has no
// name. The returned record has no ID yet.
func (n *Normalizer) Record(row Row) (Record, bool) {
	name := row.Get(FieldName)
	if name == "" {
		return Record{}, false
	}

	nameHi := row.Get(FieldNameHi)
	if nameHi == "" {
		nameHi = name
	}

	meaning := row.Get(FieldMeaning)
	meaningHi := row.Get(FieldMeaningHi)
	if meaningHi == "" {
		meaningHi = meaning
	}
	if meaning == "" {
		meaning = DefaultMeaning.EN
	}
	if meaningHi == "" {
		meaningHi = DefaultMeaning.HI
	}

	origin := row.Get(FieldOrigin)
	if origin == "" {
		origin = DefaultOrigin
	}

	res := Record{
		Slug:       Slugify(name),
		Name:       i18n.Text{EN: name, HI: nameHi},
		Meaning:    i18n.Text{EN: meaning, HI: meaningHi},
		Gender:     NormalizeGender(row.Get(FieldGender)),
		Religion:   NormalizeReligion(row.Get(FieldReligion)),
		Origin:     origin,
		Zodiac:     row.Get(FieldZodiac),
		Popularity: n.popularity(row.Get(FieldPopularity)),
	}
	return res, true
}

func (n *Normalizer) popularity(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return n.defaultPopularity
		}
		i = int(f)
	}
	switch {
	case i < 1:
		return n.defaultPopularity
	case i > 100:
		return 100
	default:
		return i
	}
}

func idSeed(r Record) string {
	return strings.Join([]string{
		strings.ToLower(r.Name.EN), r.Religion.String(), r.Gender.String(),
	}, "|")
}

func recordID(seed string) string {
	return gnuuid.New(seed).String()
}

// IsValidID reports if s has the shape of a record ID.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

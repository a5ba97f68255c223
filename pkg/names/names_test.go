package names_test

import (
	"encoding/json"
	"testing"

	"github.com/namenest/namenest/pkg/i18n"
	"github.com/namenest/namenest/pkg/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		msg, input, want string
	}{
		{"simple", "Aarav", "aarav"},
		{"spaces", "Mary  Anne", "mary-anne"},
		{"punctuation", "Zara (princess)!", "zara-princess"},
		{"hyphens", "--Jas--preet--", "jas-preet"},
		{"mixed separators", "Guru - Nanak", "guru-nanak"},
		{"digits", "Aarav 2", "aarav-2"},
		{"accents dropped", "Zoë", "zo"},
		{"devanagari only", "आरव", ""},
		{"tabs", "Anna\tMaria", "anna-maria"},
	}
	for _, tt := range tests {
		got := names.Slugify(tt.input)
		assert.Equal(t, tt.want, got, tt.msg)
		assert.Equal(t, got, names.Slugify(tt.input), tt.msg+": deterministic")
		assert.Equal(t, got, names.Slugify(got), tt.msg+": idempotent")
	}
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		input string
		want  names.Gender
	}{
		{"male", names.Boy},
		{"Boy", names.Boy},
		{" M ", names.Boy},
		{"FEMALE", names.Girl},
		{"girl", names.Girl},
		{"f", names.Girl},
		{"unisex", names.Unisex},
		{"", names.Unisex},
		{"other", names.Unisex},
		{"both", names.Unisex},
	}
	for _, tt := range tests {
		got := names.NormalizeGender(tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Contains(t, []string{"boy", "girl", "unisex"}, got.String())
	}
}

func TestGenderText(t *testing.T) {
	b, err := json.Marshal(names.Girl)
	require.NoError(t, err)
	assert.Equal(t, `"girl"`, string(b))

	var g names.Gender
	require.NoError(t, json.Unmarshal([]byte(`"boy"`), &g))
	assert.Equal(t, names.Boy, g)
	assert.Error(t, json.Unmarshal([]byte(`"male"`), &g))

	_, ok := names.ParseGender("all")
	assert.False(t, ok)
	assert.Equal(t, "unisex", names.Gender(42).String())
}

func TestNormalizeReligion(t *testing.T) {
	tests := []struct {
		input string
		want  names.Religion
	}{
		{"", names.Other},
		{"   ", names.Other},
		{"Hinduism", names.Hindu},
		{"hindu", names.Hindu},
		{"Islam", names.Muslim},
		{"islamic", names.Muslim},
		{"Christianity", names.Christian},
		{"Sikhism", names.Sikh},
		{"JAINISM", names.Jain},
		{"buddhism", names.Buddhist},
		{"Zoroastrian", names.Religion("zoroastrian")},
		{"  Bahai ", names.Religion("bahai")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, names.NormalizeReligion(tt.input), tt.input)
	}
	assert.True(t, names.Sikh.IsCurated())
	assert.False(t, names.Other.IsCurated())
}

func TestRowHeaders(t *testing.T) {
	row := names.NewRow(
		[]string{" Name ", "Name Hi", "MEANING", "gender", "Extra"},
		[]string{"Aarav", "आरव", "Peaceful"},
	)
	assert.Equal(t, "Aarav", row.Get(names.FieldName))
	assert.Equal(t, "आरव", row.Get(names.FieldNameHi))
	assert.Equal(t, "Peaceful", row.Get(names.FieldMeaning))
	_, ok := row[names.FieldGender]
	assert.False(t, ok, "missing values stay absent")
	assert.Equal(t, "namehi", names.HeaderKey(`"name_hi"`))
}

func TestNormalizerDefaults(t *testing.T) {
	n := names.NewNormalizer(50)
	rec, ok := n.Record(names.Row{names.FieldName: "  Diya  "})
	require.True(t, ok)

	assert.Equal(t, "diya", rec.Slug)
	assert.Equal(t, i18n.Text{EN: "Diya", HI: "Diya"}, rec.Name)
	assert.Equal(t, names.DefaultMeaning, rec.Meaning)
	assert.Equal(t, names.Unisex, rec.Gender)
	assert.Equal(t, names.Other, rec.Religion)
	assert.Equal(t, "Unknown", rec.Origin)
	assert.Equal(t, "", rec.Zodiac)
	assert.Equal(t, 50, rec.Popularity)
}

func TestNormalizerMapping(t *testing.T) {
	n := names.NewNormalizer(50)
	rec, ok := n.Record(names.Row{
		names.FieldName:       "Aarav",
		names.FieldMeaning:    "Peaceful, wise",
		names.FieldGender:     "Male",
		names.FieldOrigin:     " Sanskrit ",
		names.FieldReligion:   "Hinduism",
		names.FieldZodiac:     "Aries",
		names.FieldPopularity: "87",
	})
	require.True(t, ok)
	assert.Equal(t, "Peaceful, wise", rec.Meaning.EN)
	assert.Equal(t, "Peaceful, wise", rec.Meaning.HI)
	assert.Equal(t, names.Boy, rec.Gender)
	assert.Equal(t, "Sanskrit", rec.Origin)
	assert.Equal(t, names.Hindu, rec.Religion)
	assert.Equal(t, "Aries", rec.Zodiac)
	assert.Equal(t, 87, rec.Popularity)

	rec, ok = n.Record(names.Row{
		names.FieldName:      "Aarav",
		names.FieldNameHi:    "आरव",
		names.FieldMeaningHi: "शांत",
	})
	require.True(t, ok)
	assert.Equal(t, "आरव", rec.Name.HI)
	assert.Equal(t, "Beautiful name", rec.Meaning.EN)
	assert.Equal(t, "शांत", rec.Meaning.HI)
}

func TestNormalizerPopularity(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		want  int
	}{
		{"integer", "42", 42},
		{"decimal", "42.9", 42},
		{"missing", "", 70},
		{"text", "popular", 70},
		{"zero", "0", 70},
		{"negative", "-5", 70},
		{"above range", "250", 100},
		{"not a number", "NaN", 70},
	}
	n := names.NewNormalizer(70)
	for _, tt := range tests {
		rec, ok := n.Record(names.Row{
			names.FieldName:       "Karan",
			names.FieldPopularity: tt.input,
		})
		require.True(t, ok)
		assert.Equal(t, tt.want, rec.Popularity, tt.msg)
	}

	rec, _ := names.NewNormalizer(0).Record(names.Row{names.FieldName: "Karan"})
	assert.Equal(t, names.DefaultPopularity, rec.Popularity)
}

func TestNormalizeDropsRowsWithoutName(t *testing.T) {
	rows := []names.Row{
		{names.FieldName: "Aarav"},
		{names.FieldName: ""},
		{names.FieldName: "   "},
		{names.FieldMeaning: "no name column"},
		{names.FieldName: "Zara"},
	}
	recs, dropped := names.NewNormalizer(50).Normalize(rows)
	assert.Equal(t, 3, dropped)
	require.Len(t, recs, len(rows)-dropped)
	assert.Equal(t, "Aarav", recs[0].Name.EN)
	assert.Equal(t, "Zara", recs[1].Name.EN)
}

func TestNormalizeIDs(t *testing.T) {
	rows := []names.Row{
		{names.FieldName: "Aarav", names.FieldReligion: "hindu"},
		{names.FieldName: "Aarav", names.FieldReligion: "hindu"},
		{names.FieldName: "Aarav", names.FieldReligion: "sikh"},
		{names.FieldName: "आरव"},
	}
	n := names.NewNormalizer(50)
	first, _ := n.Normalize(rows)
	second, _ := n.Normalize(rows)
	require.Len(t, first, 4)

	ids := make(map[string]struct{})
	for i, rec := range first {
		assert.True(t, names.IsValidID(rec.ID))
		assert.Equal(t, rec.ID, second[i].ID, "ids are stable across loads")
		ids[rec.ID] = struct{}{}
	}
	assert.Len(t, ids, 4, "ids are unique within a load")

	assert.Equal(t, first[0].Slug, first[1].Slug, "slugs may repeat")
	assert.Equal(t, "name-"+first[3].ID[:8], first[3].Slug)
	assert.False(t, names.IsValidID("gs-1"))
}

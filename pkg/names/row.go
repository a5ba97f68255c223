package names

import "strings"

// Field names recognized in feed headers. Headers are matched after
// lowercasing and removing spaces, underscores and hyphens, so
// "Name", "name" and "NAME" all map to FieldName, and "Name Hi",
// "name_hi" and "NameHi" map to FieldNameHi.
const (
	FieldName       = "name"
	FieldNameHi     = "namehi"
	FieldMeaning    = "meaning"
	FieldMeaningHi  = "meaninghi"
	FieldGender     = "gender"
	FieldOrigin     = "origin"
	FieldReligion   = "religion"
	FieldZodiac     = "zodiac"
	FieldPopularity = "popularity"
)

var headerStrip = strings.NewReplacer(" ", "", "_", "", "-", "")

// Row is an untyped feed row keyed by canonical header names.
// A missing key and an empty value are treated the same way.
type Row map[string]string

// NewRow builds a Row from a header line and the values of one
// record. Values beyond the header are ignored; missing values are
// left absent.
func NewRow(headers, values []string) Row {
	res := make(Row, len(headers))
	for i, h := range headers {
		if i >= len(values) {
			break
		}
		key := HeaderKey(h)
		if key == "" {
			continue
		}
		if _, ok := res[key]; ok {
			continue
		}
		res[key] = values[i]
	}
	return res
}

// HeaderKey canonicalizes a header cell.
func HeaderKey(h string) string {
	h = strings.TrimSpace(strings.Trim(strings.TrimSpace(h), `"`))
	return headerStrip.Replace(strings.ToLower(h))
}

// Get returns the trimmed value of a field with surrounding double
// quotes removed.
func (r Row) Get(field string) string {
	v := strings.TrimSpace(r[field])
	v = strings.Trim(v, `"`)
	return strings.TrimSpace(v)
}

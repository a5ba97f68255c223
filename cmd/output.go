package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gnames/gnfmt"
	"github.com/namenest/namenest/pkg/i18n"
	"github.com/namenest/namenest/pkg/names"
)

// outputFormats are values of the --format flag.
var outputFormats = []string{"text", "json", "csv"}

func isOutputFormat(s string) bool {
	for _, v := range outputFormats {
		if v == s {
			return true
		}
	}
	return false
}

func writeJSON(w io.Writer, data any) error {
	enc := gnfmt.GNjson{Pretty: true}
	res, err := enc.Encode(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(res))
	return err
}

func writeNames(w io.Writer, recs []names.Record, lang i18n.Lang, format string) error {
	switch format {
	case "json":
		return writeJSON(w, recs)
	case "csv":
		header := []string{"id", "name", "meaning", "gender", "religion",
			"origin", "zodiac", "popularity"}
		if _, err := fmt.Fprintln(w, gnfmt.ToCSV(header, ',')); err != nil {
			return err
		}
		for _, r := range recs {
			row := []string{r.ID, r.Name.Get(lang), r.Meaning.Get(lang),
				r.Gender.String(), r.Religion.String(), r.Origin, r.Zodiac,
				strconv.Itoa(r.Popularity)}
			if _, err := fmt.Fprintln(w, gnfmt.ToCSV(row, ',')); err != nil {
				return err
			}
		}
		return nil
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tGENDER\tRELIGION\tORIGIN\tPOPULARITY\tMEANING")
		for _, r := range recs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
				r.Name.Get(lang), r.Gender, r.Religion, r.Origin,
				r.Popularity, r.Meaning.Get(lang))
		}
		return tw.Flush()
	}
}

func writeRecord(w io.Writer, r names.Record, lang i18n.Lang) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", r.Name.Get(lang))
	if other := r.Name.All(); len(other) > 1 && other[0] != other[1] {
		fmt.Fprintf(&b, " (%s)", strings.Join(other, " / "))
	}
	b.WriteString("\n\n")

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Meaning:\t%s\n", r.Meaning.Get(lang))
	fmt.Fprintf(tw, "Gender:\t%s\n", r.Gender)
	fmt.Fprintf(tw, "Religion:\t%s\n", r.Religion)
	fmt.Fprintf(tw, "Origin:\t%s\n", r.Origin)
	if r.Zodiac != "" {
		fmt.Fprintf(tw, "Zodiac:\t%s\n", r.Zodiac)
	}
	fmt.Fprintf(tw, "Popularity:\t%d\n", r.Popularity)
	fmt.Fprintf(tw, "Slug:\t%s\n", r.Slug)
	fmt.Fprintf(tw, "ID:\t%s\n", r.ID)
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

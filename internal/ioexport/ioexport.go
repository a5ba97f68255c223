// Package ioexport writes name records to CSV, TSV, JSON or XLSX files.
// CSV, TSV and XLSX files use the same headers as the names feed, so an
// exported file can be used as a feed again.
package ioexport

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnfmt"
	"github.com/namenest/namenest/pkg/names"
	"github.com/xuri/excelize/v2"
)

// Format of an export file.
type Format string

const (
	CSV  Format = "csv"
	TSV  Format = "tsv"
	JSON Format = "json"
	XLSX Format = "xlsx"
)

// Headers of exported tables.
var Headers = []string{
	"ID", "Slug", "Name", "Name Hi", "Meaning", "Meaning Hi",
	"Gender", "Religion", "Origin", "Zodiac", "Popularity",
}

// FormatFromPath derives a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(ext) {
	case CSV, TSV, JSON, XLSX:
		return Format(ext), nil
	default:
		return "", UnknownFormatError(path)
	}
}

// Exporter writes records to a file.
type Exporter struct {
	progress bool
}

// New creates an Exporter. If progress is true, a progress bar is
// shown on STDERR while rows are written.
func New(progress bool) *Exporter {
	return &Exporter{progress: progress}
}

// Export writes records to path in a format derived from its extension.
func (e *Exporter) Export(recs []names.Record, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ExportError(path, err)
	}

	switch format {
	case JSON:
		err = e.exportJSON(recs, path)
	case XLSX:
		err = e.exportXLSX(recs, path)
	case TSV:
		err = e.exportCSV(recs, path, '\t')
	default:
		err = e.exportCSV(recs, path, ',')
	}
	if err != nil {
		return ExportError(path, err)
	}
	return nil
}

func row(r names.Record) []string {
	return []string{
		r.ID, r.Slug, r.Name.EN, r.Name.HI, r.Meaning.EN, r.Meaning.HI,
		r.Gender.String(), r.Religion.String(), r.Origin, r.Zodiac,
		strconv.Itoa(r.Popularity),
	}
}

func (e *Exporter) newBar(total int, prefix string) *pb.ProgressBar {
	if !e.progress {
		return nil
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

func (e *Exporter) exportCSV(recs []names.Record, path string, sep rune) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err = w.WriteString(gnfmt.ToCSV(Headers, sep) + "\n"); err != nil {
		return err
	}

	bar := e.newBar(len(recs), "Writing names: ")
	for _, r := range recs {
		if _, err = w.WriteString(gnfmt.ToCSV(row(r), sep) + "\n"); err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
	if err = w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func (e *Exporter) exportJSON(recs []names.Record, path string) error {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(recs)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (e *Exporter) exportXLSX(recs []names.Record, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	bar := e.newBar(len(recs), "Writing names: ")
	for i, r := range recs {
		for j, v := range row(r) {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			var val any = v
			if j == len(Headers)-1 {
				val = r.Popularity
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return f.SaveAs(path)
}

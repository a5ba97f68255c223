/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/namenest/namenest/internal/ioexport"
	"github.com/namenest/namenest/pkg/filter"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var (
		ff     filterFlags
		output string
		quiet  bool
	)

	exportCmd := &cobra.Command{
		Use:   "export [query...]",
		Short: "Save names to a file",
		Long: `Save filtered names to a CSV, TSV, JSON or XLSX file.

The format is chosen by the extension of the output file. CSV, TSV and
XLSX files have the same columns as the names feed, so an exported file
can be published and used as a feed.

Examples:
  namenest export -O names.csv
  namenest export -r hindu -g girl -O hindu-girls.xlsx
  namenest export light -O light.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(ff.criteria(args), output, quiet)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addFilterFlags(exportCmd, &ff)
	exportCmd.Flags().StringVarP(&output, "output", "O", "",
		"output file (.csv, .tsv, .json or .xlsx)")
	exportCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"do not show progress")

	return exportCmd
}

func runExport(crit filter.Criteria, output string, quiet bool) error {
	if output == "" {
		return errors.New("output file is required, use --output")
	}
	if _, err := ioexport.FormatFromPath(output); err != nil {
		return err
	}

	c := loadCatalog(context.Background())
	recs := c.Search(crit)

	if err := ioexport.New(!quiet).Export(recs, output); err != nil {
		return err
	}
	gn.Info("Saved <em>%s</em> names to <em>%s</em>",
		humanize.Comma(int64(len(recs))), output)
	return nil
}

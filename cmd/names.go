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
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/filter"
	"github.com/spf13/cobra"
)

// getNamesCmd returns the names command.
func getNamesCmd() *cobra.Command {
	var (
		ff      filterFlags
		page    int
		perPage int
		lang    string
		format  string
	)

	namesCmd := &cobra.Command{
		Use:   "names [query...]",
		Short: "Search and filter baby names",
		Long: `Search baby names by name or meaning in English or Hindi.

Arguments are joined into a single query. The query matches names and
meanings case-insensitively. Filters narrow the result further, the
value "all" or an empty value turns a filter off.

Examples:
  namenest names
  namenest names light --gender girl
  namenest names -r sikh -o Punjabi -p 2
  namenest names अर्जुन --lang hi
  namenest names --religion muslim --format csv`,
		Aliases: []string{"search", "ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runNames(cmd, ff.criteria(args), page, perPage, lang, format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addFilterFlags(namesCmd, &ff)
	addLangFlag(namesCmd, &lang)
	namesCmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	namesCmd.Flags().IntVarP(&perPage, "per-page", "n", 0,
		"names per page (default from config)")
	namesCmd.Flags().StringVarP(&format, "format", "f", "text",
		"output format: text, json or csv")

	return namesCmd
}

func runNames(
	cmd *cobra.Command,
	crit filter.Criteria,
	page, perPage int,
	lang, format string,
) error {
	if !isOutputFormat(format) {
		return fmt.Errorf("unknown output format %q", format)
	}
	if perPage < 1 {
		perPage = cfg.Names.PageSize
	}

	c := loadCatalog(context.Background())
	res := filter.Paginate(c.Search(crit), page, perPage)

	out := cmd.OutOrStdout()
	if err := writeNames(out, res.Items, displayLang(lang), format); err != nil {
		return err
	}

	if format == "text" {
		gn.Info("Page <em>%d</em> of <em>%d</em>, <em>%s</em> names found",
			res.Page, res.TotalPages, humanize.Comma(int64(res.Total)))
	}
	return nil
}

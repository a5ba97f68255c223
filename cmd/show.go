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

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getShowCmd returns the show command.
func getShowCmd() *cobra.Command {
	var (
		lang   string
		asJSON bool
	)

	showCmd := &cobra.Command{
		Use:   "show <id|slug>",
		Short: "Show details of a name",
		Long: `Show details of a name found by its ID or slug.

When several names share a slug, the first one is shown.

Examples:
  namenest show aarav
  namenest show aarav --lang hi
  namenest show 6f1c0e5e-1a27-5b1e-9a56-bd1f1c1d0d11 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runShow(cmd, args[0], lang, asJSON)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addLangFlag(showCmd, &lang)
	showCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output JSON")

	return showCmd
}

func runShow(cmd *cobra.Command, key, lang string, asJSON bool) error {
	c := loadCatalog(context.Background())
	rec, err := c.Get(key)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), rec)
	}
	return writeRecord(cmd.OutOrStdout(), rec, displayLang(lang))
}

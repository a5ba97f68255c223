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
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/content"
	"github.com/spf13/cobra"
)

// getReviewsCmd returns the reviews command.
func getReviewsCmd() *cobra.Command {
	var (
		lang   string
		asJSON bool
	)

	reviewsCmd := &cobra.Command{
		Use:   "reviews",
		Short: "Show what parents say about NameNest",
		Long: `Show testimonials left by parents.

Examples:
  namenest reviews
  namenest reviews --lang hi`,
		Aliases: []string{"testimonials"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runReviews(cmd, lang, asJSON)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addLangFlag(reviewsCmd, &lang)
	reviewsCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output JSON")

	return reviewsCmd
}

func runReviews(cmd *cobra.Command, lang string, asJSON bool) error {
	lib, err := content.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	ts := lib.Testimonials()
	if asJSON {
		return writeJSON(out, ts)
	}

	l := displayLang(lang)
	for _, t := range ts {
		_, err = fmt.Fprintf(out, "%s %s, %s\n  %s\n\n",
			strings.Repeat("*", t.Rating), t.Name, t.Location, t.Review.Get(l))
		if err != nil {
			return err
		}
	}
	return nil
}

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
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/content"
	"github.com/namenest/namenest/pkg/i18n"
	"github.com/spf13/cobra"
)

// getBlogCmd returns the blog command.
func getBlogCmd() *cobra.Command {
	var (
		lang     string
		featured int
		asJSON   bool
	)

	blogCmd := &cobra.Command{
		Use:   "blog [slug]",
		Short: "Read articles about choosing a name",
		Long: `List blog articles, newest first, or read one article by its slug.

Examples:
  namenest blog
  namenest blog --featured 3
  namenest blog top-100-hindu-baby-names-2025 --lang hi`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var slug string
			if len(args) > 0 {
				slug = args[0]
			}
			err := runBlog(cmd, slug, displayLang(lang), featured, asJSON)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addLangFlag(blogCmd, &lang)
	blogCmd.Flags().IntVar(&featured, "featured", 0,
		"list only the given number of newest articles")
	blogCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output JSON")

	return blogCmd
}

func runBlog(
	cmd *cobra.Command,
	slug string,
	lang i18n.Lang,
	featured int,
	asJSON bool,
) error {
	lib, err := content.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if slug != "" {
		post, err := lib.Post(slug)
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(out, post)
		}
		_, err = fmt.Fprintf(out, "%s\n%s, %s, %d min read\n\n%s\n",
			post.Title.Get(lang),
			post.Author,
			post.PublishedAt.Format("2006-01-02"),
			post.ReadTime,
			content.PlainText(post.Content.Get(lang)),
		)
		return err
	}

	posts := lib.Posts()
	if featured > 0 {
		posts = lib.Featured(featured)
	}
	if asJSON {
		return writeJSON(out, posts)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSLUG\tTITLE\tTAGS")
	for _, p := range posts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			p.PublishedAt.Format("2006-01-02"), p.Slug,
			p.Title.Get(lang), strings.Join(p.Tags, ", "))
	}
	if err = tw.Flush(); err != nil {
		return err
	}
	if len(posts) > 0 {
		gn.Info("Newest article was published <em>%s</em>",
			humanize.Time(posts[0].PublishedAt))
	}
	return nil
}

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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/catalog"
	"github.com/namenest/namenest/pkg/favorites"
	"github.com/spf13/cobra"
)

// getFavCmd returns the fav command with its subcommands.
func getFavCmd() *cobra.Command {
	favCmd := &cobra.Command{
		Use:   "fav",
		Short: "Manage favorite names",
		Long: `Manage the list of favorite names.

Favorites are kept in ~/.local/share/namenest/favorites.db and survive
between runs. Without a subcommand the list of favorites is shown.

Examples:
  namenest fav
  namenest fav toggle aarav
  namenest fav list --lang hi`,
		Aliases: []string{"favorites"},
	}

	listCmd := getFavListCmd()
	favCmd.RunE = listCmd.RunE
	favCmd.Flags().AddFlagSet(listCmd.Flags())
	favCmd.AddCommand(listCmd, getFavToggleCmd())

	return favCmd
}

func getFavListCmd() *cobra.Command {
	var (
		lang   string
		format string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List favorite names",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFavList(cmd, lang, format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addLangFlag(listCmd, &lang)
	listCmd.Flags().StringVarP(&format, "format", "f", "text",
		"output format: text, json or csv")

	return listCmd
}

func getFavToggleCmd() *cobra.Command {
	toggleCmd := &cobra.Command{
		Use:   "toggle <id|slug>",
		Short: "Add a name to favorites or remove it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFavToggle(args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return toggleCmd
}

func runFavList(cmd *cobra.Command, lang, format string) error {
	ctx := context.Background()
	store, err := openFavorites()
	if err != nil {
		return err
	}
	defer store.Close()

	ids, err := store.Get(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		gn.Info("No favorite names yet, add one with <em>namenest fav toggle</em>")
		return nil
	}

	c := loadCatalog(ctx)
	recs := c.Resolve(ids)
	if err = writeNames(cmd.OutOrStdout(), recs, displayLang(lang), format); err != nil {
		return err
	}

	if missing := len(ids) - len(recs); missing > 0 {
		gn.Warn("<em>%s</em> favorite names are not in the current names list",
			humanize.Comma(int64(missing)))
	}
	return nil
}

func runFavToggle(key string) error {
	ctx := context.Background()
	store, err := openFavorites()
	if err != nil {
		return err
	}
	defer store.Close()

	c := loadCatalog(ctx)
	id, name, err := favoriteKey(ctx, c, store, key)
	if err != nil {
		return err
	}

	added, err := store.Toggle(ctx, id)
	if err != nil {
		return err
	}
	if added {
		gn.Info("Added <em>%s</em> to favorites", name)
	} else {
		gn.Info("Removed <em>%s</em> from favorites", name)
	}
	return nil
}

// favoriteKey resolves an ID or slug to a record ID. IDs of names that
// are already favorites are accepted even when the name is not loaded,
// so stale favorites can be removed.
func favoriteKey(
	ctx context.Context,
	c *catalog.Catalog,
	store favorites.Store,
	key string,
) (id, name string, err error) {
	rec, err := c.Get(key)
	if err == nil {
		return rec.ID, rec.Name.EN, nil
	}

	has, herr := store.Has(ctx, key)
	if herr != nil {
		return "", "", herr
	}
	if has {
		return key, key, nil
	}
	return "", "", err
}

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

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getRandomCmd returns the random command.
func getRandomCmd() *cobra.Command {
	var (
		lang   string
		asJSON bool
	)

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Show a random name",
		Long: `Pick a name at random from all loaded names.

Examples:
  namenest random
  namenest random --lang hi`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRandom(cmd, lang, asJSON)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addLangFlag(randomCmd, &lang)
	randomCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output JSON")

	return randomCmd
}

func runRandom(cmd *cobra.Command, lang string, asJSON bool) error {
	c := loadCatalog(context.Background())
	rec, ok := c.Random(nil)
	if !ok {
		return errors.New("no names are loaded")
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), rec)
	}
	return writeRecord(cmd.OutOrStdout(), rec, displayLang(lang))
}

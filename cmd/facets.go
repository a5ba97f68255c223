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
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getFacetsCmd returns the facets command.
func getFacetsCmd() *cobra.Command {
	var asJSON bool

	facetsCmd := &cobra.Command{
		Use:   "facets",
		Short: "Show available genders, religions and origins",
		Long: `Show the distinct values that can be used with the --gender,
--religion and --origin filters of the names command.

Examples:
  namenest facets
  namenest facets --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFacets(cmd, asJSON)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	facetsCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output JSON")

	return facetsCmd
}

func runFacets(cmd *cobra.Command, asJSON bool) error {
	c := loadCatalog(context.Background())
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, c.Facets)
	}

	_, err := fmt.Fprintf(out, "Genders:   %s\nReligions: %s\nOrigins:   %s\n",
		strings.Join(c.Facets.Genders, ", "),
		strings.Join(c.Facets.Religions, ", "),
		strings.Join(c.Facets.Origins, ", "),
	)
	return err
}

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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/internal/ioweb"
	"github.com/namenest/namenest/pkg/catalog"
	"github.com/namenest/namenest/pkg/config"
	"github.com/namenest/namenest/pkg/content"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// getServeCmd returns the serve command.
func getServeCmd() *cobra.Command {
	var port int

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the NameNest HTTP API",
		Long: `Run the JSON HTTP API used by the NameNest website.

Names and articles are loaded once at start. Names can be reloaded
from the feed without a restart with POST /api/v1/catalog/reload.
The server stops on Ctrl-C or SIGTERM.

Examples:
  namenest serve
  namenest serve --port 9000
  namenest serve --mock`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Update([]config.Option{config.OptServerPort(port)})
			}
			err := runServe()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	serveCmd.Flags().IntVarP(&port, "port", "p", 0,
		"port to listen on (default from config)")

	return serveCmd
}

func runServe() error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	loader := newLoader(cfg)

	var (
		cat *catalog.Catalog
		lib *content.Library
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cat = loader.Load(gctx)
		return nil
	})
	g.Go(func() error {
		var err error
		lib, err = content.Load()
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	notifySource(cat)

	favs, err := openFavorites()
	if err != nil {
		return err
	}
	defer favs.Close()

	srv := ioweb.NewServer(cfg, cat, loader, lib, favs)
	gn.Info("Serving <em>%d</em> names at <em>http://localhost:%d</em>",
		cat.Len(), cfg.Server.Port)
	slog.Info("Starting HTTP API", "port", cfg.Server.Port, "source", cat.Source)

	return srv.Run(ctx)
}

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
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/joho/godotenv"
	"github.com/namenest/namenest/internal/iofs"
	"github.com/namenest/namenest/internal/iologger"
	app "github.com/namenest/namenest/pkg"
	"github.com/namenest/namenest/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "namenest",
		Short:   "Browse bilingual Indian baby names",
		Long: `NameNest is a bilingual (English/Hindi) directory of Indian baby names.

Names are loaded from a published spreadsheet. If the spreadsheet is
unavailable or has no usable rows, a built-in collection of names is used
instead, so every command always has data to work with.

Configuration is read from ~/.config/namenest/config.yaml, from
NAMENEST_* environment variables and from a .env file in the current
directory.

Examples:
  namenest names arjun
  namenest names --gender girl --religion sikh
  namenest show aarav --lang hi
  namenest serve --port 8080`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "namenest version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for namenest")

	rootCmd.PersistentFlags().Bool("mock", false,
		"skip the names feed and use built-in names")

	rootCmd.AddCommand(
		getNamesCmd(),
		getFacetsCmd(),
		getShowCmd(),
		getRandomCmd(),
		getFavCmd(),
		getBlogCmd(),
		getReviewsCmd(),
		getExportCmd(),
		getServeCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error

	// .env is optional
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		gn.Warn("Cannot read <em>.env</em> file: %s", err)
	}

	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Runtime-only settings
	useMock, _ := cmd.Flags().GetBool("mock")
	cfg.Update([]config.Option{
		config.OptHomeDir(homeDir),
		config.OptUseMock(useMock || cfgViper.UseMock),
	})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// The log file is appended to, so records from the bootstrap stay.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}

	// use_mock is runtime-only, it comes from the environment
	res.UseMock = v.GetBool("use_mock")

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("NAMENEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Feed configuration
	v.BindEnv("feed.url", "NAMENEST_FEED_URL")
	v.BindEnv("feed.format", "NAMENEST_FEED_FORMAT")
	v.BindEnv("feed.timeout_sec", "NAMENEST_FEED_TIMEOUT_SEC")
	v.BindEnv("feed.default_popularity", "NAMENEST_FEED_DEFAULT_POPULARITY")

	// Names configuration
	v.BindEnv("names.page_size", "NAMENEST_NAMES_PAGE_SIZE")
	v.BindEnv("names.lang", "NAMENEST_NAMES_LANG")

	// Server configuration
	v.BindEnv("server.port", "NAMENEST_SERVER_PORT")
	v.BindEnv("server.allowed_origins", "NAMENEST_SERVER_ALLOWED_ORIGINS")

	// Log configuration
	v.BindEnv("log.level", "NAMENEST_LOG_LEVEL")
	v.BindEnv("log.format", "NAMENEST_LOG_FORMAT")
	v.BindEnv("log.destination", "NAMENEST_LOG_DESTINATION")

	// Runtime configuration
	v.BindEnv("use_mock", "NAMENEST_USE_MOCK")

	v.AutomaticEnv()
}

package cmd

import (
	"strings"

	"github.com/namenest/namenest/pkg/filter"
	"github.com/namenest/namenest/pkg/i18n"
	"github.com/spf13/cobra"
)

// filterFlags are the name filters shared by names and export commands.
type filterFlags struct {
	gender   string
	religion string
	origin   string
}

func addFilterFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().StringVarP(&f.gender, "gender", "g", "",
		"filter by gender: boy, girl, unisex or all")
	cmd.Flags().StringVarP(&f.religion, "religion", "r", "",
		"filter by religion, for example hindu or sikh")
	cmd.Flags().StringVarP(&f.origin, "origin", "o", "",
		"filter by origin, for example Sanskrit")
}

func (f filterFlags) criteria(args []string) filter.Criteria {
	return filter.Criteria{
		Search:   strings.Join(args, " "),
		Gender:   f.gender,
		Religion: f.religion,
		Origin:   f.origin,
	}
}

func addLangFlag(cmd *cobra.Command, lang *string) {
	cmd.Flags().StringVarP(lang, "lang", "l", "",
		"display language: en or hi (default from config)")
}

// displayLang returns the language from a flag, falling back to the
// configured language.
func displayLang(flag string) i18n.Lang {
	if flag != "" {
		return i18n.ParseLang(flag)
	}
	if cfg != nil {
		return i18n.ParseLang(cfg.Names.Lang)
	}
	return i18n.EN
}

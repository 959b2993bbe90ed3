// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidsel/vidsel/key"
)

// Icon is a status symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Manifest
	Video
)

// variants in the column order of glyphs.
var variants = []string{"emoji", "nerd", "plain", "kaomoji", "squares"}

var glyphs = map[Icon][5]string{
	Success:  {"✅", "", "OK", "(ᵔᴥᵔ)", "▣"},
	Fail:     {"❌", "", "X", "(╯°□°)╯", "▨"},
	Progress: {"⏳", "", "...", "(￣ー￣)", "◫"},
	Manifest: {"📜", "", "hls", "(￣▽￣)", "▤"},
	Video:    {"🎞️", "", "mp4", "(⌐■_■)", "▦"},
}

// AvailableVariants returns every accepted value of icons.variant.
func AvailableVariants() []string {
	return append([]string(nil), variants...)
}

// Get returns i in the configured variant, or "" when either is unknown.
func Get(i Icon) string {
	column := lo.IndexOf(variants, viper.GetString(key.IconsVariant))
	row, ok := glyphs[i]
	if column < 0 || !ok {
		return ""
	}
	return row[column]
}

// Package icon resolves the symbolic ids of player controls and status marks
// to glyphs. The glyph set follows the icons.variant setting, so the same
// control bar renders as emoji, nerd-font glyphs, ASCII, kaomoji or squares.
package icon

import (
	"github.com/ava-cli/ava/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Variant names a glyph set.
type Variant string

const (
	Emoji   Variant = "emoji"
	Nerd    Variant = "nerd"
	Plain   Variant = "plain"
	Kaomoji Variant = "kaomoji"
	Squares Variant = "squares"
)

// AvailableVariants lists the values icons.variant accepts.
func AvailableVariants() []string {
	return []string{string(Emoji), string(Nerd), string(Plain), string(Kaomoji), string(Squares)}
}

// CurrentVariant is the configured glyph set.
func CurrentVariant() Variant {
	return Variant(viper.GetString(key.IconsVariant))
}

// glyphs holds one symbol drawn in every variant.
type glyphs struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (g glyphs) in(v Variant) string {
	switch v {
	case Emoji:
		return g.emoji
	case Nerd:
		return g.nerd
	case Plain:
		return g.plain
	case Kaomoji:
		return g.kaomoji
	case Squares:
		return g.squares
	default:
		return ""
	}
}

// Get renders i in the configured variant. Unknown icons and variants render empty.
func Get(i Icon) string {
	g, ok := icons[i]
	if !ok {
		return ""
	}
	return g.in(CurrentVariant())
}

// Resolve renders a sprite id, aliases included.
func Resolve(id string) (string, bool) {
	i, ok := Lookup(id)
	if !ok {
		return "", false
	}
	return Get(i), true
}

// IDs lists the canonical ids in order.
func IDs() []Icon {
	ids := lo.Keys(icons)
	slices.Sort(ids)
	return ids
}

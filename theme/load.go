package theme

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/termview/terminal"
)

// pairSpec is one attribute entry in a theme file
type pairSpec struct {
	Fg        string `toml:"fg"`
	Bg        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Underline bool   `toml:"underline"`
	Dim       bool   `toml:"dim"`
	Reverse   bool   `toml:"reverse"`
}

// schemeSpec is one named scheme in a theme file.
// Unset entries keep the Default scheme's value.
type schemeSpec struct {
	Normal    *pairSpec `toml:"normal"`
	Focus     *pairSpec `toml:"focus"`
	HotNormal *pairSpec `toml:"hot_normal"`
	HotFocus  *pairSpec `toml:"hot_focus"`
	Disabled  *pairSpec `toml:"disabled"`
}

type themeFile struct {
	Schemes map[string]schemeSpec `toml:"schemes"`
}

// Load reads named color schemes from a TOML file
func Load(path string) (map[string]ColorScheme, error) {
	var tf themeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return nil, errors.Wrapf(err, "theme: load %s", path)
	}
	return buildSchemes(tf)
}

// Parse reads named color schemes from TOML source
func Parse(data string) (map[string]ColorScheme, error) {
	var tf themeFile
	if _, err := toml.Decode(data, &tf); err != nil {
		return nil, errors.Wrap(err, "theme: parse")
	}
	return buildSchemes(tf)
}

func buildSchemes(tf themeFile) (map[string]ColorScheme, error) {
	out := make(map[string]ColorScheme, len(tf.Schemes))
	for name, spec := range tf.Schemes {
		scheme := Default
		entries := []struct {
			spec *pairSpec
			dst  *terminal.Attribute
		}{
			{spec.Normal, &scheme.Normal},
			{spec.Focus, &scheme.Focus},
			{spec.HotNormal, &scheme.HotNormal},
			{spec.HotFocus, &scheme.HotFocus},
			{spec.Disabled, &scheme.Disabled},
		}
		for _, e := range entries {
			if e.spec == nil {
				continue
			}
			attr, err := e.spec.attribute(*e.dst)
			if err != nil {
				return nil, errors.Wrapf(err, "theme: scheme %q", name)
			}
			*e.dst = attr
		}
		out[name] = scheme
	}
	return out, nil
}

// attribute builds an Attribute from the spec, starting from base so a
// pair can set only fg or only bg
func (p *pairSpec) attribute(base terminal.Attribute) (terminal.Attribute, error) {
	attr := base
	if p.Fg != "" {
		fg, err := Hex(p.Fg)
		if err != nil {
			return attr, err
		}
		attr.Fg = fg
	}
	if p.Bg != "" {
		bg, err := Hex(p.Bg)
		if err != nil {
			return attr, err
		}
		attr.Bg = bg
	}
	attr.Attrs = terminal.AttrNone
	if p.Bold {
		attr.Attrs |= terminal.AttrBold
	}
	if p.Underline {
		attr.Attrs |= terminal.AttrUnderline
	}
	if p.Dim {
		attr.Attrs |= terminal.AttrDim
	}
	if p.Reverse {
		attr.Attrs |= terminal.AttrReverse
	}
	return attr, nil
}

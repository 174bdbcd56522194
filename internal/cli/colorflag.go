package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// ColorValue is a pflag.Value that only accepts #RRGGBB colors, so a bad
// --color fails while flags are parsed
type ColorValue struct {
	value string
}

var _ pflag.Value = (*ColorValue)(nil)

// NewColorValue returns a ColorValue holding def
func NewColorValue(def string) *ColorValue {
	return &ColorValue{value: def}
}

func (c *ColorValue) String() string {
	return c.value
}

// Set validates and stores s, normalized to upper case
func (c *ColorValue) Set(s string) error {
	s = strings.TrimSpace(s)
	if err := ValidateColorHex(s); err != nil {
		return err
	}
	c.value = strings.ToUpper(s)
	return nil
}

// Type names the value in help output
func (c *ColorValue) Type() string {
	return "color"
}

// ColorFlag registers a --color flag on fs and returns its value
func ColorFlag(fs *pflag.FlagSet, usage string) *ColorValue {
	v := NewColorValue("")
	fs.Var(v, "color", usage)
	return v
}

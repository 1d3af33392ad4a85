package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/light-cycle/core"
)

// ParseHexColor parses "#rrggbb" or "rrggbb"
func ParseHexColor(s string) (core.RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return core.RGB{}, fmt.Errorf("color %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return core.RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return core.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// FormatHexColor is the inverse of ParseHexColor
func FormatHexColor(c core.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyID identifies a physical key independent of modifiers
// Rune keys are stored lowercase with Key set to tcell.KeyRune
type KeyID struct {
	Key  tcell.Key
	Rune rune
}

// Named special keys accepted in config
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
}

// Rune aliases for keys that can't be written as a bare single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special returns the KeyID for a non-rune key
func Special(k tcell.Key) KeyID {
	return KeyID{Key: k}
}

// Rune returns the KeyID for a character key
func Rune(r rune) KeyID {
	return KeyID{Key: tcell.KeyRune, Rune: unicode.ToLower(r)}
}

// FromEvent converts a tcell key event to a KeyID
func FromEvent(ev *tcell.EventKey) KeyID {
	if ev.Key() == tcell.KeyRune {
		return Rune(ev.Rune())
	}
	return Special(ev.Key())
}

// ParseKey converts a config key name to a KeyID
// Accepts special key names, rune aliases and single characters
func ParseKey(name string) (KeyID, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if k, ok := specialKeyNames[lower]; ok {
		return Special(k), nil
	}
	if r, ok := runeAliases[lower]; ok {
		return Rune(r), nil
	}
	runes := []rune(lower)
	if len(runes) == 1 {
		return Rune(runes[0]), nil
	}
	return KeyID{}, fmt.Errorf("invalid key %q (expected key name or single character)", name)
}

func (k KeyID) String() string {
	if k.Key == tcell.KeyRune {
		return string(k.Rune)
	}
	for name, sk := range specialKeyNames {
		if sk == k.Key && name != "escape" {
			return name
		}
	}
	return tcell.KeyNames[k.Key]
}

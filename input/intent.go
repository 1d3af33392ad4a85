package input

import "github.com/gdamore/tcell/v2"

// IntentType discriminates non-movement actions
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit            // Esc, Ctrl+C, Ctrl+Q
	IntentPause           // p
	IntentRestart         // r
	IntentToggleMute      // m
)

// IntentFor classifies a key event that is not a movement key
func IntentFor(ev *tcell.EventKey) IntentType {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return IntentQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P':
			return IntentPause
		case 'r', 'R':
			return IntentRestart
		case 'm', 'M':
			return IntentToggleMute
		}
	}
	return IntentNone
}

// Reserved reports whether key already triggers an action and cannot steer
func Reserved(key KeyID) bool {
	return IntentFor(tcell.NewEventKey(key.Key, key.Rune, tcell.ModNone)) != IntentNone
}

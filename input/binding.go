package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/light-cycle/navigation"
)

// PlayType selects how players share the keyboard
type PlayType uint8

const (
	PlayLocal PlayType = iota
	PlayOnline
)

// ParsePlayType maps "local"/"online" to a PlayType
func ParsePlayType(s string) (PlayType, error) {
	switch strings.ToLower(s) {
	case "local", "":
		return PlayLocal, nil
	case "online":
		return PlayOnline, nil
	}
	return PlayLocal, fmt.Errorf("unknown play type %q", s)
}

func (p PlayType) String() string {
	if p == PlayOnline {
		return "online"
	}
	return "local"
}

// Designation is the seat of a player
type Designation uint8

const (
	PlayerOne Designation = iota
	PlayerTwo
	PlayerThree
	PlayerFour
)

// MaxPlayers is the number of designations
const MaxPlayers = 4

func (d Designation) String() string {
	return fmt.Sprintf("P%d", uint8(d)+1)
}

var (
	ErrUnmappedKey     = errors.New("key is not mapped to any direction")
	ErrNilBinding      = errors.New("movement key binding is nil")
	ErrNoLocalBinding  = errors.New("no keybinds for players 3 or greater in local multiplayer")
	ErrDuplicateTarget = errors.New("direction bound more than once")
	ErrReservedKey     = errors.New("key is reserved for a game action")
	ErrSharedKey       = errors.New("key bound for more than one player")
)

// Binding maps movement keys to headings
type Binding map[KeyID]navigation.Direction

// Direction returns the heading bound to key
func (b Binding) Direction(key KeyID) (navigation.Direction, error) {
	if b == nil {
		return navigation.None, ErrNilBinding
	}
	dir, ok := b[key]
	if !ok {
		return navigation.None, fmt.Errorf("%w: %s", ErrUnmappedKey, key)
	}
	return dir, nil
}

// Keys returns the bound keys in a stable order
func (b Binding) Keys() []KeyID {
	keys := make([]KeyID, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Key != keys[j].Key {
			return keys[i].Key < keys[j].Key
		}
		return keys[i].Rune < keys[j].Rune
	})
	return keys
}

// PrimaryBinding is the arrow-key binding
func PrimaryBinding() Binding {
	return Binding{
		Special(tcell.KeyUp):    navigation.North,
		Special(tcell.KeyDown):  navigation.South,
		Special(tcell.KeyLeft):  navigation.West,
		Special(tcell.KeyRight): navigation.East,
	}
}

// SecondaryBinding is the WASD binding for the second local player
func SecondaryBinding() Binding {
	return Binding{
		Rune('w'): navigation.North,
		Rune('s'): navigation.South,
		Rune('a'): navigation.West,
		Rune('d'): navigation.East,
	}
}

// Bindings holds the two binding tables, overridable by config
type Bindings struct {
	Primary   Binding
	Secondary Binding
}

// DefaultBindings returns arrows for primary and WASD for secondary
func DefaultBindings() Bindings {
	return Bindings{
		Primary:   PrimaryBinding(),
		Secondary: SecondaryBinding(),
	}
}

// For returns the binding for a player
// Local second player gets the secondary table, local players three and up have none
func (b Bindings) For(playType PlayType, who Designation) (Binding, error) {
	if playType == PlayLocal && who == PlayerTwo {
		return b.Secondary, nil
	}
	if playType == PlayLocal && who != PlayerOne {
		return nil, fmt.Errorf("%w: %s", ErrNoLocalBinding, who)
	}
	return b.Primary, nil
}

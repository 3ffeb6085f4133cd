package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/core"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// keyNames maps TOML key names to special keys
var keyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl-c": tcell.KeyCtrlC,
	"ctrl-q": tcell.KeyCtrlQ,
	"f1":     tcell.KeyF1,
	"f2":     tcell.KeyF2,
}

// actionRegistry maps canonical action names to intents
// "none" unbinds a key
var actionRegistry = map[string]Intent{
	"none":         None,
	"up":           directionIntent(core.DirUp),
	"down":         directionIntent(core.DirDown),
	"left":         directionIntent(core.DirLeft),
	"right":        directionIntent(core.DirRight),
	"start":        {Type: IntentStart},
	"toggle_pause": {Type: IntentTogglePause},
	"toggle_mute":  {Type: IntentToggleMute},
	"retry":        {Type: IntentRetry},
	"new_game":     {Type: IntentNewGame},
	"quit":         {Type: IntentQuit},
}

// keymapFile is the TOML layout of a keymap override
//
//	[keys]
//	esc = "quit"
//	[runes]
//	x = "toggle_pause"
type keymapFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Intent, len(raw.Keys)),
		Runes:       make(map[rune]Intent, len(raw.Runes)),
	}

	for name, action := range raw.Keys {
		k, ok := keyNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("[keys] unknown key name: %q", name)
		}
		in, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", name, err)
		}
		kt.SpecialKeys[k] = in
	}

	for name, action := range raw.Runes {
		r, err := resolveRune(name)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", name, err)
		}
		in, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", name, err)
		}
		kt.Runes[r] = in
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return toLower(runes[0]), nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	in, ok := actionRegistry[name]
	if !ok {
		return None, fmt.Errorf("unknown action: %q", name)
	}
	return in, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	for k, v := range override.SpecialKeys {
		if v.Type == IntentNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v.Type == IntentNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}
	return result
}

// Package input maps key presses to workspace actions, with a global
// shortcut table and a modal pane mode.
package input

import (
	"strings"
)

// Modifier represents keyboard modifier flags. Values match GDK's modifier
// masks so toolkit state can be masked directly.
type Modifier uint

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is pressed.
	ModShift Modifier = 1 << 0
	// ModCtrl indicates the Control key is pressed.
	ModCtrl Modifier = 1 << 2
	// ModAlt indicates the Alt key is pressed.
	ModAlt Modifier = 1 << 3
)

// modifierMask filters out lock and pointer-button state.
const modifierMask = ModCtrl | ModShift | ModAlt

// KeyBinding is a key name plus modifiers. Key names are lowercase GDK key
// names ("h", "left", "return", "bracketleft").
type KeyBinding struct {
	Key       string
	Modifiers Modifier
}

// String renders the binding the way config files spell it.
func (b KeyBinding) String() string {
	var parts []string
	if b.Modifiers&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if b.Modifiers&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if b.Modifiers&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(append(parts, b.Key), "+")
}

var keyAliases = map[string]string{
	"esc":          "escape",
	"enter":        "return",
	"kp_enter":     "return",
	"del":          "delete",
	"pageup":       "page_up",
	"pagedown":     "page_down",
	"prior":        "page_up",
	"next":         "page_down",
	"arrowleft":    "left",
	"arrowright":   "right",
	"arrowup":      "up",
	"arrowdown":    "down",
	"iso_left_tab": "tab",
	"+":            "plus",
	"-":            "minus",
	"=":            "equal",
	"[":            "bracketleft",
	"]":            "bracketright",
	"{":            "braceleft",
	"}":            "braceright",
	"`":            "grave",
	",":            "comma",
	".":            "period",
	"/":            "slash",
	" ":            "space",
}

var namedKeys = map[string]bool{
	"escape": true, "return": true, "tab": true, "space": true, "backspace": true,
	"delete": true, "home": true, "end": true, "page_up": true, "page_down": true,
	"left": true, "right": true, "up": true, "down": true,
	"plus": true, "minus": true, "equal": true, "grave": true, "comma": true,
	"period": true, "slash": true, "bracketleft": true, "bracketright": true,
	"braceleft": true, "braceright": true,
	"f1": true, "f2": true, "f3": true, "f4": true, "f5": true, "f6": true,
	"f7": true, "f8": true, "f9": true, "f10": true, "f11": true, "f12": true,
}

// NormalizeKeyName maps a key name from config or from the toolkit to its
// canonical form. Returns false for keys the shortcut tables cannot hold.
func NormalizeKeyName(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if name != " " {
		name = strings.ToLower(strings.TrimSpace(name))
	}
	if alias, ok := keyAliases[name]; ok {
		name = alias
	}
	if namedKeys[name] {
		return name, true
	}
	if len(name) == 1 && (name[0] >= 'a' && name[0] <= 'z' || name[0] >= '0' && name[0] <= '9') {
		return name, true
	}
	return "", false
}

// ParseKeyString converts a config key string like "ctrl+shift+h" to a
// KeyBinding. An uppercase single letter implies Shift.
func ParseKeyString(s string) (KeyBinding, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KeyBinding{}, false
	}
	if s == "+" {
		return KeyBinding{Key: "plus"}, true
	}

	var modifiers Modifier
	var keyPart string
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch strings.ToLower(part) {
		case "ctrl", "control":
			modifiers |= ModCtrl
		case "shift":
			modifiers |= ModShift
		case "alt":
			modifiers |= ModAlt
		default:
			if keyPart != "" {
				return KeyBinding{}, false
			}
			keyPart = part
		}
	}

	// "ctrl++" binds the plus key.
	if keyPart == "" && strings.HasSuffix(s, "++") {
		keyPart = "+"
	}
	if keyPart == "" {
		return KeyBinding{}, false
	}

	if len(keyPart) == 1 && keyPart[0] >= 'A' && keyPart[0] <= 'Z' {
		modifiers |= ModShift
	}

	key, ok := NormalizeKeyName(keyPart)
	if !ok {
		return KeyBinding{}, false
	}
	return KeyBinding{Key: key, Modifiers: modifiers}, true
}

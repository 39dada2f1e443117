package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeyString(t *testing.T) {
	tests := []struct {
		in   string
		want KeyBinding
		ok   bool
	}{
		{"ctrl+p", KeyBinding{Key: "p", Modifiers: ModCtrl}, true},
		{"Ctrl+Shift+Tab", KeyBinding{Key: "tab", Modifiers: ModCtrl | ModShift}, true},
		{"alt+arrowleft", KeyBinding{Key: "left", Modifiers: ModAlt}, true},
		{"shift+l", KeyBinding{Key: "l", Modifiers: ModShift}, true},
		{"L", KeyBinding{Key: "l", Modifiers: ModShift}, true},
		{"enter", KeyBinding{Key: "return"}, true},
		{"esc", KeyBinding{Key: "escape"}, true},
		{"+", KeyBinding{Key: "plus"}, true},
		{"ctrl++", KeyBinding{Key: "plus", Modifiers: ModCtrl}, true},
		{"ctrl+[", KeyBinding{Key: "bracketleft", Modifiers: ModCtrl}, true},
		{"f5", KeyBinding{Key: "f5"}, true},
		{"7", KeyBinding{Key: "7"}, true},
		{"", KeyBinding{}, false},
		{"ctrl+", KeyBinding{}, false},
		{"ctrl+a+b", KeyBinding{}, false},
		{"hyper+x", KeyBinding{}, false},
		{"ctrl+nosuchkey", KeyBinding{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKeyString(tt.in)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeKeyName_ToolkitNames(t *testing.T) {
	tests := map[string]string{
		"Left":         "left",
		"Return":       "return",
		"KP_Enter":     "return",
		"ISO_Left_Tab": "tab",
		"BackSpace":    "backspace",
		"Page_Up":      "page_up",
		"bracketright": "bracketright",
		"H":            "h",
	}
	for in, want := range tests {
		got, ok := NormalizeKeyName(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := NormalizeKeyName("Shift_L")
	assert.False(t, ok)
}

func TestKeyBinding_String(t *testing.T) {
	b := KeyBinding{Key: "tab", Modifiers: ModShift | ModCtrl}

	assert.Equal(t, "ctrl+shift+tab", b.String())

	parsed, ok := ParseKeyString(b.String())
	assert.True(t, ok)
	assert.Equal(t, b, parsed)
}

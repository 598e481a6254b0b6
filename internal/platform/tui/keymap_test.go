package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", keyRunes("w"), core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", keyRunes("d"), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"f", keyRunes("f"), core.ActionFinish, false},
		{"r", keyRunes("r"), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", keyRunes("q"), core.ActionQuit, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", keyRunes("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestMapKeyToFrameSkipsHardQuit(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.True(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame))
	assert.True(t, frame.Empty())

	assert.False(t, km.MapKeyToFrame(keyRunes("f"), &frame))
	assert.True(t, frame.Has(core.ActionFinish))
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.True(t, km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame))
	assert.False(t, km.MapMouseToFrame(tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame))
	assert.True(t, km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, &frame))
	assert.True(t, km.MapMouseToFrame(tea.MouseMsg{X: 6, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, &frame))

	assert.Equal(t, []core.PointerEvent{
		{Kind: core.PointerPress, X: 3, Y: 4},
		{Kind: core.PointerDrag, X: 5, Y: 4},
		{Kind: core.PointerRelease, X: 6, Y: 5},
	}, frame.Pointer)
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(keyRunes("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(keyRunes("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(keyRunes("x")))
}

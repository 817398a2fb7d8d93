package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldTicks is used when no latch length is configured.
const DefaultHoldTicks = 12

// KeyMapper translates Bubble Tea key messages to game actions and turns
// them into one InputFrame per tick.
//
// Terminals report key presses and auto-repeats but never releases, so
// Left/Right are latched: each press holds the direction for holdTicks
// frames and every auto-repeat renews it. Everything else is a discrete
// action seen by exactly one frame.
type KeyMapper struct {
	holdTicks int
	left      int // Frames the left latch still holds
	right     int
	pending   core.InputFrame
}

// NewKeyMapper creates a key mapper with the given latch length.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		holdTicks: holdTicks,
		pending:   core.NewInputFrame(),
	}
}

// MapKey translates a key message to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "left", "a", "h":
		return core.ActionLeft
	case "right", "d", "l":
		return core.ActionRight
	case " ":
		return core.ActionFire
	case "enter":
		return core.ActionConfirm
	case "esc", "b":
		return core.ActionBack
	}
	return core.ActionNone
}

// Press records a key for the next frame and returns the action it mapped to.
func (km *KeyMapper) Press(msg tea.KeyMsg) core.Action {
	action := km.MapKey(msg)

	switch action {
	case core.ActionNone:
	case core.ActionLeft:
		km.left = km.holdTicks
		km.right = 0
	case core.ActionRight:
		km.right = km.holdTicks
		km.left = 0
	default:
		km.pending.Set(action)
	}
	return action
}

// Frame returns the input for the current tick.
func (km *KeyMapper) Frame() core.InputFrame {
	frame := km.pending.Clone()
	if km.left > 0 {
		frame.Set(core.ActionLeft)
	}
	if km.right > 0 {
		frame.Set(core.ActionRight)
	}
	return frame
}

// Advance ends the tick: discrete actions are consumed and latches count down.
func (km *KeyMapper) Advance() {
	km.pending.Clear()
	if km.left > 0 {
		km.left--
	}
	if km.right > 0 {
		km.right--
	}
}

// Release drops every latch and pending action.
func (km *KeyMapper) Release() {
	km.pending.Clear()
	km.left = 0
	km.right = 0
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

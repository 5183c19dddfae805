package systems

import (
	"github.com/automoto/doomerang-siege/archetypes"
	"github.com/automoto/doomerang-siege/components"
	cfg "github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Binding maps one action to keys and standard gamepad buttons.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings is the default control layout.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveUp:      {Keys: []ebiten.Key{ebiten.KeyW}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop}},
	cfg.ActionMoveDown:    {Keys: []ebiten.Key{ebiten.KeyS}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}},
	cfg.ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyA}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
	cfg.ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyD}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
	cfg.ActionStrafeLeft:  {Keys: []ebiten.Key{ebiten.KeyQ}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft}},
	cfg.ActionStrafeRight: {Keys: []ebiten.Key{ebiten.KeyE}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight}},
	cfg.ActionFireUp:      {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
	cfg.ActionFireDown:    {Keys: []ebiten.Key{ebiten.KeyArrowDown}},
	cfg.ActionFireLeft:    {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
	cfg.ActionFireRight:   {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
	cfg.ActionSword:       {Keys: []ebiten.Key{ebiten.KeySpace}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
	cfg.ActionDagger:      {Keys: []ebiten.Key{ebiten.KeyZ}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}},
	cfg.ActionGreatsword:  {Keys: []ebiten.Key{ebiten.KeyX}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}},
	cfg.ActionShield:      {Keys: []ebiten.Key{ebiten.KeyShiftLeft}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft}},
	cfg.ActionCycleWeapon: {Keys: []ebiten.Key{ebiten.KeyTab}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop}},
	cfg.ActionGodMode:     {Keys: []ebiten.Key{ebiten.KeyG}},
	cfg.ActionPause:       {Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight}},
	cfg.ActionRestart:     {Keys: []ebiten.Key{ebiten.KeyR}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft}},
	cfg.ActionToggleFPS:   {Keys: []ebiten.Key{ebiten.KeyF3}},
}

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	held       []cfg.ActionID
)

// UpdateInput polls raw input into the Input singleton.
// Must run BEFORE UpdateSession in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	held = held[:0]

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held = append(held, actionID)
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					held = append(held, actionID)
					gamepadUsed = true
				}
			}
		}
	}

	if sticks := appendStickActions(nil, gamepadIDs); len(sticks) > 0 {
		held = append(held, sticks...)
		gamepadUsed = true
	}

	game.NextFrame(input, held...)

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// appendStickActions turns the left stick into movement and the right
// stick into fire directions, past the configured deadzone.
func appendStickActions(dst []cfg.ActionID, gamepads []ebiten.GamepadID) []cfg.ActionID {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		dst = appendAxis(dst, gpID, deadzone,
			ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical,
			[4]cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight, cfg.ActionMoveUp, cfg.ActionMoveDown})
		dst = appendAxis(dst, gpID, deadzone,
			ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical,
			[4]cfg.ActionID{cfg.ActionFireLeft, cfg.ActionFireRight, cfg.ActionFireUp, cfg.ActionFireDown})
	}
	return dst
}

// appendAxis reads one stick; actions are ordered left, right, up, down.
func appendAxis(dst []cfg.ActionID, gpID ebiten.GamepadID, deadzone float64, h, v ebiten.StandardGamepadAxis, actions [4]cfg.ActionID) []cfg.ActionID {
	horizontal := ebiten.StandardGamepadAxisValue(gpID, h)
	vertical := ebiten.StandardGamepadAxisValue(gpID, v)
	if horizontal < -deadzone {
		dst = append(dst, actions[0])
	}
	if horizontal > deadzone {
		dst = append(dst, actions[1])
	}
	if vertical < -deadzone {
		dst = append(dst, actions[2])
	}
	if vertical > deadzone {
		dst = append(dst, actions[3])
	}
	return dst
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		// Zero-value InputData is correct (all bools false)
		entry = archetypes.Input.Spawn(ecs.World)
	}
	return components.Input.Get(entry)
}

package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-siege/components"
	cfg "github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	hudLine      = 18
	// hudEaseTime is how long the bar takes to catch up with a health change.
	hudEaseTime = 0.3
)

// HUD shows the player's health, weapon and level in the top-left corner.
// The bar eases towards the current health.
type HUD struct {
	session *game.Session
	canvas  *Canvas

	shown  float64
	target float64
	tween  *gween.Tween
}

func NewHUD(session *game.Session, canvas *Canvas) *HUD {
	return &HUD{session: session, canvas: canvas, shown: 1, target: 1}
}

// Update advances the bar easing by one tick.
func (h *HUD) Update(_ *ecs.ECS) {
	target := 0.0
	if p, ok := h.session.Manager().Player(); ok {
		target = components.Health.Get(p).Fraction()
	}
	if target != h.target {
		h.target = target
		h.tween = gween.New(float32(h.shown), float32(target), hudEaseTime, ease.OutCubic)
	}
	if h.tween == nil {
		return
	}
	v, done := h.tween.Update(float32(h.session.Clock().FrameTime()))
	h.shown = float64(v)
	if done {
		h.tween = nil
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(_ *ecs.ECS, screen *ebiten.Image) {
	top := float64(hudMargin)
	// Leave the first line to the FPS text.
	if h.session.ShowFPS() {
		top += hudLine
	}

	// Background (dark gray)
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(top),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	// Current HP (green)
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(top),
		float32(hudBarWidth*h.shown), float32(hudBarHeight),
		color.RGBA{40, 220, 40, 255}, false)

	h.canvas.Begin(screen)
	y := top + hudBarHeight + 4
	for _, line := range h.lines() {
		h.canvas.DrawScreenText(line, hudMargin, y)
		y += hudLine
	}
}

func (h *HUD) lines() []string {
	lines := []string{fmt.Sprintf("%d/%d  %s", h.session.LevelIndex()+1, h.session.LevelCount(), h.session.Level().Name)}
	p, ok := h.session.Manager().Player()
	if !ok {
		return lines
	}
	pd := components.Player.Get(p)
	if pd.Weapon >= 0 && pd.Weapon < len(cfg.Ranged) {
		lines = append(lines, "weapon: "+cfg.Ranged[pd.Weapon].Name)
	}
	lines = append(lines, fmt.Sprintf("hostiles: %d", h.session.Manager().HostilesLeft()))
	if pd.GodMode {
		lines = append(lines, "god mode")
	}
	return lines
}

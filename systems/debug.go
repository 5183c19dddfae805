package systems

import (
	"image/color"

	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugAliveColor  = color.RGBA{0, 255, 0, 160}
	debugStaticColor = color.RGBA{255, 200, 0, 160}
	debugWallColor   = color.RGBA{255, 60, 60, 120}
)

// NewDrawDebug outlines every wall, every collision circle and the player's
// view vector when enabled.
func NewDrawDebug(session *game.Session, enabled func() bool) ecs.Renderer {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		if !enabled() {
			return
		}
		if tm := session.Tiles(); tm != nil {
			for _, r := range tm.Walls() {
				vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, debugWallColor, false)
			}
		}
		m := session.Manager()
		for _, id := range m.Entities() {
			e := m.Entry(id)
			if e == nil {
				continue
			}
			o := components.Object.Get(e)
			if !o.Alive || o.Radius <= 0 {
				continue
			}
			c := debugAliveColor
			if o.Static {
				c = debugStaticColor
			}
			vector.StrokeCircle(screen, float32(o.Pos.X), float32(o.Pos.Y), float32(o.Radius), 1, c, true)
			if o.Kind == components.KindPlayer {
				tip := o.Pos.Add(o.View().Scale(o.Radius * 2))
				vector.StrokeLine(screen, float32(o.Pos.X), float32(o.Pos.Y), float32(tip.X), float32(tip.Y), 1, c, true)
			}
		}
	}
}

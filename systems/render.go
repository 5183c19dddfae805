package systems

import (
	"github.com/automoto/doomerang-siege/assets"
	"github.com/automoto/doomerang-siege/components"
	cfg "github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/effects"
	"github.com/automoto/doomerang-siege/game"
	"github.com/automoto/doomerang-siege/objects"
	"github.com/automoto/doomerang-siege/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // faces come from freetype
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Layers drawn by the world scene, bottom to top.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Canvas draws simulation sprites and screen text onto the current frame.
type Canvas struct {
	screen *ebiten.Image
	sheets *assets.SpriteSheets
	face   font.Face
}

func NewCanvas(sheets *assets.SpriteSheets, face font.Face) *Canvas {
	return &Canvas{sheets: sheets, face: face}
}

// Begin targets the next draws at screen.
func (c *Canvas) Begin(screen *ebiten.Image) {
	c.screen = screen
}

// Draw centres the sprite frame on its position. Sprites that rotate are
// turned by the roll.
func (c *Canvas) Draw(s objects.Sprite) {
	img := c.sheets.Frame(s.ID, s.Frame)
	if img == nil || c.screen == nil {
		return
	}
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	var geo ebiten.GeoM
	geo.Translate(-w/2, -h/2)
	if cfg.Sprites[s.ID].Rotates {
		geo.Rotate(s.Roll)
	}
	geo.Translate(s.Pos.X, s.Pos.Y)

	if s.Tint == components.NoTint || s.Tint == (components.Tint{}) {
		drawOp.GeoM = geo
		drawOp.ColorScale.Reset()
		c.screen.DrawImage(img, drawOp)
		return
	}
	assets.DrawTinted(c.screen, img, geo, s.Tint, 1)
}

// DrawScreenText writes text with its top-left corner at x, y.
func (c *Canvas) DrawScreenText(str string, x, y float64) {
	if c.screen == nil || c.face == nil {
		return
	}
	ascent := c.face.Metrics().Ascent.Ceil()
	text.Draw(c.screen, str, c.face, int(x), int(y)+ascent, cfg.UI.TextColor)
}

// tileCache keeps the floor and walls of the current level pre-rendered.
type tileCache struct {
	level *leveldata.LevelData
	image *ebiten.Image
}

// NewDrawTiles renders the level floor and walls under everything else.
func NewDrawTiles(session *game.Session) ecs.Renderer {
	var cache tileCache
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		level := session.Level()
		if cache.level != level || cache.image == nil {
			cache = tileCache{level: level, image: renderTiles(level)}
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		screen.DrawImage(cache.image, drawOp)
	}
}

func renderTiles(level *leveldata.LevelData) *ebiten.Image {
	w, h := level.MapWidth, level.MapHeight
	if w <= 0 || h <= 0 {
		w, h = cfg.C.Width, cfg.C.Height
	}
	img := ebiten.NewImage(w, h)
	img.Fill(cfg.UI.FloorColor)
	for _, r := range level.SolidRects {
		vector.DrawFilledRect(img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.UI.WallColor, false)
		vector.StrokeRect(img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.UI.BackgroundColor, false)
	}
	return img
}

// NewDrawWorld draws every live entity through the canvas.
func NewDrawWorld(session *game.Session, canvas *Canvas) ecs.Renderer {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		canvas.Begin(screen)
		session.Draw(canvas)
	}
}

// NewDrawParticles draws the particle pool scaled and faded by its tweens.
func NewDrawParticles(pool *effects.Pool, sheets *assets.SpriteSheets) ecs.Renderer {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		pool.Each(func(pd *components.ParticleData) {
			img := sheets.Frame(pd.Spec.Sprite, 0)
			if img == nil || pd.Scale <= 0 || pd.Alpha <= 0 {
				return
			}
			w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
			drawOp.GeoM.Reset()
			drawOp.GeoM.Translate(-w/2, -h/2)
			drawOp.GeoM.Scale(pd.Scale, pd.Scale)
			drawOp.GeoM.Rotate(pd.Roll)
			drawOp.GeoM.Translate(pd.Pos.X, pd.Pos.Y)

			drawOp.ColorScale.Reset()
			c := pd.Spec.Color
			if c.A == 0 {
				c = cfg.White
			}
			drawOp.ColorScale.ScaleWithColor(c)
			drawOp.ColorScale.ScaleAlpha(float32(pd.Alpha))
			screen.DrawImage(img, drawOp)
		})
	}
}

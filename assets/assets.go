package assets

import (
	"image"
	"image/color"
	"math"

	cfg "github.com/automoto/doomerang-siege/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteSheets paints every entry of cfg.Sprites into a horizontal sheet
// once and serves its frames. It also reports sprite extents to the
// simulation.
type SpriteSheets struct {
	sheets     map[cfg.SpriteID]*ebiten.Image
	frameCache map[frameKey]*ebiten.Image
}

type frameKey struct {
	id    cfg.SpriteID
	frame int
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// pickupColors paints one frame per pickup variant: heal, weapon, shield.
var pickupColors = []color.RGBA{
	{60, 220, 90, 255},
	{250, 160, 40, 255},
	{90, 170, 255, 255},
}

// NewSpriteSheets generates the sheets for the whole sprite table.
func NewSpriteSheets() *SpriteSheets {
	s := &SpriteSheets{
		sheets:     make(map[cfg.SpriteID]*ebiten.Image, len(cfg.Sprites)),
		frameCache: make(map[frameKey]*ebiten.Image),
	}
	for id, info := range cfg.Sprites {
		s.sheets[id] = paintSheet(id, info)
	}
	return s
}

func (s *SpriteSheets) Width(id cfg.SpriteID) float64 {
	sheet, ok := s.sheets[id]
	if !ok {
		return 0
	}
	return float64(sheet.Bounds().Dx() / s.FrameCount(id))
}

func (s *SpriteSheets) Height(id cfg.SpriteID) float64 {
	sheet, ok := s.sheets[id]
	if !ok {
		return 0
	}
	return float64(sheet.Bounds().Dy())
}

func (s *SpriteSheets) FrameCount(id cfg.SpriteID) int {
	if n := cfg.Sprites[id].Frames; n > 0 {
		return n
	}
	return 1
}

// Frame returns a cached sub-image of one frame, clamping out of range
// frames to the last one. Unknown sprites return nil.
func (s *SpriteSheets) Frame(id cfg.SpriteID, frame int) *ebiten.Image {
	sheet, ok := s.sheets[id]
	if !ok {
		return nil
	}
	n := s.FrameCount(id)
	if frame < 0 {
		frame = 0
	}
	if frame >= n {
		frame = n - 1
	}
	key := frameKey{id, frame}
	if img, ok := s.frameCache[key]; ok {
		return img
	}
	w := sheet.Bounds().Dx() / n
	img := sheet.SubImage(image.Rect(frame*w, 0, (frame+1)*w, sheet.Bounds().Dy())).(*ebiten.Image)
	s.frameCache[key] = img
	return img
}

func paintSheet(id cfg.SpriteID, info cfg.SpriteInfo) *ebiten.Image {
	frames := info.Frames
	if frames <= 0 {
		frames = 1
	}
	w, h := info.Width, info.Height
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	sheet := ebiten.NewImage(w*frames, h)
	for f := 0; f < frames; f++ {
		dst := sheet.SubImage(image.Rect(f*w, 0, (f+1)*w, h)).(*ebiten.Image)
		paintFrame(dst, id, info, f, float32(f*w))
	}
	return sheet
}

// paintFrame draws one frame whose left edge sits at x0 on the sheet.
func paintFrame(dst *ebiten.Image, id cfg.SpriteID, info cfg.SpriteInfo, frame int, x0 float32) {
	w, h := float32(info.Width), float32(info.Height)
	cx, cy := x0+w/2, h/2

	switch {
	case id == cfg.SpriteHealthBar:
		frames := info.Frames
		if frames < 2 {
			frames = 2
		}
		vector.DrawFilledRect(dst, x0, 0, w, h, color.RGBA{120, 20, 20, 255}, false)
		fill := w * float32(frame) / float32(frames-1)
		vector.DrawFilledRect(dst, x0, 0, fill, h, info.Color, false)
		vector.StrokeRect(dst, x0, 0, w, h, 1, color.Black, false)
		return
	case id == cfg.SpritePickup:
		c := pickupColors[frame%len(pickupColors)]
		vector.DrawFilledRect(dst, x0+2, 2, w-4, h-4, c, false)
		vector.DrawFilledRect(dst, cx-1, 4, 2, h-8, color.White, false)
		vector.DrawFilledRect(dst, x0+4, cy-1, w-8, 2, color.White, false)
		return
	}

	switch info.Shape {
	case cfg.ShapeCircle:
		r := min(w, h) / 2
		vector.DrawFilledCircle(dst, cx, cy, r, info.Color, true)
		vector.DrawFilledCircle(dst, cx-r/3, cy-r/3, r/3, shade(info.Color, 1.4), true)
	case cfg.ShapeBox:
		c := shade(info.Color, 1-0.15*float64(frame))
		vector.DrawFilledRect(dst, x0+1, 1, w-2, h-2, c, false)
		vector.StrokeRect(dst, x0+1, 1, w-2, h-2, 2, shade(c, 0.6), false)
		if id == cfg.SpriteStationaryTurret {
			vector.DrawFilledCircle(dst, cx, cy, w/4, shade(c, 0.7), true)
			vector.StrokeLine(dst, cx, cy, x0+w, cy, 4, shade(c, 0.5), true)
		}
	case cfg.ShapeBar:
		if info.Rotates && w > h {
			// Waves travel along +x, so the blade lies across the path.
			vector.DrawFilledRect(dst, cx-h/4, 0, h/2, h, info.Color, false)
			vector.DrawFilledRect(dst, x0, cy-1, w, 2, shade(info.Color, 0.7), false)
			return
		}
		vector.DrawFilledRect(dst, x0, 0, w, h, info.Color, false)
	case cfg.ShapeTriangle:
		angle := 0.0
		if !info.Rotates {
			angle = facingAngle(info.Facing)
		}
		paintWalker(dst, info, frame, cx, cy, w, h, angle)
	}
}

// paintWalker draws a body pointing along angle. Walk frames swing two feet
// and attack frames extend a blade.
func paintWalker(dst *ebiten.Image, info cfg.SpriteInfo, frame int, cx, cy, w, h float32, angle float64) {
	r := min(w, h) / 2
	fx, fy := float32(math.Cos(angle)), float32(math.Sin(angle))
	// Side vector, perpendicular to the facing.
	sx, sy := -fy, fx

	if info.Frames == 4 {
		stride := []float32{-1, 0, 1, 0}[frame%4] * r / 3
		foot := shade(info.Color, 0.6)
		vector.DrawFilledCircle(dst, cx+sx*r/2+fx*stride, cy+sy*r/2+fy*stride, r/5, foot, true)
		vector.DrawFilledCircle(dst, cx-sx*r/2-fx*stride, cy-sy*r/2-fy*stride, r/5, foot, true)
	}

	tip := [2]float32{cx + fx*r, cy + fy*r}
	left := [2]float32{cx - fx*r*0.7 + sx*r*0.8, cy - fy*r*0.7 + sy*r*0.8}
	right := [2]float32{cx - fx*r*0.7 - sx*r*0.8, cy - fy*r*0.7 - sy*r*0.8}
	fillTriangle(dst, tip, left, right, info.Color)

	if info.Frames == 2 && frame == 1 {
		vector.StrokeLine(dst, cx, cy, cx+fx*r, cy+fy*r, 3, color.White, true)
	}
}

func fillTriangle(dst *ebiten.Image, a, b, c [2]float32, clr color.RGBA) {
	cr, cg, cb, ca := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	vs := make([]ebiten.Vertex, 0, 3)
	for _, p := range [][2]float32{a, b, c} {
		vs = append(vs, ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, whiteSubImage, op)
}

func facingAngle(d cfg.Direction) float64 {
	switch d {
	case cfg.DirUp:
		return -math.Pi / 2
	case cfg.DirLeft:
		return math.Pi
	case cfg.DirRight:
		return 0
	}
	return math.Pi / 2
}

// shade scales the colour channels by k, keeping alpha.
func shade(c color.RGBA, k float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(v)*k)))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

package assets

import (
	"embed"

	"github.com/automoto/doomerang-siege/components"
	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// TintShader darkens hurt entities by their tint
	TintShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	tintSrc, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return err
	}
	TintShader, err = ebiten.NewShader(tintSrc)
	return err
}

var tintOp = &ebiten.DrawRectShaderOptions{}

// DrawTinted draws src with geo applied, multiplying its colour by tint.
// Without a compiled shader it falls back to a colour scale.
func DrawTinted(dst, src *ebiten.Image, geo ebiten.GeoM, tint components.Tint, alpha float32) {
	if TintShader == nil {
		op := &ebiten.DrawImageOptions{GeoM: geo}
		op.ColorScale.Scale(tint.R*alpha, tint.G*alpha, tint.B*alpha, alpha)
		dst.DrawImage(src, op)
		return
	}
	b := src.Bounds()
	tintOp.GeoM = geo
	tintOp.ColorScale.Reset()
	tintOp.ColorScale.ScaleAlpha(alpha)
	tintOp.Images[0] = src
	tintOp.Uniforms = map[string]any{
		"Tint": []float32{tint.R, tint.G, tint.B},
	}
	dst.DrawRectShader(b.Dx(), b.Dy(), TintShader, tintOp)
}

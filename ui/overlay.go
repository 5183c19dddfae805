package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/game"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Overlay is the ebitenui layer shown over a paused or finished round.
// While playing it draws nothing and takes no input.
type Overlay struct {
	UI      *ebitenui.UI
	session *game.Session

	// Callbacks
	OnQuit        func()
	OnToggleSound func() bool // returns whether sound is now muted

	pauseRoot *widget.Container
	roundRoot *widget.Container

	roundTitle  *widget.Label
	roundDetail *widget.Label
	pauseDetail *widget.Label
	soundButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewOverlay builds the pause menu and round summary for a session.
func NewOverlay(session *game.Session, muted bool, onQuit func(), onToggleSound func() bool) (*Overlay, error) {
	o := &Overlay{
		session:       session,
		OnQuit:        onQuit,
		OnToggleSound: onToggleSound,
	}
	if err := o.loadFonts(); err != nil {
		return nil, err
	}
	o.pauseRoot = o.buildPause(muted)
	o.roundRoot = o.buildRound()
	o.UI = &ebitenui.UI{Container: o.pauseRoot}
	return o, nil
}

func (o *Overlay) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to load overlay font: %w", err)
	}
	o.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.TitleFontSize}
	o.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.HUDFontSize}
	o.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
	return nil
}

func (o *Overlay) root(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	for _, c := range children {
		content.AddChild(c)
	}
	rootContainer.AddChild(content)
	return rootContainer
}

func (o *Overlay) label(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}

func (o *Overlay) button(s string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(s, &o.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (o *Overlay) buildPause(muted bool) *widget.Container {
	o.pauseDetail = o.label("", &o.smallFace, color.RGBA{200, 200, 220, 255})
	o.soundButton = o.button(soundLabel(muted), func() {
		if o.OnToggleSound != nil {
			o.soundButton.Text().Label = soundLabel(o.OnToggleSound())
		}
	})
	return o.root(
		o.label("PAUSED", &o.titleFace, cfg.UI.TextColor),
		o.pauseDetail,
		o.button("Resume", func() { o.session.SetPaused(false) }),
		o.button("Restart level", func() { o.session.Restart() }),
		o.soundButton,
		o.button("Quit", func() {
			if o.OnQuit != nil {
				o.OnQuit()
			}
		}),
	)
}

func (o *Overlay) buildRound() *widget.Container {
	o.roundTitle = o.label("", &o.titleFace, cfg.UI.TextColor)
	o.roundDetail = o.label("", &o.normalFace, color.RGBA{200, 200, 220, 255})
	return o.root(o.roundTitle, o.roundDetail)
}

func soundLabel(muted bool) string {
	if muted {
		return "Sound: off"
	}
	return "Sound: on"
}

// Visible reports whether the overlay covers the round.
func (o *Overlay) Visible() bool {
	return o.session.State() != cfg.StatePlaying
}

// Update refreshes the labels and handles input while visible.
func (o *Overlay) Update() {
	switch o.session.State() {
	case cfg.StatePaused:
		o.UI.Container = o.pauseRoot
		o.pauseDetail.Label = fmt.Sprintf("%s  |  movement: %s", o.session.Level().Name, cfg.Player.Locomotion)
	case cfg.StateWaiting:
		o.UI.Container = o.roundRoot
		if o.session.Won() {
			o.roundTitle.Label = "LEVEL CLEAR"
		} else {
			o.roundTitle.Label = "YOU DIED"
		}
		o.roundDetail.Label = fmt.Sprintf("next round in %d", int(math.Ceil(o.session.WaitRemaining())))
	default:
		return
	}
	o.UI.Update()
}

// Draw renders the overlay over the world when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.Visible() {
		return
	}
	o.UI.Draw(screen)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/doomerang-siege/assets"
	"github.com/automoto/doomerang-siege/effects"
	"github.com/automoto/doomerang-siege/fonts"
	"github.com/automoto/doomerang-siege/game"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/automoto/doomerang-siege/shared/leveldata"
	"github.com/automoto/doomerang-siege/shared/persistence"
	"github.com/automoto/doomerang-siege/systems"
	"github.com/automoto/doomerang-siege/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldOptions configures the playable scene.
type WorldOptions struct {
	Levels     []*leveldata.LevelData
	StartLevel int
	Seed       int64
	TPS        int
	ShowFPS    bool
	Debug      bool
	Logger     *log.Logger
	Store      *persistence.Persistence
}

// WorldScene plays the level rotation in the window.
type WorldScene struct {
	opts    WorldOptions
	ecs     *ecs.ECS
	session *game.Session
	overlay *ui.Overlay
	quit    bool
	once    sync.Once
	err     error
}

func NewWorldScene(opts WorldOptions) *WorldScene {
	return &WorldScene{opts: opts}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return ws.err
	}
	ws.ecs.Update()
	if ws.quit {
		return ebiten.Termination
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Session is the running session, nil until the first update.
func (ws *WorldScene) Session() *game.Session {
	return ws.session
}

func (ws *WorldScene) configure() {
	logger := ws.opts.Logger

	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX(logger)

	// Tint shader for hurt flashes; sprites draw untinted without it.
	if err := assets.LoadShaders(); err != nil {
		logger.Warn("could not compile shaders", "error", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	ws.ecs = e

	sheets := assets.NewSpriteSheets()
	pool := effects.NewPool(e.World)
	session, err := game.NewSession(game.Options{
		Levels:     ws.opts.Levels,
		Sprites:    sheets,
		Audio:      systems.NewSFXQueue(e.World),
		Particles:  pool,
		Random:     gamemath.NewRand(ws.opts.Seed),
		Logger:     logger,
		TPS:        ws.opts.TPS,
		FPS:        ebiten.ActualFPS,
		StartLevel: ws.opts.StartLevel,
		ShowFPS:    ws.opts.ShowFPS,
	})
	if err != nil {
		ws.err = fmt.Errorf("failed to start session: %w", err)
		return
	}
	ws.session = session

	overlay, err := ui.NewOverlay(session, systems.IsMuted(),
		func() { ws.quit = true },
		func() bool {
			systems.SetMuted(!systems.IsMuted())
			return systems.IsMuted()
		},
	)
	if err != nil {
		ws.err = err
		return
	}
	ws.overlay = overlay

	canvas := systems.NewCanvas(sheets, fonts.HUD.Get())
	hud := systems.NewHUD(session, canvas)

	// Audio system (runs first, flushing cues queued last frame)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdateSession(session))
	e.AddSystem(systems.NewUpdateParticles(session, pool))
	e.AddSystem(hud.Update)
	e.AddSystem(func(_ *ecs.ECS) { overlay.Update() })
	if ws.opts.Store != nil {
		e.AddSystem(systems.NewUpdatePersistence(session, ws.opts.Store))
	}

	e.AddRenderer(systems.LayerWorld, systems.NewDrawTiles(session))
	e.AddRenderer(systems.LayerWorld, systems.NewDrawWorld(session, canvas))
	e.AddRenderer(systems.LayerWorld, systems.NewDrawParticles(pool, sheets))
	e.AddRenderer(systems.LayerWorld, systems.NewDrawDebug(session, func() bool { return ws.opts.Debug }))
	e.AddRenderer(systems.LayerHUD, hud.Draw)
	e.AddRenderer(systems.LayerHUD, func(_ *ecs.ECS, screen *ebiten.Image) { overlay.Draw(screen) })
}

// doomerang-siege is a top-down arena shooter.
//
// Usage:
//
//	doomerang-siege                 - Play in a window
//	doomerang-siege simulate        - Run the simulation without a window
//
// Global flags:
//
//	--config <path>      - Tuning override YAML
//	--levels <dir>       - Load .tmx maps from a directory instead of the bundled ones
//	--level <n>          - Index of the first level
//	--seed <value>       - RNG seed (0 = random based on time)
//	--tps <rate>         - Simulation tick rate
//	--locomotion <name>  - wasd, strafe or velocity
//	--god                - Start with god mode on
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/automoto/doomerang-siege/assets/levels"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/fonts"
	"github.com/automoto/doomerang-siege/scenes"
	"github.com/automoto/doomerang-siege/shared/leveldata"
	"github.com/automoto/doomerang-siege/shared/logging"
	"github.com/automoto/doomerang-siege/shared/persistence"
	"github.com/automoto/doomerang-siege/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const appName = "doomerang-siege"

var (
	// Global flags
	flagConfig     string
	flagLevelsDir  string
	flagLevel      int
	flagSeed       int64
	flagTPS        int
	flagLocomotion string
	flagGod        bool
	flagLogLevel   string

	// Window flags
	flagShowFPS bool
	flagDebug   bool
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Top-down arena shooter",
	Long: `Clear each level of turrets, zombies and skeletons with guns,
blades and a shield. Levels are played in order and wrap around.

Controls:
  WASD        - Move
  Q/E         - Strafe
  Arrow keys  - Fire
  Space/Z/X   - Sword, dagger, greatsword
  Left Shift  - Shield
  Tab         - Cycle gun
  P/Esc       - Pause
  R           - Restart level
  G           - God mode
  F3          - FPS counter`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning override YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of .tmx levels (default: bundled levels)")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Index of the first level")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Simulation tick rate (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flagLocomotion, "locomotion", "", "Movement scheme: wasd, strafe, velocity")
	rootCmd.PersistentFlags().BoolVar(&flagGod, "god", false, "Start with god mode on")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().BoolVar(&flagShowFPS, "fps", false, "Show the FPS counter")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Outline collision circles")

	rootCmd.AddCommand(simulateCmd)
}

// setup applies the global flags and loads the level list.
func setup() (*log.Logger, []*leveldata.LevelData, error) {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	source, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("tuning loaded", "source", source)

	if flagLocomotion != "" {
		l, err := config.ParseLocomotion(flagLocomotion)
		if err != nil {
			return nil, nil, err
		}
		config.Player.Locomotion = l
	}
	if flagGod {
		config.Player.GodMode = true
	}
	if flagTPS <= 0 {
		flagTPS = config.C.TPS
	}
	if flagSeed == 0 {
		flagSeed = time.Now().UnixNano()
	}

	lvls, err := loadLevels()
	if err != nil {
		return nil, nil, err
	}
	logger.Info("levels loaded", "count", len(lvls), "seed", flagSeed)
	return logger, lvls, nil
}

func loadLevels() ([]*leveldata.LevelData, error) {
	dir := flagLevelsDir
	if dir == "" {
		dir = config.Game.LevelsDir
	}
	if dir == "" {
		return levels.Load()
	}
	return leveldata.LoadAllLevels(os.DirFS(dir), ".")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, lvls, err := setup()
	if err != nil {
		return err
	}

	// Initialize persistence and load saved settings
	store, err := persistence.Open(appName, logger)
	if err != nil {
		logger.Warn("could not initialize persistence", "error", err)
	}
	systems.ApplySettings(store.LoadSettings(), logger)
	// Flags win over saved settings.
	if flagGod {
		config.Player.GodMode = true
	}
	if flagLocomotion != "" {
		config.Player.Locomotion, _ = config.ParseLocomotion(flagLocomotion)
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(flagTPS)

	scene := scenes.NewWorldScene(scenes.WorldOptions{
		Levels:     lvls,
		StartLevel: flagLevel,
		Seed:       flagSeed,
		TPS:        flagTPS,
		ShowFPS:    flagShowFPS,
		Debug:      flagDebug,
		Logger:     logger,
		Store:      store,
	})
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		return err
	}
	if s := scene.Session(); s != nil {
		_ = store.SaveSettings(systems.CurrentSettings(s))
	}
	return nil
}

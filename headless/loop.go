// Package headless runs a game session without a window, either paced in
// real time or as fast as the machine allows.
package headless

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// GameLoop calls tick at a fixed rate until tick reports false, the
// context ends or Stop is called. A tick rate of zero runs unpaced.
type GameLoop struct {
	tick     func() bool
	tickRate int
	logger   *log.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(tickRate int, logger *log.Logger, tick func() bool) *GameLoop {
	return &GameLoop{
		tick:     tick,
		tickRate: tickRate,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run(ctx context.Context) error {
	if g.tickRate <= 0 {
		g.logger.Debug("game loop started", "paced", false)
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-g.stopChan:
				return nil
			default:
			}
			if !g.tick() {
				return nil
			}
		}
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()
	g.logger.Debug("game loop started", "ticks_per_second", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.stopChan:
			g.logger.Debug("game loop stopped")
			return nil
		case <-ticker.C:
			if !g.tick() {
				return nil
			}
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Package tilemap answers wall queries for the simulation: circle pushes,
// line of sight and swept moves. Walls live in a resolv space so every query
// only looks at the cells it touches.
package tilemap

import (
	"math"

	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/automoto/doomerang-siege/shared/leveldata"
	"github.com/automoto/doomerang-siege/tags"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
)

// maxSightClearance caps the side-ray offset used by Visible.
const maxSightClearance = 16.0

// Map is a tile oracle backed by a resolv space.
type Map struct {
	space *resolv.Space
	probe *resolv.Object
	level *leveldata.LevelData
}

// New builds the wall space for a level.
func New(level *leveldata.LevelData) *Map {
	cellW, cellH := level.TileWidth, level.TileHeight
	if cellW <= 0 {
		cellW = 32
	}
	if cellH <= 0 {
		cellH = 32
	}

	m := &Map{
		space: resolv.NewSpace(level.MapWidth, level.MapHeight, cellW, cellH),
		level: level,
	}
	for _, r := range level.SolidRects {
		wall := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
		wall.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		m.space.Add(wall)
	}

	m.probe = resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	m.space.Add(m.probe)
	return m
}

// SpawnPositions returns the level the map was built from, which carries
// every spawn point and patrol path.
func (m *Map) SpawnPositions() *leveldata.LevelData {
	return m.level
}

// Walls returns the rectangles of every solid tile.
func (m *Map) Walls() []gamemath.Rect {
	walls := make([]gamemath.Rect, 0, len(m.level.SolidRects))
	for _, r := range m.level.SolidRects {
		walls = append(walls, gamemath.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})
	}
	return walls
}

// candidatePad widens candidate queries so a wall whose face lies exactly on
// the box edge is still returned; resolv cell ranges are half-open.
const candidatePad = 1.0

// candidates returns the walls whose cells overlap the given box or touch
// its edges.
func (m *Map) candidates(x, y, w, h float64) []*resolv.Object {
	m.probe.X, m.probe.Y = x-candidatePad, y-candidatePad
	m.probe.W, m.probe.H = math.Max(w, 1)+2*candidatePad, math.Max(h, 1)+2*candidatePad
	m.probe.Update()

	check := m.probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tags.ResolvSolid)
}

func rectOf(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// CollideWithWall tests a circle against the walls. On overlap it returns
// the outward normal of the deepest wall and the penetration depth.
func (m *Map) CollideWithWall(c gamemath.Circle) (bool, gamemath.Vec2, float64) {
	hit := false
	var bestNormal gamemath.Vec2
	bestDepth := 0.0

	for _, wall := range m.candidates(c.Center.X-c.Radius, c.Center.Y-c.Radius, 2*c.Radius, 2*c.Radius) {
		normal, depth, ok := circleVsRect(c, rectOf(wall))
		if ok && depth > bestDepth {
			hit = true
			bestNormal = normal
			bestDepth = depth
		}
	}
	return hit, bestNormal, bestDepth
}

func circleVsRect(c gamemath.Circle, r gamemath.Rect) (gamemath.Vec2, float64, bool) {
	if r.Contains(c.Center) {
		// Centre inside the tile: leave through the nearest face.
		left := c.Center.X - r.X
		right := r.X + r.W - c.Center.X
		up := c.Center.Y - r.Y
		down := r.Y + r.H - c.Center.Y
		switch math.Min(math.Min(left, right), math.Min(up, down)) {
		case left:
			return gamemath.V(-1, 0), left + c.Radius, true
		case right:
			return gamemath.V(1, 0), right + c.Radius, true
		case up:
			return gamemath.V(0, -1), up + c.Radius, true
		default:
			return gamemath.V(0, 1), down + c.Radius, true
		}
	}

	closest := r.ClosestPoint(c.Center)
	sep := c.Center.Sub(closest)
	dist := sep.Len()
	if dist >= c.Radius {
		return gamemath.Vec2{}, 0, false
	}
	return sep.Normalize(), c.Radius - dist, true
}

// Visible reports whether b can be seen from a. Three rays are cast, one
// centred and two offset sideways by the clearance radius, and all must be
// unobstructed.
func (m *Map) Visible(a, b gamemath.Vec2, radius float64) bool {
	dir := b.Sub(a).Normalize()
	norm := dir.NormalCC()
	delta := math.Min(radius, maxSightClearance)

	minX := math.Min(a.X, b.X) - delta
	minY := math.Min(a.Y, b.Y) - delta
	maxX := math.Max(a.X, b.X) + delta
	maxY := math.Max(a.Y, b.Y) + delta
	walls := m.candidates(minX, minY, maxX-minX, maxY-minY)

	for _, wall := range walls {
		r := rectOf(wall)
		for j := -1.0; j <= 1; j++ {
			off := norm.Scale(j * delta)
			if r.SegmentIntersects(a.Add(off), b.Add(off)) {
				return false
			}
		}
	}
	return true
}

// SweepCircle moves a circle by delta, x first then y, stopping its
// bounding box at the nearest wall ahead on each axis. Walls the box already
// overlaps are left to CollideWithWall. It returns the displacement actually
// applied.
func (m *Map) SweepCircle(c gamemath.Circle, delta gamemath.Vec2) gamemath.Vec2 {
	m.probe.X, m.probe.Y = c.Center.X-c.Radius, c.Center.Y-c.Radius
	m.probe.W, m.probe.H = 2*c.Radius, 2*c.Radius
	m.probe.Update()

	dx := m.sweepAxis(delta.X, 0)
	m.probe.X += dx
	m.probe.Update()

	dy := m.sweepAxis(0, delta.Y)
	return gamemath.V(dx, dy)
}

// sweepAxis clamps a move along one axis to the contact with the nearest
// wall ahead of the probe.
func (m *Map) sweepAxis(dx, dy float64) float64 {
	want := dx + dy
	if want == 0 {
		return 0
	}
	check := m.probe.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return want
	}

	p := m.probe
	for _, wall := range check.ObjectsByTags(tags.ResolvSolid) {
		var ahead bool
		if dx != 0 {
			ahead = wall.Y < p.Y+p.H && wall.Y+wall.H > p.Y &&
				((dx > 0 && wall.X >= p.X+p.W) || (dx < 0 && wall.X+wall.W <= p.X))
		} else {
			ahead = wall.X < p.X+p.W && wall.X+wall.W > p.X &&
				((dy > 0 && wall.Y >= p.Y+p.H) || (dy < 0 && wall.Y+wall.H <= p.Y))
		}
		if !ahead {
			continue
		}

		var contact vector.Vector = check.ContactWithObject(wall)
		limit := contact.X()
		if dy != 0 {
			limit = contact.Y()
		}
		if math.Abs(limit) < math.Abs(want) {
			want = limit
		}
	}
	return want
}

package objects

import (
	"io"
	"math"

	"github.com/automoto/doomerang-siege/archetypes"
	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/automoto/doomerang-siege/shared/gametime"
	"github.com/automoto/doomerang-siege/shared/leveldata"
	"github.com/automoto/doomerang-siege/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

var kindTags = [components.KindCount]*donburi.ComponentType[donburi.Tag]{
	components.KindPlayer:           tags.Player,
	components.KindPatrolTurret:     tags.PatrolTurret,
	components.KindStationaryTurret: tags.StationaryTurret,
	components.KindZombie:           tags.Zombie,
	components.KindSkeleton:         tags.Skeleton,
	components.KindBullet:           tags.Bullet,
	components.KindPickup:           tags.Pickup,
	components.KindFurniture:        tags.Furniture,
	components.KindDecoration:       tags.Decoration,
	components.KindShield:           tags.Shield,
}

// Manager owns every simulated entity. Entities are created and destroyed
// only through it, and it runs the per-frame pass:
// Move, BroadPhase, NarrowPhase, cull.
type Manager struct {
	ctx    Context
	world  donburi.World
	order  []donburi.Entity
	player donburi.Entity
}

// NewManager returns an empty manager. Missing collaborators fall back to
// silent or open-field stand-ins.
func NewManager(ctx Context) *Manager {
	if ctx.Logger == nil {
		ctx.Logger = log.New(io.Discard)
	}
	if ctx.Sprites == nil {
		ctx.Sprites = SpriteTable{}
	}
	if ctx.Audio == nil {
		ctx.Audio = silentAudio{}
	}
	if ctx.Particles == nil {
		ctx.Particles = noParticles{}
	}
	if ctx.Tiles == nil {
		ctx.Tiles = openField{}
	}
	if ctx.Random == nil {
		ctx.Random = gamemath.NewRand(1)
	}
	if ctx.Clock == nil {
		ctx.Clock = &gametime.ManualClock{Step: 1.0 / 60}
	}
	return &Manager{
		ctx:    ctx,
		world:  donburi.NewWorld(),
		player: donburi.Null,
	}
}

// World exposes the entity arena for read-only queries.
func (m *Manager) World() donburi.World {
	return m.world
}

// Len is the number of entities in the collection, dead ones included until
// the next cull.
func (m *Manager) Len() int {
	return len(m.order)
}

// Entities returns the collection in insertion order.
func (m *Manager) Entities() []donburi.Entity {
	out := make([]donburi.Entity, len(m.order))
	copy(out, m.order)
	return out
}

// Entry resolves a handle, or returns nil if it no longer exists.
func (m *Manager) Entry(id donburi.Entity) *donburi.Entry {
	if id == donburi.Null || !m.world.Valid(id) {
		return nil
	}
	return m.world.Entry(id)
}

// live resolves a handle to a living entity.
func (m *Manager) live(id donburi.Entity) (*donburi.Entry, *components.ObjectData) {
	e := m.Entry(id)
	if e == nil {
		return nil, nil
	}
	o := components.Object.Get(e)
	if !o.Alive {
		return nil, nil
	}
	return e, o
}

// Player returns the current player, if there is one.
func (m *Manager) Player() (*donburi.Entry, bool) {
	e, _ := m.live(m.player)
	return e, e != nil
}

// Count returns the number of living entities of a kind.
func (m *Manager) Count(kind components.Kind) int {
	if kind < 0 || kind >= components.KindCount {
		return 0
	}
	n := 0
	kindTags[kind].Each(m.world, func(e *donburi.Entry) {
		if components.Object.Get(e).Alive {
			n++
		}
	})
	return n
}

// HostilesLeft counts the living enemies that must die to clear a level.
func (m *Manager) HostilesLeft() int {
	return m.Count(components.KindPatrolTurret) +
		m.Count(components.KindStationaryTurret) +
		m.Count(components.KindZombie) +
		m.Count(components.KindSkeleton)
}

// Clear removes every entity.
func (m *Manager) Clear() {
	for _, id := range m.order {
		if m.world.Valid(id) {
			m.world.Remove(id)
		}
	}
	m.order = m.order[:0]
	m.player = donburi.Null
}

func (m *Manager) add(e *donburi.Entry) *donburi.Entry {
	m.order = append(m.order, e.Entity())
	return e
}

func (m *Manager) newObject(kind components.Kind, sprite config.SpriteID, pos gamemath.Vec2) components.ObjectData {
	w, h := m.ctx.Sprites.Width(sprite), m.ctx.Sprites.Height(sprite)
	return components.ObjectData{
		Kind:   kind,
		Pos:    pos,
		Radius: math.Max(w, h) / 2,
		Sprite: sprite,
		Tint:   components.NoTint,
		Alive:  true,
		Owner:  donburi.Null,
	}
}

// Create builds an entity of the given kind with default parameters and
// appends it to the collection. It is visible to the next pass.
func (m *Manager) Create(kind components.Kind, pos gamemath.Vec2) *donburi.Entry {
	switch kind {
	case components.KindPlayer:
		return m.createPlayer(pos)
	case components.KindPatrolTurret:
		return m.CreatePatrolTurret(pos, nil)
	case components.KindStationaryTurret:
		return m.createStationaryTurret(pos)
	case components.KindZombie:
		return m.CreateZombie(pos, nil)
	case components.KindSkeleton:
		return m.createSkeleton(pos)
	case components.KindBullet:
		return m.CreateBullet(config.BulletPlayer, pos, config.TeamNeutral, donburi.Null)
	case components.KindPickup:
		return m.CreatePickup(pos, 0)
	case components.KindFurniture:
		return m.CreateFurniture(pos, "")
	case components.KindDecoration:
		return m.createHealthBar(pos)
	case components.KindShield:
		if p, ok := m.Player(); ok {
			return m.createShield(p)
		}
	}
	m.ctx.Logger.Warn("cannot create entity", "kind", kind)
	return nil
}

func (m *Manager) createPlayer(pos gamemath.Vec2) *donburi.Entry {
	pc := config.Player
	e := archetypes.Player.Spawn(m.world)

	o := m.newObject(components.KindPlayer, pc.Sprites.Stand[config.DirDown], pos)
	o.Team = config.TeamPlayer
	o.Roll = facingRoll(config.DirDown)
	components.Object.SetValue(e, o)
	components.Health.SetValue(e, components.HealthData{Current: pc.Health, Max: pc.Health})
	components.Walker.SetValue(e, components.WalkerData{
		Sprites:    pc.Sprites,
		Facing:     config.DirDown,
		FrameTimer: gametime.NewEventTimer(pc.FrameInterval),
	})

	timers := make([]*gametime.EventTimer, len(config.Ranged))
	for i, w := range config.Ranged {
		timers[i] = gametime.NewEventTimer(w.Cooldown)
	}
	unlocked := pc.StartingWeapons - 1
	if unlocked >= len(config.Ranged) {
		unlocked = len(config.Ranged) - 1
	}
	if unlocked < 0 {
		unlocked = 0
	}
	components.Player.SetValue(e, components.PlayerData{
		Locomotion:     pc.Locomotion,
		GodMode:        pc.GodMode,
		ShieldAllowed:  pc.StartWithShield,
		Shield:         donburi.Null,
		UnlockedWeapon: unlocked,
		GunTimers:      timers,
	})

	m.player = e.Entity()
	return m.add(e)
}

// CreatePatrolTurret places a roaming turret. With a patrol path it starts
// on the first waypoint, which also becomes its home.
func (m *Manager) CreatePatrolTurret(pos gamemath.Vec2, patrol []gamemath.Vec2) *donburi.Entry {
	tc := config.Turret
	e := archetypes.PatrolTurret.Spawn(m.world)

	o := m.newObject(components.KindPatrolTurret, config.SpriteTurret, pos)
	o.Static = true
	o.Team = config.TeamEnemy
	components.Object.SetValue(e, o)
	components.Health.SetValue(e, components.HealthData{Current: tc.AI.Health, Max: tc.AI.Health})
	components.AI.SetValue(e, newAI(tc.AI, components.Object.Get(e), patrol))
	components.Turret.SetValue(e, components.TurretData{
		GunTimer:    gametime.NewEventTimer(tc.FireInterval),
		TrackPlayer: true,
	})
	return m.add(e)
}

func (m *Manager) createStationaryTurret(pos gamemath.Vec2) *donburi.Entry {
	sc := config.StationaryTurret
	e := archetypes.StationaryTurret.Spawn(m.world)

	o := m.newObject(components.KindStationaryTurret, config.SpriteStationaryTurret, pos)
	o.Static = true
	o.Team = config.TeamEnemy
	components.Object.SetValue(e, o)
	components.Health.SetValue(e, components.HealthData{Current: sc.Health, Max: sc.Health})
	components.Turret.SetValue(e, components.TurretData{
		GunTimer:    gametime.NewEventTimer(sc.FireInterval),
		TrackPlayer: sc.TrackPlayer,
	})
	return m.add(e)
}

// CreateZombie places a zombie, optionally on a patrol loop.
func (m *Manager) CreateZombie(pos gamemath.Vec2, patrol []gamemath.Vec2) *donburi.Entry {
	zc := config.Zombie
	e := archetypes.Zombie.Spawn(m.world)

	o := m.newObject(components.KindZombie, zc.Sprites.Stand[config.DirDown], pos)
	o.Static = true
	o.Team = config.TeamEnemy
	components.Object.SetValue(e, o)
	components.Health.SetValue(e, components.HealthData{Current: zc.AI.Health, Max: zc.AI.Health})
	components.AI.SetValue(e, newAI(zc.AI, components.Object.Get(e), patrol))
	components.Walker.SetValue(e, components.WalkerData{
		Sprites:    zc.Sprites,
		Facing:     config.DirDown,
		FrameTimer: gametime.NewEventTimer(zc.FrameInterval),
		DirTimer:   gametime.NewEventTimer(zc.DirectionCooldown),
	})
	return m.add(e)
}

func (m *Manager) createSkeleton(pos gamemath.Vec2) *donburi.Entry {
	kc := config.Skeleton
	e := archetypes.Skeleton.Spawn(m.world)

	o := m.newObject(components.KindSkeleton, kc.Sprites.Stand[config.DirDown], pos)
	o.Team = config.TeamEnemy
	components.Object.SetValue(e, o)
	components.Health.SetValue(e, components.HealthData{Current: kc.Health, Max: kc.Health})
	components.Walker.SetValue(e, components.WalkerData{
		Sprites:    kc.Sprites,
		Facing:     config.DirDown,
		FrameTimer: gametime.NewEventTimer(kc.FrameInterval),
	})
	components.Skeleton.SetValue(e, components.SkeletonData{
		AttackTimer: gametime.NewEventTimer(kc.AttackCooldown),
	})
	return m.add(e)
}

// CreateBullet places a projectile from the bullet table at rest. FireGun
// is the usual way in; this is the raw factory.
func (m *Manager) CreateBullet(kind config.BulletKind, pos gamemath.Vec2, team config.Team, owner donburi.Entity) *donburi.Entry {
	bc := config.Bullets[kind]
	e := archetypes.Bullet.Spawn(m.world)

	o := m.newObject(components.KindBullet, bc.Sprite, pos)
	o.Team = team
	o.Owner = owner
	o.MaxLifeSpan = bc.LifeSpan
	components.Object.SetValue(e, o)
	components.Bullet.SetValue(e, components.BulletData{Kind: kind, Damage: bc.Damage})
	return m.add(e)
}

// CreatePickup places a collectible. The variant doubles as its frame.
func (m *Manager) CreatePickup(pos gamemath.Vec2, variant int) *donburi.Entry {
	e := archetypes.Pickup.Spawn(m.world)

	o := m.newObject(components.KindPickup, config.SpritePickup, pos)
	o.Static = true
	if n := m.ctx.Sprites.FrameCount(config.SpritePickup); n > 0 && variant >= 0 {
		o.Frame = variant % n
	}
	components.Object.SetValue(e, o)
	components.Pickup.SetValue(e, components.PickupData{Variant: variant})
	return m.add(e)
}

// HealthBarType is the furniture code that places the player's health bar.
const HealthBarType = "H"

// CreateFurniture places scenery. The type letter picks the frame; type H
// is the player's health bar instead.
func (m *Manager) CreateFurniture(pos gamemath.Vec2, typ string) *donburi.Entry {
	if typ == HealthBarType {
		return m.createHealthBar(pos)
	}
	e := archetypes.Furniture.Spawn(m.world)

	o := m.newObject(components.KindFurniture, config.SpriteFurniture, pos)
	o.Static = true
	if n := m.ctx.Sprites.FrameCount(config.SpriteFurniture); n > 0 && typ != "" {
		o.Frame = int(typ[0]) % n
	}
	components.Object.SetValue(e, o)
	return m.add(e)
}

func (m *Manager) createHealthBar(pos gamemath.Vec2) *donburi.Entry {
	e := archetypes.HealthBar.Spawn(m.world)

	o := m.newObject(components.KindDecoration, config.SpriteHealthBar, pos)
	components.Object.SetValue(e, o)
	components.HealthBar.SetValue(e, components.HealthBarData{Target: m.player})
	return m.add(e)
}

func (m *Manager) createShield(owner *donburi.Entry) *donburi.Entry {
	e := archetypes.Shield.Spawn(m.world)

	oo := components.Object.Get(owner)
	o := m.newObject(components.KindShield, config.Shield.Sprite, oo.Pos)
	o.Static = true
	o.Team = oo.Team
	o.Owner = owner.Entity()
	components.Object.SetValue(e, o)
	return m.add(e)
}

// Populate spawns everything the tile oracle reports for the level.
func (m *Manager) Populate() error {
	level := m.ctx.Tiles.SpawnPositions()
	if level == nil {
		return leveldata.ErrNoPlayerSpawn
	}
	path := func(name string) []gamemath.Vec2 {
		if name == "" {
			return nil
		}
		p, ok := level.PatrolPaths[name]
		if !ok {
			m.ctx.Logger.Warn("unknown patrol path", "level", level.Name, "path", name)
			return nil
		}
		pts := make([]gamemath.Vec2, len(p.Points))
		for i, v := range p.Points {
			pts[i] = gamemath.V(v.X, v.Y)
		}
		return pts
	}
	at := func(s leveldata.Spawn) gamemath.Vec2 { return gamemath.V(s.X, s.Y) }

	for _, f := range level.Furniture {
		if f.Type != HealthBarType {
			m.CreateFurniture(at(f.Spawn), f.Type)
		}
	}
	for _, s := range level.Pickups {
		m.CreatePickup(at(s.Spawn), s.Variant)
	}
	for _, s := range level.StationaryTurrets {
		e := m.createStationaryTurret(at(s.Spawn))
		components.Object.Get(e).Roll = gamemath.NormalizeAngle(s.Roll)
	}
	for _, s := range level.Turrets {
		m.CreatePatrolTurret(at(s.Spawn), path(s.PatrolPath))
	}
	for _, s := range level.Zombies {
		m.CreateZombie(at(s.Spawn), path(s.PatrolPath))
	}
	for _, s := range level.Skeletons {
		m.createSkeleton(at(s.Spawn))
	}

	m.createPlayer(at(level.PlayerSpawn))
	for _, f := range level.Furniture {
		if f.Type == HealthBarType {
			m.createHealthBar(at(f.Spawn))
		}
	}
	m.ctx.Logger.Debug("level populated", "level", level.Name, "entities", len(m.order), "hostiles", m.HostilesLeft())
	return nil
}

// Update runs one simulation pass. Entities created during the pass are
// neither moved nor collided until the next one.
func (m *Manager) Update(dt float64) {
	n := len(m.order)
	for i := 0; i < n; i++ {
		e, o := m.live(m.order[i])
		if e == nil {
			continue
		}
		behaviorOf(o.Kind).Move(m, e, dt)
	}
	ids := m.order[:n]
	m.broadPhase(ids)
	m.collideAll(ids)
	m.cull()
}

// BroadPhase resolves every living entity against the walls.
func (m *Manager) BroadPhase() {
	m.broadPhase(m.order)
}

func (m *Manager) broadPhase(ids []donburi.Entity) {
	iterations := config.Game.WallIterations
	for _, id := range ids {
		e, o := m.live(id)
		if e == nil || !collidable(o.Kind) {
			continue
		}
		b := behaviorOf(o.Kind)
		for i := 0; i < iterations && o.Alive; i++ {
			hit, normal, d := m.ctx.Tiles.CollideWithWall(o.Circle())
			if !hit {
				break
			}
			b.OnCollision(m, e, normal, d, nil)
		}
	}
}

func (m *Manager) collideAll(ids []donburi.Entity) {
	live := make([]*donburi.Entry, 0, len(ids))
	for _, id := range ids {
		if e, o := m.live(id); e != nil && collidable(o.Kind) {
			live = append(live, e)
		}
	}
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			m.NarrowPhase(live[i], live[j])
		}
	}
}

// NarrowPhase tests one pair and, if their circles overlap, notifies a and
// then b with opposite normals and the same overlap.
func (m *Manager) NarrowPhase(a, b *donburi.Entry) {
	oa, ob := components.Object.Get(a), components.Object.Get(b)
	if !pairCollides(a, oa, b, ob) {
		return
	}
	sep := oa.Pos.Sub(ob.Pos)
	d := oa.Radius + ob.Radius - sep.Len()
	if d <= 0 {
		return
	}
	normal := sep.Normalize()
	behaviorOf(oa.Kind).OnCollision(m, a, normal, d, b)
	behaviorOf(ob.Kind).OnCollision(m, b, normal.Neg(), d, a)
}

func collidable(k components.Kind) bool {
	switch k {
	case components.KindFurniture, components.KindDecoration, components.KindShield:
		return false
	}
	return true
}

func pairCollides(a *donburi.Entry, oa *components.ObjectData, b *donburi.Entry, ob *components.ObjectData) bool {
	if !oa.Alive || !ob.Alive || !collidable(oa.Kind) || !collidable(ob.Kind) {
		return false
	}
	aBullet, bBullet := oa.Kind == components.KindBullet, ob.Kind == components.KindBullet
	switch {
	case aBullet && bBullet:
		return false
	case aBullet:
		return bulletCanHit(oa, b, ob)
	case bBullet:
		return bulletCanHit(ob, a, oa)
	}
	return true
}

func bulletCanHit(bullet *components.ObjectData, target *donburi.Entry, to *components.ObjectData) bool {
	return bullet.Owner != target.Entity() && to.Kind != components.KindPickup
}

// cull removes dead entities in one sweep.
func (m *Manager) cull() {
	kept := m.order[:0]
	for _, id := range m.order {
		e := m.Entry(id)
		if e == nil {
			continue
		}
		if components.Object.Get(e).Alive {
			kept = append(kept, id)
			continue
		}
		if id == m.player {
			m.player = donburi.Null
		}
		m.world.Remove(id)
	}
	m.order = kept
}

// Kill marks an entity dead and runs its death effect. Repeated calls are
// no-ops.
func (m *Manager) Kill(e *donburi.Entry) {
	o := components.Object.Get(e)
	if !o.Alive {
		return
	}
	o.Alive = false
	if e.Entity() == m.player {
		m.player = donburi.Null
	}
	behaviorOf(o.Kind).OnDeath(m, e)
	if o.Kind != components.KindBullet {
		m.ctx.Logger.Debug("entity died", "kind", o.Kind, "x", o.Pos.X, "y", o.Pos.Y)
	}
}

// TakeDamage lowers health by n, clamping at zero. Reaching zero kills the
// entity exactly once. It reports whether this call was the killing blow.
func (m *Manager) TakeDamage(e *donburi.Entry, n int) bool {
	o := components.Object.Get(e)
	if !o.Alive || n <= 0 || !e.HasComponent(components.Health) {
		return false
	}
	h := components.Health.Get(e)
	if n >= h.Current {
		h.Current = 0
	} else {
		h.Current -= n
	}
	if h.Current == 0 {
		m.ctx.Audio.Play(config.SoundBoom)
		m.Kill(e)
		return true
	}
	if o.Kind == components.KindPlayer {
		m.ctx.Audio.Play(config.SoundGrunt)
	} else {
		m.ctx.Audio.Play(config.SoundClang)
	}
	o.Tint = healthTint(h)
	return false
}

func healthTint(h *components.HealthData) components.Tint {
	f := float32(0.5 + 0.5*h.Fraction())
	return components.Tint{R: 1, G: f, B: f}
}

// Draw hands a snapshot of every living entity to the canvas.
func (m *Manager) Draw(c Canvas) {
	for _, id := range m.order {
		e, o := m.live(id)
		if e == nil || o.Sprite == config.SpriteNone {
			continue
		}
		c.Draw(Sprite{ID: o.Sprite, Frame: o.Frame, Pos: o.Pos, Roll: o.Roll, Tint: o.Tint})
	}
}

type silentAudio struct{}

func (silentAudio) Play(config.SoundID) {}
func (silentAudio) Stop(config.SoundID) {}

type noParticles struct{}

func (noParticles) Create(ParticleDesc) {}

type openField struct{}

func (openField) CollideWithWall(gamemath.Circle) (bool, gamemath.Vec2, float64) {
	return false, gamemath.Vec2{}, 0
}

func (openField) SweepCircle(_ gamemath.Circle, delta gamemath.Vec2) gamemath.Vec2 {
	return delta
}

func (openField) Visible(a, b gamemath.Vec2, radius float64) bool {
	return true
}

func (openField) SpawnPositions() *leveldata.LevelData {
	return nil
}

package objects

import (
	"math"
	"testing"

	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/automoto/doomerang-siege/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestCreateDerivesRadiusAndTracksPlayer(t *testing.T) {
	f := newFixture(t)

	_, ok := f.m.Player()
	assert.False(t, ok)

	p := f.m.Create(components.KindPlayer, gamemath.V(10, 20))
	require.NotNil(t, p)
	assert.Equal(t, 10.0, obj(p).Radius)
	assert.Equal(t, gamemath.V(10, 20), obj(p).Pos)

	got, ok := f.m.Player()
	require.True(t, ok)
	assert.Equal(t, p.Entity(), got.Entity())

	for k := components.KindPlayer; k < components.KindCount; k++ {
		e := f.m.Create(k, gamemath.V(100, 100))
		require.NotNil(t, e, k.String())
		assert.Equal(t, k, obj(e).Kind)
		assert.True(t, obj(e).Alive)
	}
	assert.Equal(t, int(components.KindCount)+1, f.m.Len())
}

func TestTakeDamageIsMonotonicAndKillsOnce(t *testing.T) {
	tests := []struct {
		name    string
		hits    []int
		want    []int
		killed  []bool
		survive bool
	}{
		{"chip damage", []int{1, 2, 3}, []int{7, 5, 2}, []bool{false, false, false}, true},
		{"exact lethal", []int{8}, []int{0}, []bool{true}, false},
		{"overkill clamps", []int{5, 100}, []int{3, 0}, []bool{false, true}, false},
		{"damage after death ignored", []int{8, 1, 8}, []int{0, 0, 0}, []bool{true, false, false}, false},
		{"zero and negative ignored", []int{0, -3}, []int{8, 8}, []bool{false, false}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			z := f.m.Create(components.KindZombie, gamemath.V(0, 0))

			prev := health(z)
			for i, n := range tt.hits {
				killed := f.m.TakeDamage(z, n)
				assert.Equal(t, tt.killed[i], killed, "hit %d", i)
				assert.Equal(t, tt.want[i], health(z), "hit %d", i)
				assert.LessOrEqual(t, health(z), prev)
				assert.GreaterOrEqual(t, health(z), 0)
				prev = health(z)
			}
			assert.Equal(t, tt.survive, obj(z).Alive)

			deaths := f.particles.count(config.Effects.DeathSmoke)
			if tt.survive {
				assert.Zero(t, deaths)
			} else {
				assert.Equal(t, 1, deaths)
				assert.Equal(t, 1, f.audio.count(config.SoundBoom))
			}
		})
	}
}

func TestTakeDamageTintsByHealth(t *testing.T) {
	f := newFixture(t)
	z := f.m.Create(components.KindZombie, gamemath.V(0, 0))

	f.m.TakeDamage(z, 4)
	assert.Equal(t, components.Tint{R: 1, G: 0.75, B: 0.75}, obj(z).Tint)
	assert.Equal(t, 1, f.audio.count(config.SoundClang))
}

func TestNarrowPhaseSplitsPushBetweenMovers(t *testing.T) {
	f := newFixture(t)
	p := f.m.Create(components.KindPlayer, gamemath.V(0, 0))
	s := f.m.Create(components.KindSkeleton, gamemath.V(15, 0))

	f.m.NarrowPhase(p, s)

	dp := obj(p).Pos.Dist(gamemath.V(0, 0))
	ds := obj(s).Pos.Dist(gamemath.V(15, 0))
	assert.InDelta(t, 2.5, dp, 1e-9)
	assert.InDelta(t, 2.5, ds, 1e-9)
	assert.InDelta(t, 5, dp+ds, 1e-9)
	assert.InDelta(t, 20, obj(p).Pos.Dist(obj(s).Pos), 1e-9)
}

func TestNarrowPhaseStaticPartnerTakesNoPush(t *testing.T) {
	f := newFixture(t)
	p := f.m.Create(components.KindPlayer, gamemath.V(0, 0))
	tur := f.m.Create(components.KindPatrolTurret, gamemath.V(0, 15))

	f.m.NarrowPhase(tur, p)

	assert.Equal(t, gamemath.V(0, 15), obj(tur).Pos)
	assert.InDelta(t, -5, obj(p).Pos.Y, 1e-9)
	assert.InDelta(t, 0, obj(p).Pos.X, 1e-9)
}

func TestNarrowPhaseZombieCappedPush(t *testing.T) {
	f := newFixture(t)
	p := f.m.Create(components.KindPlayer, gamemath.V(0, 0))
	z := f.m.Create(components.KindZombie, gamemath.V(16, 0))

	f.m.NarrowPhase(p, z)

	assert.InDelta(t, -4, obj(p).Pos.X, 1e-9)
	assert.InDelta(t, 16+(4+config.Zombie.PushEpsilon)/2, obj(z).Pos.X, 1e-9)
}

func TestNarrowPhaseIgnoresFurnitureAndDecoration(t *testing.T) {
	for _, kind := range []components.Kind{components.KindFurniture, components.KindDecoration} {
		t.Run(kind.String(), func(t *testing.T) {
			f := newFixture(t)
			p := f.m.Create(components.KindPlayer, gamemath.V(0, 0))
			furn := f.m.Create(kind, gamemath.V(5, 0))
			b := f.m.CreateBullet(config.BulletEnemy, gamemath.V(3, 0), config.TeamEnemy, donburi.Null)
			obj(b).Vel = gamemath.V(-100, 0)

			f.m.NarrowPhase(p, furn)
			f.m.NarrowPhase(furn, p)
			f.m.NarrowPhase(b, furn)

			assert.Equal(t, gamemath.V(0, 0), obj(p).Pos)
			assert.Equal(t, gamemath.V(5, 0), obj(furn).Pos)
			assert.Equal(t, 12, health(p))
			assert.True(t, obj(b).Alive)
			assert.True(t, obj(furn).Alive)
		})
	}
}

func TestBulletLifeSpan(t *testing.T) {
	f := newFixture(t)
	b := f.m.CreateBullet(config.BulletPlayer, gamemath.V(0, 0), config.TeamPlayer, donburi.Null)
	obj(b).Vel = gamemath.V(10, 0)
	id := b.Entity()
	life := config.Bullets[config.BulletPlayer].LifeSpan
	require.Equal(t, 2.0, life)

	const dt = 0.25
	for i := 1; i < int(life/dt); i++ {
		f.step(dt)
		e := f.m.Entry(id)
		require.NotNil(t, e, "update %d", i)
		assert.True(t, obj(e).Alive, "update %d", i)
	}
	f.step(dt)
	assert.Nil(t, f.m.Entry(id))
	assert.Zero(t, f.m.Len())
}

func TestBulletWithoutLifeSpanLivesOn(t *testing.T) {
	f := newFixture(t)
	b := f.m.CreateBullet(config.BulletEnemy, gamemath.V(0, 0), config.TeamEnemy, donburi.Null)
	obj(b).Vel = gamemath.V(1, 0)
	for i := 0; i < 600; i++ {
		f.step(0.1)
	}
	assert.True(t, obj(b).Alive)
	assert.InDelta(t, 60, obj(b).Pos.X, 1e-6)
}

func TestEnemyBulletRicochetsOffWalls(t *testing.T) {
	f := newFixture(t)
	f.tiles.wall, f.tiles.wallX = true, 100
	b := f.m.CreateBullet(config.BulletEnemy, gamemath.V(90, 0), config.TeamEnemy, donburi.Null)
	obj(b).Vel = gamemath.V(500, 0)

	f.step(1.0 / 60)

	assert.Zero(t, f.m.Len())
	assert.Equal(t, 1, f.audio.count(config.SoundRicochet))
	assert.Equal(t, 1, f.particles.count(config.Bullets[config.BulletEnemy].Death))
}

func TestBroadPhasePushesMoversOutOfWalls(t *testing.T) {
	f := newFixture(t)
	f.tiles.wall, f.tiles.wallX = true, 100
	p := f.m.Create(components.KindPlayer, gamemath.V(95, 0))
	tur := f.m.Create(components.KindStationaryTurret, gamemath.V(95, 50))

	f.m.BroadPhase()

	assert.InDelta(t, 90, obj(p).Pos.X, 1e-9)
	assert.Equal(t, 95.0, obj(tur).Pos.X)
}

func TestTurretBulletSequence(t *testing.T) {
	f := newFixture(t)
	shooter := f.m.Create(components.KindPlayer, gamemath.V(-500, 0))
	tur := f.m.Create(components.KindPatrolTurret, gamemath.V(0, 0))
	require.Equal(t, 8, health(tur))

	hit := func(kind config.BulletKind) {
		b := f.m.CreateBullet(kind, gamemath.V(-12, 0), config.TeamPlayer, shooter.Entity())
		f.m.NarrowPhase(tur, b)
		assert.False(t, obj(b).Alive, "bullet is consumed")
	}

	hit(config.BulletFireball)
	assert.Equal(t, 3, health(tur))
	hit(config.BulletPlayer)
	assert.Equal(t, 2, health(tur))
	assert.True(t, obj(tur).Alive)

	hit(config.BulletPlayer)
	assert.Equal(t, 1, health(tur))
	assert.True(t, obj(tur).Alive)
	hit(config.BulletPlayer)
	assert.Equal(t, 0, health(tur))
	assert.False(t, obj(tur).Alive)

	late := f.m.CreateBullet(config.BulletPlayer, gamemath.V(-12, 0), config.TeamPlayer, shooter.Entity())
	f.m.NarrowPhase(tur, late)
	assert.True(t, obj(late).Alive, "dead turrets do not collide")

	assert.Equal(t, 1, f.particles.count(config.Effects.DeathSmoke))
	assert.Equal(t, 1, f.particles.count(config.Effects.DeathSpark))
	assert.Equal(t, 1, f.audio.count(config.SoundBoom))
	assert.Equal(t, 3, f.audio.count(config.SoundClang))
}

func TestStationaryTurretLosesOnePerBullet(t *testing.T) {
	f := newFixture(t)
	tur := f.m.Create(components.KindStationaryTurret, gamemath.V(0, 0))
	b := f.m.CreateBullet(config.BulletFireball, gamemath.V(12, 0), config.TeamPlayer, donburi.Null)

	f.m.NarrowPhase(b, tur)

	assert.Equal(t, config.StationaryTurret.Health-1, health(tur))
	assert.False(t, obj(b).Alive)
}

func TestFriendlyBulletsDoNoDamage(t *testing.T) {
	f := newFixture(t)
	gun := f.m.Create(components.KindStationaryTurret, gamemath.V(-300, 0))
	z := f.m.Create(components.KindZombie, gamemath.V(0, 0))
	b := f.m.CreateBullet(config.BulletEnemy, gamemath.V(12, 0), config.TeamEnemy, gun.Entity())

	f.m.NarrowPhase(z, b)

	assert.Equal(t, 8, health(z))
	assert.False(t, obj(b).Alive)
}

func TestBulletsSkipOwnerAndEachOther(t *testing.T) {
	f := newFixture(t)
	tur := f.m.Create(components.KindStationaryTurret, gamemath.V(0, 0))
	own := f.m.CreateBullet(config.BulletEnemy, gamemath.V(5, 0), config.TeamEnemy, tur.Entity())
	other := f.m.CreateBullet(config.BulletPlayer, gamemath.V(6, 0), config.TeamPlayer, donburi.Null)

	f.m.NarrowPhase(tur, own)
	f.m.NarrowPhase(own, other)

	assert.True(t, obj(own).Alive)
	assert.True(t, obj(other).Alive)
	assert.Equal(t, config.StationaryTurret.Health, health(tur))
}

func TestFireGunDeflectionBound(t *testing.T) {
	f := newFixture(t)
	f.m.ctx.Random = gamemath.NewRand(12345)
	p := f.m.Create(components.KindPlayer, gamemath.V(0, 0))

	speed := config.Bullets[config.BulletPlayer].Speed
	var lo, hi float64
	for i := 0; i < 1000; i++ {
		b := f.m.FireGun(p, config.BulletPlayer, gamemath.V(1, 0))
		require.NotNil(t, b)
		v := obj(b).Vel
		assert.InDelta(t, speed, v.X, 1e-9)
		assert.LessOrEqual(t, math.Abs(v.Y), Deflection*speed)
		lo, hi = math.Min(lo, v.Y), math.Max(hi, v.Y)
	}
	assert.Less(t, lo, 0.0, "deflects both ways")
	assert.Greater(t, hi, 0.0, "deflects both ways")
}

func TestFireGunUsesTable(t *testing.T) {
	tests := []struct {
		name   string
		kind   config.BulletKind
		launch float64
		sound  config.SoundID
		stop   bool
	}{
		{"bullet derives offset from sprites", config.BulletPlayer, 0.1*20 + 20, config.SoundGun, false},
		{"sword", config.BulletSword, 30, config.SoundClang, true},
		{"greatsword", config.BulletGreatsword, 40, config.SoundBoom, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.m.ctx.Random = &scriptedRandom{values: []float64{1}}
			p := f.m.Create(components.KindPlayer, gamemath.V(0, 0))
			obj(p).Vel = gamemath.V(0, 10)

			b := f.m.FireGun(p, tt.kind, gamemath.V(0, -3))
			require.NotNil(t, b)
			bc := config.Bullets[tt.kind]
			bo := obj(b)

			assert.InDelta(t, -tt.launch, bo.Pos.Y, 1e-9)
			assert.Equal(t, bc.LifeSpan, bo.MaxLifeSpan)
			assert.Equal(t, config.TeamPlayer, bo.Team)
			assert.Equal(t, p.Entity(), bo.Owner)
			assert.Equal(t, obj(p).Roll, bo.Roll)
			assert.InDelta(t, 10-bc.Speed, bo.Vel.Y, 1e-9)
			assert.InDelta(t, Deflection*bc.Speed, bo.Vel.X, 1e-9)
			assert.Equal(t, bc.Damage, components.Bullet.Get(b).Damage)
			assert.Equal(t, 1, f.audio.count(tt.sound))
			assert.Equal(t, tt.stop, len(f.audio.stopped) == 1)
		})
	}
}

func TestFireSpreadFansAroundDirection(t *testing.T) {
	f := newFixture(t)
	f.m.ctx.Random = &scriptedRandom{values: []float64{0.5}}
	p := f.m.Create(components.KindPlayer, gamemath.V(0, 0))

	bs := f.m.FireSpread(p, config.BulletDagger, gamemath.V(1, 0), 3, 0.262)
	require.Len(t, bs, 3)

	want := []float64{-0.262, 0, 0.262}
	for i, b := range bs {
		assert.InDelta(t, want[i], obj(b).Vel.Angle(), 1e-9)
	}
}

func TestNextModeHysteresis(t *testing.T) {
	tuning := config.AIConfig{FollowRadius: 200, ReturnRadius: 500}
	tests := []struct {
		name      string
		mode      components.AIMode
		dist      float64
		hasPatrol bool
		want      components.AIMode
	}{
		{"patrol keeps patrolling outside follow", components.AIPatrolling, 200, true, components.AIPatrolling},
		{"patrol starts chase inside follow", components.AIPatrolling, 199.9, true, components.AIChasing},
		{"return starts chase inside follow", components.AIReturning, 10, false, components.AIChasing},
		{"band keeps patrol", components.AIPatrolling, 350, true, components.AIPatrolling},
		{"band keeps chase", components.AIChasing, 350, true, components.AIChasing},
		{"chase holds at return radius", components.AIChasing, 500, true, components.AIChasing},
		{"chase ends to patrol", components.AIChasing, 500.1, true, components.AIPatrolling},
		{"chase ends to return", components.AIChasing, 800, false, components.AIReturning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextMode(tt.mode, tt.dist, tuning, tt.hasPatrol))
		})
	}
}

func TestZombieHysteresisAgainstPlayer(t *testing.T) {
	f := newFixture(t)
	z := f.m.Create(components.KindZombie, gamemath.V(0, 0))
	p := f.m.Create(components.KindPlayer, gamemath.V(600, 0))
	ai := components.AI.Get(z)

	steps := []struct {
		x    float64
		want components.AIMode
	}{
		{600, components.AIReturning},
		{300, components.AIReturning},
		{150, components.AIChasing},
		{300, components.AIChasing},
		{499, components.AIChasing},
		{300, components.AIChasing},
		{650, components.AIReturning},
		{250, components.AIReturning},
	}
	for i, s := range steps {
		obj(p).Pos = gamemath.V(obj(z).Pos.X+s.x, 0)
		f.m.Update(0)
		assert.Equal(t, s.want, ai.Mode, "step %d at %v", i, s.x)
	}
}

func TestPatrolTurretWalksWaypoints(t *testing.T) {
	f := newFixture(t)
	route := []gamemath.Vec2{gamemath.V(0, 0), gamemath.V(100, 0)}
	tur := f.m.CreatePatrolTurret(gamemath.V(50, 50), route)
	ai := components.AI.Get(tur)

	assert.Equal(t, gamemath.V(0, 0), obj(tur).Pos, "starts on the first waypoint")
	assert.Equal(t, components.AIPatrolling, ai.Mode)

	f.step(0.1)
	assert.Equal(t, 1, ai.PatrolIndex)
	assert.InDelta(t, config.Turret.AI.PatrolSpeed*0.1, obj(tur).Pos.X, 1e-9)
}

func TestPatrolTurretStopsAtWalls(t *testing.T) {
	f := newFixture(t)
	f.tiles.wall, f.tiles.wallX = true, 100
	route := []gamemath.Vec2{gamemath.V(80, 0), gamemath.V(300, 0)}
	tur := f.m.CreatePatrolTurret(gamemath.V(80, 0), route)

	for i := 0; i < 30; i++ {
		f.step(0.1)
	}
	assert.InDelta(t, 90, obj(tur).Pos.X, 1e-9, "rests against the wall face")
}

func TestZombiePushStopsAtWalls(t *testing.T) {
	f := newFixture(t)
	f.tiles.wall, f.tiles.wallX = true, 100
	z := f.m.Create(components.KindZombie, gamemath.V(89, 0))
	other := f.m.Create(components.KindZombie, gamemath.V(80, 0))

	f.m.NarrowPhase(z, other)
	assert.InDelta(t, 90, obj(z).Pos.X, 1e-9)
}

func TestTurretTracksVisiblePlayer(t *testing.T) {
	f := newFixture(t)
	tur := f.m.Create(components.KindStationaryTurret, gamemath.V(0, 0))
	f.m.Create(components.KindPlayer, gamemath.V(0, 300))

	f.step(0.1)
	assert.Greater(t, obj(tur).Roll, 0.0, "turns towards the player below")

	f.tiles.hidden = true
	before := obj(tur).Roll
	f.step(0.1)
	assert.Equal(t, before, obj(tur).Roll)
}

func TestStationaryTurretFiresOnTimer(t *testing.T) {
	f := newFixture(t)
	f.m.Create(components.KindStationaryTurret, gamemath.V(0, 0))

	for i := 0; i < 5; i++ {
		f.step(0.5)
	}
	assert.Equal(t, 2, f.m.Count(components.KindBullet))
}

func TestSpawnedBulletCollidesFromNextPass(t *testing.T) {
	f := newFixture(t)
	f.tiles.wall, f.tiles.wallX = true, -1000
	f.m.Create(components.KindStationaryTurret, gamemath.V(0, 0))

	f.step(1.0)
	require.Zero(t, f.m.Count(components.KindBullet))
	f.step(1.0)
	require.Equal(t, 1, f.m.Count(components.KindBullet), "fired during the pass")
	assert.Zero(t, f.audio.count(config.SoundRicochet))

	f.step(1.0 / 60)
	assert.Zero(t, f.m.Count(components.KindBullet))
	assert.Equal(t, 1, f.audio.count(config.SoundRicochet))
}

func TestPopulateFromSpawns(t *testing.T) {
	f := newFixture(t)
	f.tiles.level = &leveldata.LevelData{
		Name:              "arena",
		PlayerSpawn:       leveldata.Spawn{X: 10, Y: 10},
		Turrets:           []leveldata.EnemySpawn{{Spawn: leveldata.Spawn{X: 100, Y: 100}, PatrolPath: "loop"}},
		StationaryTurrets: []leveldata.EnemySpawn{{Spawn: leveldata.Spawn{X: 200, Y: 100, Roll: math.Pi / 2}}},
		Zombies:           []leveldata.EnemySpawn{{Spawn: leveldata.Spawn{X: 300, Y: 100}, PatrolPath: "missing"}},
		Skeletons:         []leveldata.EnemySpawn{{Spawn: leveldata.Spawn{X: 400, Y: 100}}},
		Furniture: []leveldata.FurnitureSpawn{
			{Spawn: leveldata.Spawn{X: 50, Y: 50}, Type: "B"},
			{Spawn: leveldata.Spawn{X: 0, Y: 0}, Type: HealthBarType},
		},
		Pickups: []leveldata.PickupSpawn{{Spawn: leveldata.Spawn{X: 60, Y: 60}, Variant: 2}},
		PatrolPaths: map[string]leveldata.PatrolPath{
			"loop": {Name: "loop", Points: []dmath.Vec2{{X: 120, Y: 100}, {X: 160, Y: 100}}},
		},
	}

	require.NoError(t, f.m.Populate())

	_, ok := f.m.Player()
	assert.True(t, ok)
	assert.Equal(t, 4, f.m.HostilesLeft())
	assert.Equal(t, 1, f.m.Count(components.KindFurniture))
	assert.Equal(t, 1, f.m.Count(components.KindDecoration))
	assert.Equal(t, 1, f.m.Count(components.KindPickup))
	assert.Equal(t, 8, f.m.Len())
}

func TestPopulateWithoutLevel(t *testing.T) {
	f := newFixture(t)
	err := f.m.Populate()
	assert.ErrorIs(t, err, leveldata.ErrNoPlayerSpawn)
}

func TestCullClearsDeadPlayer(t *testing.T) {
	f := newFixture(t)
	p := f.m.Create(components.KindPlayer, gamemath.V(0, 0))
	f.m.Create(components.KindFurniture, gamemath.V(100, 0))

	f.m.TakeDamage(p, 100)
	_, ok := f.m.Player()
	assert.False(t, ok)
	assert.Equal(t, 2, f.m.Len(), "dead entities stay until the cull")

	f.step(1.0 / 60)
	assert.Equal(t, 1, f.m.Len())
	assert.Nil(t, f.m.Entry(p.Entity()))
}

func TestHealthBarFrame(t *testing.T) {
	tests := []struct {
		cur, max int
		want     int
	}{
		{12, 12, 20},
		{6, 12, 10},
		{1, 12, 1},
		{0, 12, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		h := &components.HealthData{Current: tt.cur, Max: tt.max}
		assert.Equal(t, tt.want, healthFrame(h, 21), "%d/%d", tt.cur, tt.max)
	}
}

func TestHealthBarFollowsPlayer(t *testing.T) {
	f := newFixture(t)
	p := f.m.Create(components.KindPlayer, gamemath.V(100, 100))
	bar := f.m.Create(components.KindDecoration, gamemath.V(0, 0))

	f.m.TakeDamage(p, 6)
	f.step(1.0 / 60)

	assert.Equal(t, gamemath.V(100, 100-10-config.HealthBar.OffsetY), obj(bar).Pos)
	assert.Equal(t, 10, obj(bar).Frame)
}

func TestHealthBarKeepsTargetUntilItDies(t *testing.T) {
	f := newFixture(t)
	first := f.m.Create(components.KindPlayer, gamemath.V(100, 100))
	bar := f.m.Create(components.KindDecoration, gamemath.V(0, 0))
	f.m.Create(components.KindPlayer, gamemath.V(400, 300))

	f.step(1.0 / 60)
	assert.Equal(t, first.Entity(), components.HealthBar.Get(bar).Target)
	assert.Equal(t, 100.0, obj(bar).Pos.X)

	f.m.TakeDamage(first, 100)
	f.step(1.0 / 60)
	assert.Equal(t, 400.0, obj(bar).Pos.X)
	assert.Equal(t, 20, obj(bar).Frame)
}

func TestCountQueriesLivingKind(t *testing.T) {
	f := newFixture(t)
	f.m.Create(components.KindPlayer, gamemath.V(0, 0))
	z1 := f.m.Create(components.KindZombie, gamemath.V(200, 0))
	f.m.Create(components.KindZombie, gamemath.V(300, 0))
	f.m.Create(components.KindStationaryTurret, gamemath.V(0, 300))
	f.m.Create(components.KindFurniture, gamemath.V(300, 300))

	assert.Equal(t, 2, f.m.Count(components.KindZombie))
	assert.Equal(t, 1, f.m.Count(components.KindPlayer))
	assert.Zero(t, f.m.Count(components.KindSkeleton))
	assert.Zero(t, f.m.Count(components.KindCount))
	assert.Equal(t, 3, f.m.HostilesLeft())

	f.m.Kill(z1)
	assert.Equal(t, 5, f.m.Len(), "dead entities stay until the cull")
	assert.Equal(t, 1, f.m.Count(components.KindZombie))
	assert.Equal(t, 2, f.m.HostilesLeft())
}

type recordingCanvas struct {
	sprites []Sprite
}

func (c *recordingCanvas) Draw(s Sprite) { c.sprites = append(c.sprites, s) }
func (c *recordingCanvas) DrawScreenText(string, float64, float64) {}

func TestDrawSkipsDead(t *testing.T) {
	f := newFixture(t)
	f.m.Create(components.KindPlayer, gamemath.V(0, 0))
	z := f.m.Create(components.KindZombie, gamemath.V(100, 0))
	f.m.Kill(z)

	var c recordingCanvas
	f.m.Draw(&c)
	require.Len(t, c.sprites, 1)
	assert.Equal(t, config.PlayerSprites.Stand[config.DirDown], c.sprites[0].ID)
}

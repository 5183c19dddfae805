package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="9" nextobjectid="20">
 <tileset firstgid="1" name="walls" tilewidth="32" tileheight="32" tilecount="1" columns="1">
  <image source="walls.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="walls" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,0,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="48" y="48">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Turrets">
  <object id="2" x="64" y="40" width="16" height="16">
   <properties>
    <property name="pathName" value="loop"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="StationaryTurrets">
  <object id="3" x="80" y="48">
   <properties>
    <property name="roll" type="float" value="90"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Zombies">
  <object id="4" x="70" y="50"><point/></object>
  <object id="5" x="72" y="52"><point/></object>
 </objectgroup>
 <objectgroup id="6" name="Furniture">
  <object id="6" x="40" y="40">
   <properties>
    <property name="type" value="H"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="7" name="Pickups">
  <object id="7" x="56" y="56">
   <properties>
    <property name="variant" type="int" value="1"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="8" name="PatrolPaths">
  <object id="8" name="loop" x="40" y="40">
   <polyline points="0,0 20,0 20,20"/>
  </object>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="32" tileheight="32" infinite="0">
 <layer id="1" name="walls" width="1" height="1">
  <data encoding="csv">
0
</data>
 </layer>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/arena.tmx": {Data: []byte(arenaTMX)},
	}

	level, err := LoadLevel(fsys, "levels/arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, "arena", level.Name)
	assert.Equal(t, 128, level.MapWidth)
	assert.Equal(t, 96, level.MapHeight)
	assert.Len(t, level.SolidRects, 10)
	assert.Contains(t, level.SolidRects, SolidRect{X: 96, Y: 32, W: 32, H: 32})
	assert.NotContains(t, level.SolidRects, SolidRect{X: 32, Y: 32, W: 32, H: 32})

	assert.Equal(t, Spawn{X: 48, Y: 48}, level.PlayerSpawn)

	require.Len(t, level.Turrets, 1)
	assert.Equal(t, 72.0, level.Turrets[0].X, "rectangle objects spawn at their centre")
	assert.Equal(t, "loop", level.Turrets[0].PatrolPath)

	require.Len(t, level.StationaryTurrets, 1)
	assert.InDelta(t, 1.5707963, level.StationaryTurrets[0].Roll, 1e-6)

	assert.Len(t, level.Zombies, 2)

	require.Len(t, level.Furniture, 1)
	assert.Equal(t, "H", level.Furniture[0].Type)

	require.Len(t, level.Pickups, 1)
	assert.Equal(t, 1, level.Pickups[0].Variant)

	path, ok := level.PatrolPaths["loop"]
	require.True(t, ok)
	require.Len(t, path.Points, 3)
	assert.Equal(t, 60.0, path.Points[2].X)
	assert.Equal(t, 60.0, path.Points[2].Y)
}

func TestLoadLevelWithoutPlayer(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": {Data: []byte(noSpawnTMX)},
	}

	_, err := LoadLevel(fsys, "levels/empty.tmx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPlayerSpawn))
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(arenaTMX)},
		"levels/a.tmx": {Data: []byte(arenaTMX)},
	}

	levels, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "a", levels[0].Name)
	assert.Equal(t, "b", levels[1].Name)

	_, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

const degToRad = 0.017453292519943295

// Object group names recognised in level files.
const (
	groupPlayerSpawn       = "PlayerSpawn"
	groupTurrets           = "Turrets"
	groupStationaryTurrets = "StationaryTurrets"
	groupZombies           = "Zombies"
	groupSkeletons         = "Skeletons"
	groupFurniture         = "Furniture"
	groupPickups           = "Pickups"
	groupPatrolPaths       = "PatrolPaths"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:    levelMap.Width * levelMap.TileWidth,
		MapHeight:   levelMap.Height * levelMap.TileHeight,
		TileWidth:   levelMap.TileWidth,
		TileHeight:  levelMap.TileHeight,
		PatrolPaths: map[string]PatrolPath{},
	}

	if err := parseWalls(levelMap, data); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	hasPlayer := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlayerSpawn:
			if len(og.Objects) > 0 {
				data.PlayerSpawn = spawnOf(og.Objects[0])
				hasPlayer = true
			}
		case groupTurrets:
			data.Turrets = append(data.Turrets, enemySpawns(og.Objects)...)
		case groupStationaryTurrets:
			data.StationaryTurrets = append(data.StationaryTurrets, enemySpawns(og.Objects)...)
		case groupZombies:
			data.Zombies = append(data.Zombies, enemySpawns(og.Objects)...)
		case groupSkeletons:
			data.Skeletons = append(data.Skeletons, enemySpawns(og.Objects)...)
		case groupFurniture:
			for _, o := range og.Objects {
				furnitureType := o.Properties.GetString("type")
				if furnitureType == "" {
					furnitureType = o.Class
				}
				if furnitureType == "" {
					furnitureType = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				data.Furniture = append(data.Furniture, FurnitureSpawn{
					Spawn: spawnOf(o),
					Type:  furnitureType,
				})
			}
		case groupPickups:
			for _, o := range og.Objects {
				data.Pickups = append(data.Pickups, PickupSpawn{
					Spawn:   spawnOf(o),
					Variant: o.Properties.GetInt("variant"),
				})
			}
		case groupPatrolPaths:
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Use the first polyline if multiple polylines exist
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]math.Vec2, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = math.Vec2{
						X: o.X + point.X,
						Y: o.Y + point.Y,
					}
				}
				data.PatrolPaths[o.Name] = PatrolPath{
					Name:   o.Name,
					Points: points,
				}
			}
		}
	}

	if !hasPlayer {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	return data, nil
}

func parseWalls(levelMap *tiled.Map, data *LevelData) error {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayerName {
			continue
		}
		if len(layer.Tiles) != levelMap.Width*levelMap.Height {
			return ErrBadTileLayer
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.SolidRects = append(data.SolidRects, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}
	return nil
}

// spawnOf returns the centre of a rectangle object or the position of a
// point object. The facing comes from the "roll" property in degrees.
func spawnOf(o *tiled.Object) Spawn {
	return Spawn{
		X:    o.X + o.Width/2,
		Y:    o.Y + o.Height/2,
		Roll: o.Properties.GetFloat("roll") * degToRad,
	}
}

func enemySpawns(objects []*tiled.Object) []EnemySpawn {
	spawns := make([]EnemySpawn, 0, len(objects))
	for _, o := range objects {
		spawns = append(spawns, EnemySpawn{
			Spawn:      spawnOf(o),
			PatrolPath: o.Properties.GetString("pathName"),
		})
	}
	return spawns
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns them sorted by file name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*LevelData, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*LevelData, 0, len(matches))
	for _, match := range matches {
		data, err := LoadLevel(fsys, match)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", match, err)
		}
		levels = append(levels, data)
	}
	return levels, nil
}

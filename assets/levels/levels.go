// Package levels embeds the bundled TMX maps.
package levels

import (
	"embed"

	"github.com/automoto/doomerang-siege/shared/leveldata"
)

//go:embed *.tmx
var FS embed.FS

// Load parses every bundled level, sorted by file name.
func Load() ([]*leveldata.LevelData, error) {
	return leveldata.LoadAllLevels(FS, ".")
}

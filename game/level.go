package game

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Decoration selects the animated background details of a theme
type Decoration int

const (
	DecorationVines Decoration = iota
	DecorationEmbers
	DecorationSnow
	DecorationDunes
)

// Level is one of the fixed visual themes, selected cyclically
type Level struct {
	Index      int
	Name       string
	Sky        color.RGBA
	Ground     color.RGBA
	Accent     color.RGBA
	Decoration Decoration
	Enemy      EnemyKind
}

// Levels holds the four themes in play order
var Levels = [...]Level{
	{
		Index:      0,
		Name:       "Jungle",
		Sky:        colornames.Forestgreen,
		Ground:     colornames.Darkolivegreen,
		Accent:     colornames.Limegreen,
		Decoration: DecorationVines,
		Enemy:      EnemyKindSnake,
	},
	{
		Index:      1,
		Name:       "Volcano",
		Sky:        colornames.Darkred,
		Ground:     colornames.Saddlebrown,
		Accent:     colornames.Orangered,
		Decoration: DecorationEmbers,
		Enemy:      EnemyKindLavaBat,
	},
	{
		Index:      2,
		Name:       "Ice",
		Sky:        colornames.Lightblue,
		Ground:     colornames.Aliceblue,
		Accent:     colornames.White,
		Decoration: DecorationSnow,
		Enemy:      EnemyKindIceWolf,
	},
	{
		Index:      3,
		Name:       "Desert",
		Sky:        colornames.Khaki,
		Ground:     colornames.Burlywood,
		Accent:     colornames.Goldenrod,
		Decoration: DecorationDunes,
		Enemy:      EnemyKindScorpion,
	},
}

// LevelCount is the number of themes before the game loops
const LevelCount = len(Levels)

// LevelAt returns the theme for a level index, wrapping around
func LevelAt(index int) Level {
	index %= LevelCount
	if index < 0 {
		index += LevelCount
	}
	return Levels[index]
}

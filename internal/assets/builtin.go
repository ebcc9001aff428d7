package assets

import "github.com/vovakirdan/tui-invaders/internal/core"

// BuiltinSprites returns the sprite set shipped with the game.
// Enemy projectiles use the "enemy-" prefixed variant of the laser name.
func BuiltinSprites() map[string]SpriteDef {
	return map[string]SpriteDef{
		"ship": {
			Art: []string{
				"  ▲  ",
				"▟███▙",
			},
			Color: core.ColorCyan,
		},
		"enemy-ship": {
			Art: []string{
				"▜▀█▀▛",
				" ▝▼▘ ",
			},
			Color: core.ColorRed,
		},
		"enemy-heavy-ship": {
			Art: []string{
				"▛███▜",
				"▙▄▼▄▟",
			},
			Color: core.ColorMagenta,
		},
		"enemy-ram-ship": {
			Art: []string{
				"▚█▞",
				" ▼ ",
			},
			Color: core.ColorOrange,
		},
		"basic-laser": {
			Art:   []string{"│"},
			Color: core.ColorBrightGreen,
		},
		"auto-laser": {
			Art:   []string{"╎"},
			Color: core.ColorBrightGreen,
		},
		"enemy-basic-laser": {
			Art:   []string{"┃"},
			Color: core.ColorBrightRed,
		},
		"enemy-auto-laser": {
			Art:   []string{"╏"},
			Color: core.ColorYellow,
		},
		"heart": {
			Art:   []string{"♥"},
			Color: core.ColorRed,
		},
		ErrorSprite: {
			Art:   []string{"?"},
			Color: core.ColorYellow,
		},
	}
}

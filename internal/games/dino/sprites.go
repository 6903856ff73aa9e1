package dino

import "github.com/vovakirdan/dino-dash/internal/runner"

// Visual characters for rendering
const (
	DinoChar   = '█'
	CactusChar = '▓'
	GroundChar = '═'
	DirtChar   = '·'
	TrailChar  = '≡'
	HeartFull  = '♥'
	HeartEmpty = '♡'
)

// shieldChars holds the outline rune per shield wear stage.
var shieldChars = map[runner.ShieldStage]rune{
	runner.ShieldIntact:     '○',
	runner.ShieldCracked:    '◌',
	runner.ShieldShattering: '·',
}

var dinoBody = []string{
	"........########",
	"........##.#####",
	"........########",
	"........########",
	"........########",
	"........####....",
	"........######..",
	"#......#####....",
	"#.....#######...",
	"##...#######.#..",
	"###.########....",
	"############....",
	"############....",
	".##########.....",
	"..#########.....",
	"...########.....",
	"....#######.....",
	"....######......",
	"....######......",
	"....###.##......",
}

// dinoLegs holds the leg rows of each run-cycle frame.
var dinoLegs = [runner.PlayerFrames][]string{
	{
		"....##....#.....",
		"....#.....#.....",
		"....#.....#.....",
		"....##....##....",
	},
	{
		"....##....#.....",
		"....##....#.....",
		"..........#.....",
		"..........##....",
	},
	{
		"....##....#.....",
		"....#.....#.....",
		"....#.....#.....",
		"....##....##....",
	},
	{
		"....##....#.....",
		"....#...........",
		"....#...........",
		"....##..........",
	},
}

// dinoFrames holds the full sprite of each run-cycle frame.
var dinoFrames = func() [runner.PlayerFrames][]string {
	var frames [runner.PlayerFrames][]string
	for i, legs := range dinoLegs {
		frame := make([]string, 0, len(dinoBody)+len(legs))
		frame = append(frame, dinoBody...)
		frames[i] = append(frame, legs...)
	}
	return frames
}()

// dinoSprite returns the sprite for a frame. Airborne players hold frame 0.
func dinoSprite(frame int, onGround bool) []string {
	if !onGround {
		return dinoFrames[0]
	}
	return dinoFrames[frame%runner.PlayerFrames]
}

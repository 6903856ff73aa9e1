package runner

// Shape selects an obstacle's pattern. Shapes only differ in looks and size;
// every shape behaves the same.
type Shape int

const (
	ShapeSmall Shape = iota // Short cactus with one pair of arms
	ShapeTall               // Tall cactus
	ShapeWide               // Wide cactus with staggered arms
	shapeCount
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSmall:
		return "small"
	case ShapeTall:
		return "tall"
	case ShapeWide:
		return "wide"
	default:
		return "unknown"
	}
}

// Pattern returns the shape's pixel-art rows; '#' marks a filled block.
func (s Shape) Pattern() []string {
	switch s {
	case ShapeTall:
		return tallCactus
	case ShapeWide:
		return wideCactus
	default:
		return smallCactus
	}
}

// Blocks returns the pattern size in blocks.
func (s Shape) Blocks() (w, h int) {
	p := s.Pattern()
	return len(p[0]), len(p)
}

var smallCactus = []string{
	"..##..",
	"..##..",
	"..##..",
	"######",
	"######",
	"..##..",
	"..##..",
	"..##..",
	"..##..",
	"..##..",
	"..##..",
	"..##..",
}

var tallCactus = []string{
	"..##..",
	"..##..",
	"..##..",
	"..##..",
	"######",
	"######",
	"..##..",
	"..##..",
	"..##..",
	"..##..",
	"..##..",
	"..##..",
	"..##..",
	"..##..",
	"..##..",
	"..##..",
}

var wideCactus = []string{
	"..##....",
	"..##....",
	"######..",
	"######..",
	"..######",
	"..######",
	"..##....",
	"..##....",
	"..##....",
	"..##....",
	"..##....",
	"..##....",
	"..##....",
}

// Player sprite size in blocks. The run cycle has four frames of this size.
const (
	PlayerBlocksW = 16
	PlayerBlocksH = 24
	PlayerFrames  = 4
)

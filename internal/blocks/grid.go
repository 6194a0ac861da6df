package blocks

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
)

// Layout defaults in world units.
const (
	DefaultWidth  = 20
	BlockW        = 20
	BlockH        = 14
	SpacingX      = 2
	SpacingY      = 2
	MinRandomRows = 5
	MaxRandomRows = 15
	MaxRandomHP   = 4
	CellW         = BlockW + SpacingX
	CellH         = BlockH + SpacingY
)

// Grid is a sparse arrangement of blocks generated from a text descriptor.
// Rows are separated by newlines; '1'-'9' create a block with that many hit
// points, any other character leaves the cell empty.
type Grid struct {
	Width  int       // Columns per row; longer rows are truncated
	Origin core.Vec2 // Top-left of cell (0, 0)

	cells      [][]*Block // [row][col]
	live       int
	descriptor string
	generated  bool
	cleared    bool

	world     *physics.World
	rng       *rand.Rand
	palette   *Palette
	particles []Particle

	onCleared   []func()
	onDestroyed []func(*Block)
}

// NewGrid creates an empty grid. Blocks are registered in world as they are
// generated and removed from it as soon as they are destroyed.
func NewGrid(world *physics.World, origin core.Vec2, rng *rand.Rand) *Grid {
	return &Grid{
		Width:   DefaultWidth,
		Origin:  origin,
		world:   world,
		rng:     rng,
		palette: NewPalette(),
	}
}

// OnCleared registers an observer fired once when the last live block of a
// generated level is destroyed.
func (g *Grid) OnCleared(fn func()) {
	g.onCleared = append(g.onCleared, fn)
}

// OnDestroyed registers an observer fired for each destroyed block.
func (g *Grid) OnDestroyed(fn func(*Block)) {
	g.onDestroyed = append(g.onDestroyed, fn)
}

// Palette returns the grid palette.
func (g *Grid) Palette() *Palette { return g.palette }

// Descriptor returns the last descriptor passed to Generate.
func (g *Grid) Descriptor() string { return g.descriptor }

// Rows returns the number of rows of the current layout.
func (g *Grid) Rows() int { return len(g.cells) }

// Live returns the number of blocks that are not destroyed.
func (g *Grid) Live() int { return g.live }

// Particles returns the active particles.
func (g *Grid) Particles() []Particle { return g.particles }

// At returns the block at (col, row), or nil for empty or removed cells.
func (g *Grid) At(col, row int) *Block {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return nil
	}
	return g.cells[row][col]
}

// Blocks returns every block still present, including fading ones.
func (g *Grid) Blocks() []*Block {
	var out []*Block
	for _, row := range g.cells {
		for _, b := range row {
			if b != nil {
				out = append(out, b)
			}
		}
	}
	return out
}

// Size returns the world-space extent of the current layout.
func (g *Grid) Size() core.Vec2 {
	return core.V(float64(g.Width*CellW), float64(len(g.cells)*CellH))
}

// Generate discards the current layout and builds a new one from descriptor.
// An empty descriptor produces a random layout.
func (g *Grid) Generate(descriptor string) {
	g.discard()
	g.descriptor = descriptor
	g.generated = true
	g.cleared = false

	text := descriptor
	if strings.TrimSpace(text) == "" {
		text = g.randomDescriptor()
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}

	width := g.Width
	if width <= 0 {
		width = DefaultWidth
	}

	g.cells = make([][]*Block, len(lines))
	for row, line := range lines {
		g.cells[row] = make([]*Block, width)
		for col := 0; col < width && col < len(line); col++ {
			ch := line[col]
			if ch < '1' || ch > '9' {
				continue
			}
			b := NewBlock(col, row, int(ch-'0'), g.cellRect(col, row))
			g.cells[row][col] = b
			g.live++
			if g.world != nil {
				g.world.Add(b)
			}
		}
	}
}

// Clear removes every block. The last descriptor is kept for Reset.
func (g *Grid) Clear() {
	g.discard()
	g.cleared = false
}

// Reset clears the grid and regenerates it from the last descriptor.
// It does nothing if Generate was never called.
func (g *Grid) Reset() {
	if !g.generated {
		return
	}
	g.Generate(g.descriptor)
}

func (g *Grid) discard() {
	for _, row := range g.cells {
		for _, b := range row {
			if b != nil && g.world != nil {
				g.world.Remove(b)
			}
		}
	}
	g.cells = nil
	g.live = 0
	g.particles = nil
}

func (g *Grid) cellRect(col, row int) core.RectF {
	return core.RectF{
		X: g.Origin.X + float64(col*CellW),
		Y: g.Origin.Y + float64(row*CellH),
		W: BlockW,
		H: BlockH,
	}
}

func (g *Grid) randomDescriptor() string {
	width := g.Width
	if width <= 0 {
		width = DefaultWidth
	}
	rows := MinRandomRows + g.rng.Intn(MaxRandomRows-MinRandomRows+1)

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < width; c++ {
			sb.WriteByte(byte('0' + g.rng.Intn(MaxRandomHP+1)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Hit applies one hit to b, emits particles and handles destruction.
// It reports whether the hit destroyed the block.
func (g *Grid) Hit(b *Block) bool {
	if b == nil {
		return false
	}
	tier := b.Tier()
	if !b.Hit() {
		return false
	}

	if g.rng != nil {
		g.particles = append(g.particles, burst(g.rng, b.Rect.Center(), g.palette.Material(tier))...)
	}

	if !b.Destroyed() {
		return false
	}

	if g.world != nil {
		g.world.Remove(b)
	}
	g.live--
	for _, fn := range g.onDestroyed {
		fn(b)
	}

	if g.live == 0 && !g.cleared {
		g.cleared = true
		for _, fn := range g.onCleared {
			fn()
		}
	}
	return true
}

// Tick advances the visual state: block fades and particles.
func (g *Grid) Tick(dt float64) {
	for _, row := range g.cells {
		for col, b := range row {
			if b != nil && b.tick(dt) {
				row[col] = nil
			}
		}
	}
	g.particles = ageParticles(g.particles, dt)
}

// ColorOf returns the display color of a block, faded if destroyed.
func (g *Grid) ColorOf(b *Block) core.Color {
	if b.Destroyed() {
		return g.palette.Faded(b.Tier(), b.Alpha())
	}
	return g.palette.Color(b.HitPoints())
}

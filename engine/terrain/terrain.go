package terrain

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh holds the two parallel per-vertex attribute streams produced by Generate.
// Both slices have one entry per vertex in emission order: two triangles per
// grid cell, three vertices per triangle, rows scanned in increasing z.
type Mesh struct {
	Positions []mgl32.Vec4 // vertex positions, w = 1
	Normals   []mgl32.Vec4 // flat per-triangle normals, w = 0
}

// generatorImpl is the implementation of the Generator interface.
type generatorImpl struct {
	gridSize  float32 // world-space side length of the square grid
	step      float32 // world-space spacing between adjacent grid points
	amplitude float32 // peak height of the elevation function
	frequency float32 // spatial frequency of the elevation function
	workers   int     // stored so we can log/inspect the configured count

	pool worker.DynamicWorkerPool
}

// Generator defines the interface for the procedural terrain mesh generator.
//
// The generator samples a scalar elevation function over a fixed square grid
// and emits two triangles per grid cell with flat per-triangle normals. Output
// is a deterministic function of the grid parameters regardless of how many
// workers compute it.
type Generator interface {
	// GridSize returns the world-space side length of the square grid.
	//
	// Returns:
	//   - float32: the grid size
	GridSize() float32

	// Step returns the world-space spacing between adjacent grid points.
	//
	// Returns:
	//   - float32: the grid step
	Step() float32

	// Amplitude returns the peak height of the elevation function.
	//
	// Returns:
	//   - float32: the amplitude
	Amplitude() float32

	// Frequency returns the spatial frequency of the elevation function.
	//
	// Returns:
	//   - float32: the frequency
	Frequency() float32

	// CellsPerSide returns the number of grid cells along one side of the grid.
	//
	// Returns:
	//   - int: cells per side, rounded from gridSize / step
	CellsPerSide() int

	// TriangleCount returns the total number of triangles the generator emits:
	// two per grid cell.
	//
	// Returns:
	//   - int: the triangle count
	TriangleCount() int

	// VertexCount returns the total number of vertices the generator emits:
	// three per triangle, with no sharing between triangles.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// Elevation samples the scalar elevation function at a world-space point.
	//
	// Parameters:
	//   - x, z: the world-space sample point
	//
	// Returns:
	//   - float32: the terrain height at (x, z)
	Elevation(x, z float32) float32

	// Generate produces the terrain mesh as two parallel attribute streams.
	// Grid rows are computed concurrently on the generator's worker pool; the
	// emitted vertex order and values are identical for any worker count.
	//
	// Returns:
	//   - Mesh: the generated position and normal streams
	Generate() Mesh
}

var _ Generator = &generatorImpl{}

// NewGenerator creates a terrain Generator with the default grid: a 10 by 10
// world-unit domain centered on the origin, sampled every 0.1 units, with a
// gentle sine-by-cosine elevation of amplitude 0.5 and frequency 1.
//
// Parameters:
//   - opts: variadic list of GeneratorBuilderOption functions to configure the generator
//
// Returns:
//   - Generator: a new Generator instance
func NewGenerator(opts ...GeneratorBuilderOption) Generator {
	g := &generatorImpl{
		gridSize:  10.0,
		step:      0.1,
		amplitude: 0.5,
		frequency: 1.0,
		workers:   max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.workers < 1 {
		g.workers = 1
	}
	g.pool = worker.NewDynamicWorkerPool(g.workers, 256, 1*time.Second)
	return g
}

func (g *generatorImpl) GridSize() float32 {
	return g.gridSize
}

func (g *generatorImpl) Step() float32 {
	return g.step
}

func (g *generatorImpl) Amplitude() float32 {
	return g.amplitude
}

func (g *generatorImpl) Frequency() float32 {
	return g.frequency
}

func (g *generatorImpl) CellsPerSide() int {
	if g.step <= 0 || g.gridSize <= 0 {
		return 0
	}
	// Round rather than truncate: gridSize / step is not exact in float32
	// (10 / 0.1 lands just below 100).
	return int(math32.Round(g.gridSize / g.step))
}

func (g *generatorImpl) TriangleCount() int {
	cells := g.CellsPerSide()
	return 2 * cells * cells
}

func (g *generatorImpl) VertexCount() int {
	return 3 * g.TriangleCount()
}

func (g *generatorImpl) Elevation(x, z float32) float32 {
	return g.amplitude * math32.Sin(g.frequency*x) * math32.Cos(g.frequency*z)
}

func (g *generatorImpl) Generate() Mesh {
	cells := g.CellsPerSide()
	if cells <= 0 {
		return Mesh{Positions: []mgl32.Vec4{}, Normals: []mgl32.Vec4{}}
	}

	vertexCount := cells * cells * 6
	positions := make([]mgl32.Vec4, vertexCount)
	normals := make([]mgl32.Vec4, vertexCount)
	origin := -g.gridSize / 2

	// One task per grid row. Rows write disjoint segments of the output
	// slices, so the only synchronization needed is the completion barrier.
	var wg sync.WaitGroup
	for j := 0; j < cells; j++ {
		wg.Add(1)
		row := j
		g.pool.SubmitTask(worker.Task{
			ID: row,
			Do: func() (any, error) {
				defer wg.Done()
				g.generateRow(row, cells, origin, positions, normals)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return Mesh{Positions: positions, Normals: normals}
}

// generateRow fills the vertex data for all cells in grid row j. Each cell
// emits two triangles, (a, b, c) and (a, c, d), where a..d are the cell's
// corners in x-then-z order. All three vertices of a triangle share that
// triangle's flat normal.
func (g *generatorImpl) generateRow(j, cells int, origin float32, positions, normals []mgl32.Vec4) {
	base := j * cells * 6
	z0 := origin + float32(j)*g.step
	z1 := z0 + g.step

	for i := 0; i < cells; i++ {
		x0 := origin + float32(i)*g.step
		x1 := x0 + g.step

		a := mgl32.Vec3{x0, g.Elevation(x0, z0), z0}
		b := mgl32.Vec3{x1, g.Elevation(x1, z0), z0}
		c := mgl32.Vec3{x1, g.Elevation(x1, z1), z1}
		d := mgl32.Vec3{x0, g.Elevation(x0, z1), z1}

		n1 := triangleNormal(a, b, c)
		n2 := triangleNormal(a, c, d)

		o := base + i*6
		positions[o+0] = a.Vec4(1)
		positions[o+1] = b.Vec4(1)
		positions[o+2] = c.Vec4(1)
		positions[o+3] = a.Vec4(1)
		positions[o+4] = c.Vec4(1)
		positions[o+5] = d.Vec4(1)

		normals[o+0] = n1.Vec4(0)
		normals[o+1] = n1.Vec4(0)
		normals[o+2] = n1.Vec4(0)
		normals[o+3] = n2.Vec4(0)
		normals[o+4] = n2.Vec4(0)
		normals[o+5] = n2.Vec4(0)
	}
}

// triangleNormal returns the flat normal for the triangle (p0, p1, p2): the
// negated, normalized cross product of its two edge vectors. With this
// package's clockwise-from-above cell winding the negation makes the normal
// face up out of the terrain surface.
func triangleNormal(p0, p1, p2 mgl32.Vec3) mgl32.Vec3 {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	return e1.Cross(e2).Mul(-1).Normalize()
}

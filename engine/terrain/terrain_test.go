package terrain

import (
	"testing"

	"github.com/Carmen-Shannon/terralit/engine/model"
	"github.com/stretchr/testify/assert"
)

const tolerance = float32(1.0e-5)

func TestNewGeneratorDefaults(t *testing.T) {
	g := NewGenerator()

	assert.Equal(t, float32(10.0), g.GridSize())
	assert.Equal(t, float32(0.1), g.Step())
	assert.Equal(t, float32(0.5), g.Amplitude())
	assert.Equal(t, float32(1.0), g.Frequency())
}

func TestCellsPerSideRounding(t *testing.T) {
	tests := []struct {
		name     string
		gridSize float32
		step     float32
		expected int
	}{
		{"default grid divides inexactly in float32", 10.0, 0.1, 100},
		{"exact division", 2.0, 1.0, 2},
		{"fractional step", 1.0, 0.5, 2},
		{"zero step yields no cells", 1.0, 0.0, 0},
		{"zero grid yields no cells", 0.0, 0.5, 0},
	}

	for _, tt := range tests {
		g := NewGenerator(WithGridSize(tt.gridSize), WithStep(tt.step))
		assert.Equal(t, tt.expected, g.CellsPerSide(), tt.name)
	}
}

func TestTriangleAndVertexCounts(t *testing.T) {
	tests := []struct {
		name              string
		gridSize          float32
		step              float32
		expectedTriangles int
	}{
		{"two cells per side", 2.0, 1.0, 8},
		{"four cells per side", 2.0, 0.5, 32},
		{"default grid", 10.0, 0.1, 20000},
	}

	for _, tt := range tests {
		g := NewGenerator(WithGridSize(tt.gridSize), WithStep(tt.step))
		assert.Equal(t, tt.expectedTriangles, g.TriangleCount(), tt.name)
		assert.Equal(t, 3*tt.expectedTriangles, g.VertexCount(), tt.name)
	}
}

func TestGenerateStreamLengths(t *testing.T) {
	g := NewGenerator(WithGridSize(2.0), WithStep(0.5))
	mesh := g.Generate()

	assert.Len(t, mesh.Positions, g.VertexCount())
	assert.Len(t, mesh.Normals, g.VertexCount())
}

func TestGenerateEmptyGrid(t *testing.T) {
	g := NewGenerator(WithGridSize(0.0), WithStep(0.1))
	mesh := g.Generate()

	assert.Empty(t, mesh.Positions)
	assert.Empty(t, mesh.Normals)
}

func TestGenerateHomogeneousComponents(t *testing.T) {
	g := NewGenerator(WithGridSize(1.0), WithStep(0.5))
	mesh := g.Generate()

	for i := range mesh.Positions {
		assert.Equal(t, float32(1.0), mesh.Positions[i].W(), "position w at vertex %d", i)
		assert.Equal(t, float32(0.0), mesh.Normals[i].W(), "normal w at vertex %d", i)
	}
}

func TestGenerateNormalsUnitLength(t *testing.T) {
	g := NewGenerator(WithGridSize(2.0), WithStep(0.25), WithAmplitude(0.8), WithFrequency(2.0))
	mesh := g.Generate()

	for i, n := range mesh.Normals {
		assert.InDelta(t, 1.0, n.Vec3().Len(), float64(tolerance), "normal length at vertex %d", i)
	}
}

func TestGenerateFlatNormalsSharedPerTriangle(t *testing.T) {
	g := NewGenerator(WithGridSize(2.0), WithStep(0.5))
	mesh := g.Generate()

	for tri := 0; tri < g.TriangleCount(); tri++ {
		o := tri * 3
		assert.Equal(t, mesh.Normals[o], mesh.Normals[o+1], "triangle %d", tri)
		assert.Equal(t, mesh.Normals[o], mesh.Normals[o+2], "triangle %d", tri)
	}
}

func TestGenerateFlatGridNormalsFaceUp(t *testing.T) {
	g := NewGenerator(WithGridSize(2.0), WithStep(0.5), WithAmplitude(0.0))
	mesh := g.Generate()

	for i, n := range mesh.Normals {
		assert.InDelta(t, 0.0, n.X(), float64(tolerance), "normal x at vertex %d", i)
		assert.InDelta(t, 1.0, n.Y(), float64(tolerance), "normal y at vertex %d", i)
		assert.InDelta(t, 0.0, n.Z(), float64(tolerance), "normal z at vertex %d", i)
	}
}

func TestGeneratePositionsMatchElevation(t *testing.T) {
	g := NewGenerator(WithGridSize(1.0), WithStep(0.25), WithAmplitude(0.5), WithFrequency(3.0))
	mesh := g.Generate()

	for i, p := range mesh.Positions {
		assert.InDelta(t, g.Elevation(p.X(), p.Z()), p.Y(), float64(tolerance), "elevation at vertex %d", i)
	}
}

func TestGenerateDomainIsCenteredOnOrigin(t *testing.T) {
	g := NewGenerator(WithGridSize(2.0), WithStep(0.5))
	mesh := g.Generate()

	minX, maxX := mesh.Positions[0].X(), mesh.Positions[0].X()
	minZ, maxZ := mesh.Positions[0].Z(), mesh.Positions[0].Z()
	for _, p := range mesh.Positions {
		minX = min(minX, p.X())
		maxX = max(maxX, p.X())
		minZ = min(minZ, p.Z())
		maxZ = max(maxZ, p.Z())
	}

	assert.InDelta(t, -1.0, minX, float64(tolerance))
	assert.InDelta(t, 1.0, maxX, float64(tolerance))
	assert.InDelta(t, -1.0, minZ, float64(tolerance))
	assert.InDelta(t, 1.0, maxZ, float64(tolerance))
}

func TestGenerateDeterministicAcrossWorkerCounts(t *testing.T) {
	serial := NewGenerator(WithGridSize(2.0), WithStep(0.2), WithWorkers(1)).Generate()
	parallel := NewGenerator(WithGridSize(2.0), WithStep(0.2), WithWorkers(4)).Generate()

	assert.Equal(t, serial.Positions, parallel.Positions)
	assert.Equal(t, serial.Normals, parallel.Normals)
}

func TestGenerateInterleavesToExpectedByteLength(t *testing.T) {
	g := NewGenerator()
	mesh := g.Generate()

	vertices := model.InterleaveVertexData(mesh.Positions, mesh.Normals)
	data := model.MarshalVertices(vertices)

	assert.Equal(t, 60000, g.VertexCount())
	assert.Len(t, vertices, g.VertexCount())
	assert.Len(t, data, g.VertexCount()*6*4)
}

package mesh

import (
	"github.com/Carmen-Shannon/glade/engine/renderer"

	"github.com/chewxy/math32"
)

// planeMesh generates a quad in the XZ plane spanning [-1, 1] on both axes with
// its normal along +Y and texture coordinates covering [0, 1].
func planeMesh() ([]float32, []uint32) {
	vertices := []float32{
		-1, 0, 1, 0, 1, 0, 0, 0,
		1, 0, 1, 0, 1, 0, 1, 0,
		1, 0, -1, 0, 1, 0, 1, 1,
		-1, 0, -1, 0, 1, 0, 0, 1,
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return vertices, indices
}

// cylinderMesh generates a capped cylinder of radius 1 and height 1 with its
// base on the XZ plane. The wall is a (radialSegs+1) by 2 vertex grid; each cap
// adds a center vertex and its own ring so normals stay hard at the edges.
func cylinderMesh(radialSegs int) ([]float32, []uint32) {
	n := radialSegs
	cos, sin := ringTable(n)

	vertices := make([]float32, 0, (4*n+6)*renderer.VertexFloats)
	indices := make([]uint32, 0, n*12)

	for i := 0; i <= n; i++ {
		u := float32(i) / float32(n)
		vertices = append(vertices, cos[i], 0, sin[i], cos[i], 0, sin[i], u, 0)
	}
	for i := 0; i <= n; i++ {
		u := float32(i) / float32(n)
		vertices = append(vertices, cos[i], 1, sin[i], cos[i], 0, sin[i], u, 1)
	}
	top := uint32(n + 1)
	for i := 0; i < n; i++ {
		b0, b1 := uint32(i), uint32(i+1)
		t0, t1 := top+uint32(i), top+uint32(i+1)
		indices = append(indices, b0, t0, t1, b0, t1, b1)
	}

	vertices, indices = appendCap(vertices, indices, cos, sin, 0, false)
	vertices, indices = appendCap(vertices, indices, cos, sin, 1, true)
	return vertices, indices
}

// coneMesh generates a cone of base radius 1 and height 1 with its base on the
// XZ plane and apex at (0, 1, 0). The apex vertex is duplicated per segment so
// each face keeps its own slant normal and texture seam.
func coneMesh(radialSegs int) ([]float32, []uint32) {
	n := radialSegs
	cos, sin := ringTable(n)
	invSlant := 1 / math32.Sqrt(2)

	vertices := make([]float32, 0, (3*n+4)*renderer.VertexFloats)
	indices := make([]uint32, 0, n*6)

	for i := 0; i <= n; i++ {
		u := float32(i) / float32(n)
		vertices = append(vertices, cos[i], 0, sin[i], cos[i]*invSlant, invSlant, sin[i]*invSlant, u, 0)
	}
	for i := 0; i <= n; i++ {
		u := float32(i) / float32(n)
		vertices = append(vertices, 0, 1, 0, cos[i]*invSlant, invSlant, sin[i]*invSlant, u, 1)
	}
	apex := uint32(n + 1)
	for i := 0; i < n; i++ {
		indices = append(indices, uint32(i), apex+uint32(i), uint32(i+1))
	}

	vertices, indices = appendCap(vertices, indices, cos, sin, 0, false)
	return vertices, indices
}

// sphereMesh generates a unit sphere centered at the origin as a latitude and
// longitude grid; polar quads degenerate to single triangles.
func sphereMesh(sectors, rings int) ([]float32, []uint32) {
	vertices := make([]float32, 0, (sectors+1)*(rings+1)*renderer.VertexFloats)
	indices := make([]uint32, 0, sectors*rings*6)

	for j := 0; j <= rings; j++ {
		phi := math32.Pi * float32(j) / float32(rings)
		y := math32.Cos(phi)
		r := math32.Sin(phi)
		for i := 0; i <= sectors; i++ {
			theta := 2 * math32.Pi * float32(i) / float32(sectors)
			x := r * math32.Cos(theta)
			z := r * math32.Sin(theta)
			u := float32(i) / float32(sectors)
			v := 1 - float32(j)/float32(rings)
			vertices = append(vertices, x, y, z, x, y, z, u, v)
		}
	}

	for j := 0; j < rings; j++ {
		k1 := uint32(j * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1
		for i := 0; i < sectors; i++ {
			a := k1 + uint32(i)
			b := a + 1
			c := k2 + uint32(i)
			d := c + 1
			if j != 0 {
				indices = append(indices, a, b, c)
			}
			if j != rings-1 {
				indices = append(indices, b, d, c)
			}
		}
	}
	return vertices, indices
}

// ringTable precomputes cos and sin for n+1 evenly spaced angles around a full
// circle; entry n wraps back to entry 0's angle so texture seams close cleanly.
func ringTable(n int) ([]float32, []float32) {
	cos := make([]float32, n+1)
	sin := make([]float32, n+1)
	for i := 0; i <= n; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(n)
		cos[i] = math32.Cos(theta)
		sin[i] = math32.Sin(theta)
	}
	return cos, sin
}

// appendCap appends a disc at height y using a fresh center vertex and ring.
// Facing up flips the winding and normal from the bottom cap.
func appendCap(vertices []float32, indices []uint32, cos, sin []float32, y float32, up bool) ([]float32, []uint32) {
	n := len(cos) - 1
	normalY := float32(-1)
	if up {
		normalY = 1
	}

	center := uint32(len(vertices) / renderer.VertexFloats)
	vertices = append(vertices, 0, y, 0, 0, normalY, 0, 0.5, 0.5)
	for i := 0; i <= n; i++ {
		vertices = append(vertices, cos[i], y, sin[i], 0, normalY, 0, 0.5+0.5*cos[i], 0.5+0.5*sin[i])
	}
	for i := 0; i < n; i++ {
		ring0 := center + 1 + uint32(i)
		ring1 := ring0 + 1
		if up {
			indices = append(indices, center, ring1, ring0)
		} else {
			indices = append(indices, center, ring0, ring1)
		}
	}
	return vertices, indices
}

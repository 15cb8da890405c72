package dial

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// circleSegments is the number of segments used for a full circle.
const circleSegments = 96

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used as the source for all untextured shapes.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// segmentsFor returns how many segments an arc spanning sweep radians gets.
func segmentsFor(sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * circleSegments))
	if n < 1 {
		n = 1
	}
	return n
}

func solidVertex(x, y float64, c Color) ebiten.Vertex {
	// Untextured: sample the center of the white pixel.
	return ebiten.Vertex{
		DstX: float32(x), DstY: float32(y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: float32(c.R), ColorG: float32(c.G), ColorB: float32(c.B), ColorA: float32(c.A),
	}
}

// buildArcStrip generates a ribbon of the given thickness centered on the
// circle of radius r, from angle `from` to `to` (radians). For N segments:
// 2(N+1) vertices, 6N indices. Returns nil when the sweep or thickness is zero.
func buildArcStrip(center Vec2, r, thickness, from, to float64, c Color) ([]ebiten.Vertex, []uint16) {
	sweep := to - from
	if sweep == 0 || thickness <= 0 {
		return nil, nil
	}
	n := segmentsFor(sweep)
	inner := r - thickness/2
	if inner < 0 {
		inner = 0
	}
	outer := r + thickness/2

	verts := make([]ebiten.Vertex, 0, (n+1)*2)
	for i := 0; i <= n; i++ {
		a := from + sweep*float64(i)/float64(n)
		cos, sin := math.Cos(a), math.Sin(a)
		verts = append(verts,
			solidVertex(center.X+outer*cos, center.Y+outer*sin, c),
			solidVertex(center.X+inner*cos, center.Y+inner*sin, c),
		)
	}

	// Two triangles per segment.
	inds := make([]uint16, n*6)
	for i := 0; i < n; i++ {
		ii := i * 6
		v := uint16(i * 2)
		inds[ii+0] = v
		inds[ii+1] = v + 1
		inds[ii+2] = v + 2
		inds[ii+3] = v + 1
		inds[ii+4] = v + 3
		inds[ii+5] = v + 2
	}
	return verts, inds
}

// buildDiscFan generates a filled circle as a triangle fan around its
// center. circleSegments+1 vertices, 3*circleSegments indices.
func buildDiscFan(center Vec2, r float64, c Color) ([]ebiten.Vertex, []uint16) {
	if r <= 0 {
		return nil, nil
	}
	verts := make([]ebiten.Vertex, 0, circleSegments+1)
	verts = append(verts, solidVertex(center.X, center.Y, c))
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		verts = append(verts, solidVertex(center.X+r*math.Cos(a), center.Y+r*math.Sin(a), c))
	}

	// Vertex 0 is the hub.
	inds := make([]uint16, 0, circleSegments*3)
	for i := 0; i < circleSegments; i++ {
		next := (i+1)%circleSegments + 1
		inds = append(inds, 0, uint16(i+1), uint16(next))
	}
	return verts, inds
}

// drawShape submits one untextured shape.
func drawShape(target *ebiten.Image, verts []ebiten.Vertex, inds []uint16) {
	if len(verts) == 0 || len(inds) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.AntiAlias = true
	target.DrawTriangles(verts, inds, ensureWhitePixel(), &triOp)
}

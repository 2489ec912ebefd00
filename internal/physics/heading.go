package physics

import "github.com/go-gl/mathgl/mgl64"

// Heading returns the forward and lateral unit vectors for a rotation in
// degrees. Rotation 0 faces up the screen (negative y), lateral points right.
func Heading(rotationDeg float64) (head, lateral mgl64.Vec3) {
	rot := mgl64.Rotate2D(mgl64.DegToRad(rotationDeg))
	up := rot.Mul2x1(mgl64.Vec2{0, 1})
	right := rot.Mul2x1(mgl64.Vec2{1, 0})
	return mgl64.Vec3{-up[0], -up[1], 0}, mgl64.Vec3{right[0], right[1], 0}
}

// Distance2D — расстояние между a и b в плоскости xy, z игнорируется
func Distance2D(a, b mgl64.Vec3) float64 {
	return a.Vec2().Sub(b.Vec2()).Len()
}

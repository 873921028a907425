package mandel

// GenerateOrbit iterates z ← z² + c from seed and returns
// [z₀, z₁, …, z_n] with n = iterates, so the result holds iterates+1 points.
//
// There is no escape test: diverging orbits are returned in full, including
// any infinities they reach. Callers clamp iterates to their configured range;
// a negative count is treated as zero.
func GenerateOrbit(seed ComplexPoint, iterates int, c ComplexPoint) []ComplexPoint {
	if iterates < 0 {
		iterates = 0
	}
	orbit := make([]ComplexPoint, 0, iterates+1)
	orbit = append(orbit, seed)

	x, y := seed.Re, seed.Im
	x2, y2 := x*x, y*y
	for range iterates {
		y = 2*x*y + c.Im
		x = x2 - y2 + c.Re
		orbit = append(orbit, ComplexPoint{Re: x, Im: y})
		x2, y2 = x*x, y*y
	}
	return orbit
}

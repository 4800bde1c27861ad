package biquad

import "math/cmplx"

// Poles returns the z-plane roots of the denominator 1 + A1*z^-1 + A2*z^-2.
// A first-order section reports its missing pole as 0.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane roots of the numerator B0 + B1*z^-1 + B2*z^-2.
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// Stable reports whether both poles lie strictly inside the unit circle,
// the stability condition for a recursive section.
func (c *Coefficients) Stable() bool {
	poles := c.Poles()
	return cmplx.Abs(poles[0]) < 1 && cmplx.Abs(poles[1]) < 1
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	switch {
	case a == 0 && b == 0:
		return [2]complex128{}
	case a == 0:
		return [2]complex128{complex(-c/b, 0), 0}
	}

	d := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	nb := complex(-b, 0)
	den := complex(2*a, 0)
	return [2]complex128{(nb + d) / den, (nb - d) / den}
}

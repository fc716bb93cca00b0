package bezier

import (
	"math"

	"github.com/katalvlaran/opentime/ordinate"
)

// reduceOnce performs one level of de Casteljau linear interpolation
// over the first n points of pts, returning n-1 interpolants. Unused
// trailing slots are left zeroed.
func reduceOnce(pts [4]ordinate.Ordinate, n int, u ordinate.Ordinate) [4]ordinate.Ordinate {
	var out [4]ordinate.Ordinate
	for i := 0; i < n-1; i++ {
		out[i] = pts[i].Add(u.Mul(pts[i+1].Sub(pts[i])))
	}

	return out
}

// deCasteljau fully reduces a 1D 4-point cubic (n=4) to a single value
// at parameter u via three successive reduceOnce levels (4->3->2->1).
func deCasteljau(pts [4]ordinate.Ordinate, u ordinate.Ordinate) ordinate.Ordinate {
	cur := pts
	for n := 4; n > 1; n-- {
		cur = reduceOnce(cur, n, u)
	}

	return cur[0]
}

// reduceOnceDual is reduceOnce's dual-ordinate sibling: each point is
// held as a dual with zero derivative (it does not depend on u), and u
// itself carries the derivative being propagated.
func reduceOnceDual(pts [4]ordinate.DualOrdinate, n int, u ordinate.DualOrdinate) [4]ordinate.DualOrdinate {
	var out [4]ordinate.DualOrdinate
	for i := 0; i < n-1; i++ {
		out[i] = pts[i].Add(u.Mul(pts[i+1].Sub(pts[i])))
	}

	return out
}

// deCasteljauDual is deCasteljau's dual sibling: a single pass at a dual
// u = (u0, 1) yields both B(u0) (the R component) and dB/du (the I
// component).
func deCasteljauDual(pts [4]ordinate.Ordinate, u ordinate.DualOrdinate) ordinate.DualOrdinate {
	var dualPts [4]ordinate.DualOrdinate
	for i, p := range pts {
		dualPts[i] = ordinate.Constant(p)
	}

	cur := dualPts
	for n := 4; n > 1; n-- {
		cur = reduceOnceDual(cur, n, u)
	}

	return cur[0]
}

// bezier0 evaluates the specialized cubic B(u) = u^3*p3 - 3u^2(u-1)*p2 +
// 3u(u-1)^2*p1, the form used when the first control value has already
// been shifted to 0 (so find_u can work in "distance from p0" space).
func bezier0(u, p1, p2, p3 ordinate.Ordinate) ordinate.Ordinate {
	uf := float64(u)
	u2 := uf * uf
	u3 := u2 * uf
	um1 := uf - 1

	term3 := ordinate.Ordinate(u3).Mul(p3)
	term2 := ordinate.Ordinate(-3 * u2 * um1).Mul(p2)
	term1 := ordinate.Ordinate(3 * uf * um1 * um1).Mul(p1)

	return term3.Add(term2).Add(term1)
}

// bezier0Dual is bezier0's dual sibling.
func bezier0Dual(u ordinate.DualOrdinate, p1, p2, p3 ordinate.Ordinate) ordinate.DualOrdinate {
	one := ordinate.Constant(1)
	three := ordinate.Constant(3)
	negThree := ordinate.Constant(-3)

	u2 := u.Mul(u)
	u3 := u2.Mul(u)
	um1 := u.Sub(one)

	term3 := u3.Mul(ordinate.Constant(p3))
	term2 := negThree.Mul(u2).Mul(um1).Mul(ordinate.Constant(p2))
	term1 := three.Mul(u).Mul(um1).Mul(um1).Mul(ordinate.Constant(p1))

	return term3.Add(term2).Add(term1)
}

// findU inverts a monotone nondecreasing cubic B(u) with B(0)=0,
// B(1)=p3, solving B(u) = x for u in [0,1] via one regula-falsi step
// followed by the Illinois modification, capped at FindUMaxIterations or
// until the bracket width collapses to FindUTolerance.
func findU(x, p1, p2, p3 ordinate.Ordinate) float64 {
	if x.LessThan(0) || x.Equal(0) {
		return 0
	}
	if !x.LessThan(p3) {
		return 1
	}

	eval := func(u float64) float64 {
		return float64(bezier0(ordinate.Ordinate(u), p1, p2, p3)) - float64(x)
	}

	// Initial bracket [a, b] = [0, 1] with signed residuals.
	a, b := 0.0, 1.0
	fa, fb := eval(a), eval(b)

	// side tracks which endpoint was retained (not replaced) on the last
	// step: -1 means a is stagnant, 1 means b is stagnant, 0 means
	// neither (first step). The Illinois modification halves the
	// stagnant endpoint's residual to avoid the slow one-sided
	// convergence plain regula-falsi is prone to.
	side := 0
	for i := 0; i < FindUMaxIterations; i++ {
		if math.Abs(b-a) <= FindUTolerance {
			break
		}

		// One regula-falsi (false position) step.
		c := (a*fb - b*fa) / (fb - fa)
		fc := eval(c)
		if fc == 0 {
			return c
		}

		if sameSign(fc, fb) {
			// New bracket [a, c]; a stagnates if it was also retained
			// last iteration, in which case halve fa to break stagnation.
			if side == -1 {
				fa /= 2
			}
			b, fb = c, fc
			side = -1
		} else {
			if side == 1 {
				fb /= 2
			}
			a, fa = c, fc
			side = 1
		}
	}

	if math.Abs(fa) < math.Abs(fb) {
		return a
	}

	return b
}

func sameSign(x, y float64) bool {
	return (x > 0 && y > 0) || (x < 0 && y < 0)
}

// ActualOrder returns 1 (linear), 2 (quadratic), or 3 (cubic) for the
// control points p0..p3 by testing the magnitude of the cubic and
// quadratic coefficients of the Bernstein-to-power-basis expansion
// against fixed thresholds; it returns -1 for a degenerate (coincident)
// segment.
func ActualOrder(p0, p1, p2, p3 ordinate.Ordinate) int {
	a := float64(p3.Sub(p0)) - 3*float64(p2.Sub(p1))
	b := 3 * (float64(p0) - 2*float64(p1) + float64(p2))
	c := 3 * float64(p1.Sub(p0))

	if math.Abs(a) > ActualOrderCubicEps {
		return 3
	}
	if math.Abs(b) > ActualOrderLinearEps {
		return 2
	}
	if math.Abs(c) > ActualOrderLinearEps {
		return 1
	}

	return -1
}

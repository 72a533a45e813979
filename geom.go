// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package tess

import (
	"math"
)

func vertEq(u, v point) bool {
	return u.s == v.s && u.t == v.t
}

// vertLeq is the sweep order: u <= v iff u.s < v.s, or u.s == v.s and
// u.t <= v.t.
func vertLeq(u, v point) bool {
	return u.s < v.s || (u.s == v.s && u.t <= v.t)
}

// transLeq is vertLeq with s and t exchanged.
func transLeq(u, v point) bool {
	return u.t < v.t || (u.t == v.t && u.s <= v.s)
}

// edgeEval: given u, v, w such that vertLeq(u, v) && vertLeq(v, w),
// evaluates the t-coord of the edge uw at the s-coord of v and returns
// v.t - (uw)(v.s), the signed distance from uw to v. If uw is vertical
// (and thus passes through v) the result is zero.
//
// The result is accurate even when v is very close to u or w. With
// v.t = 0 the negated result r satisfies min(u.t, w.t) <= r <= max(u.t, w.t).
func edgeEval(u, v, w point) float64 {
	assert(vertLeq(u, v) && vertLeq(v, w), "edgeEval ordering")

	gapL := v.s - u.s
	gapR := w.s - v.s

	if gapL+gapR > 0 {
		if gapL < gapR {
			return (v.t - u.t) + (u.t-w.t)*(gapL/(gapL+gapR))
		}
		return (v.t - w.t) + (w.t-u.t)*(gapR/(gapL+gapR))
	}
	// vertical line
	return 0
}

// edgeSign returns a number whose sign matches edgeEval(u, v, w) but which
// is cheaper to evaluate: > 0, == 0 or < 0 as v is above, on, or below uw.
func edgeSign(u, v, w point) float64 {
	assert(vertLeq(u, v) && vertLeq(v, w), "edgeSign ordering")

	gapL := v.s - u.s
	gapR := w.s - v.s

	if gapL+gapR > 0 {
		return (v.t-w.t)*gapL + (v.t-u.t)*gapR
	}
	// vertical line
	return 0
}

// transEval is edgeEval with s and t exchanged.
func transEval(u, v, w point) float64 {
	assert(transLeq(u, v) && transLeq(v, w), "transEval ordering")

	gapL := v.t - u.t
	gapR := w.t - v.t

	if gapL+gapR > 0 {
		if gapL < gapR {
			return (v.s - u.s) + (u.s-w.s)*(gapL/(gapL+gapR))
		}
		return (v.s - w.s) + (w.s-u.s)*(gapR/(gapL+gapR))
	}
	// horizontal line
	return 0
}

// transSign is edgeSign with s and t exchanged.
func transSign(u, v, w point) float64 {
	assert(transLeq(u, v) && transLeq(v, w), "transSign ordering")

	gapL := v.t - u.t
	gapR := w.t - v.t

	if gapL+gapR > 0 {
		return (v.s-w.s)*gapL + (v.s-u.s)*gapR
	}
	// horizontal line
	return 0
}

// vertCCW reports whether u, v, w turn counter-clockwise (or are
// collinear). Nearly degenerate inputs give unreliable answers.
func vertCCW(u, v, w point) bool {
	return u.s*(v.t-w.t)+v.s*(w.t-u.t)+w.s*(u.t-v.t) >= 0
}

func vertL1dist(u, v point) float64 {
	return math.Abs(u.s-v.s) + math.Abs(u.t-v.t)
}

// interpolate returns (b*x + a*y) / (a + b), or (x + y) / 2 if a == b == 0.
// a and b must be non-negative; slightly negative values are clamped.
// The result always lies between x and y.
func interpolate(a, x, b, y float64) float64 {
	if a < 0 {
		a = 0
	}
	if b < 0 {
		b = 0
	}
	if a <= b {
		if b == 0 {
			return (x + y) / 2
		}
		return x + (y-x)*(a/(a+b))
	}
	return y + (x-y)*(b/(a+b))
}

// edgeIntersect returns the intersection of edges (o1, d1) and (o2, d2).
// The result lies in the intersection of the bounding rectangles of both
// edges.
//
// s is interpolated between the two middle vertices in vertLeq order, then
// t the same way in transLeq order.
func edgeIntersect(o1, d1, o2, d2 point) point {
	var v point

	if !vertLeq(o1, d1) {
		o1, d1 = d1, o1
	}
	if !vertLeq(o2, d2) {
		o2, d2 = d2, o2
	}
	if !vertLeq(o1, o2) {
		o1, o2 = o2, o1
		d1, d2 = d2, d1
	}

	switch {
	case !vertLeq(o2, d1):
		// No overlap in s; take the midpoint of the gap.
		v.s = (o2.s + d1.s) / 2
	case vertLeq(d1, d2):
		// Interpolate between o2 and d1.
		z1 := edgeEval(o1, o2, d1)
		z2 := edgeEval(o2, d1, d2)
		if z1+z2 < 0 {
			z1 = -z1
			z2 = -z2
		}
		v.s = interpolate(z1, o2.s, z2, d1.s)
	default:
		// Interpolate between o2 and d2.
		z1 := edgeSign(o1, o2, d1)
		z2 := -edgeSign(o1, d2, d1)
		if z1+z2 < 0 {
			z1 = -z1
			z2 = -z2
		}
		v.s = interpolate(z1, o2.s, z2, d2.s)
	}

	if !transLeq(o1, d1) {
		o1, d1 = d1, o1
	}
	if !transLeq(o2, d2) {
		o2, d2 = d2, o2
	}
	if !transLeq(o1, o2) {
		o1, o2 = o2, o1
		d1, d2 = d2, d1
	}

	switch {
	case !transLeq(o2, d1):
		v.t = (o2.t + d1.t) / 2
	case transLeq(d1, d2):
		z1 := transEval(o1, o2, d1)
		z2 := transEval(o2, d1, d2)
		if z1+z2 < 0 {
			z1 = -z1
			z2 = -z2
		}
		v.t = interpolate(z1, o2.t, z2, d1.t)
	default:
		z1 := transSign(o1, o2, d1)
		z2 := -transSign(o1, d2, d1)
		if z1+z2 < 0 {
			z1 = -z1
			z2 = -z2
		}
		v.t = interpolate(z1, o2.t, z2, d2.t)
	}
	return v
}

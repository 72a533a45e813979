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

// Option configures a Tesselator during creation.
//
// Example:
//
//	t := tess.NewTesselator(
//		tess.WithWindingRule(tess.WindingNonZero),
//		tess.WithPolySize(6),
//	)
type Option func(*options)

type options struct {
	rule          WindingRule
	combine       CombineFunc
	elementType   ElementType
	polySize      int
	extraVertices int
	maxVertices   int
	maxEdges      int
}

func defaultOptions() options {
	return options{
		rule:        WindingOdd,
		elementType: Polygons,
		polySize:    3,
	}
}

// WithWindingRule sets the rule classifying faces as inside. The default
// is WindingOdd. A nil rule keeps the default.
func WithWindingRule(rule WindingRule) Option {
	return func(o *options) {
		if rule != nil {
			o.rule = rule
		}
	}
}

// WithCombine sets the callback that assigns client ids to vertices created
// at edge intersections. Without it such vertices get NoClient.
func WithCombine(fn CombineFunc) Option {
	return func(o *options) {
		o.combine = fn
	}
}

// WithElementType selects what Tesselate outputs.
func WithElementType(t ElementType) Option {
	return func(o *options) {
		o.elementType = t
	}
}

// WithPolySize sets the maximum number of vertices per output polygon.
// Values above 3 merge triangles into convex polygons. Values below 3 are
// treated as 3.
func WithPolySize(n int) Option {
	return func(o *options) {
		o.polySize = max(n, 3)
	}
}

// WithExtraVertices bounds the event queue to the input vertex count plus
// max(8, n) intersection vertices. Zero, the default, means unbounded.
func WithExtraVertices(n int) Option {
	return func(o *options) {
		o.extraVertices = max(n, 0)
	}
}

// WithMaxVertices bounds the number of live mesh vertices. Zero means
// unbounded.
func WithMaxVertices(n int) Option {
	return func(o *options) {
		o.maxVertices = max(n, 0)
	}
}

// WithMaxEdges bounds the number of live mesh edges. Zero means unbounded.
func WithMaxEdges(n int) Option {
	return func(o *options) {
		o.maxEdges = max(n, 0)
	}
}

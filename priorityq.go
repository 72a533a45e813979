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
	"container/heap"
	"fmt"
)

// pqHandle identifies a queued vertex. It stays valid until the vertex is
// extracted or deleted.
type pqHandle int32

const invalidHandle pqHandle = -1

// priorityQ orders mesh vertices by vertLeq. It implements heap.Interface
// over handles; pos tracks where each handle sits in the heap so that
// arbitrary handles can be deleted.
type priorityQ struct {
	mesh     *Mesh
	handles  []pqHandle
	keys     []VertexID
	pos      []int
	free     []pqHandle
	capacity int
}

func newPriorityQ(mesh *Mesh, capacity int) *priorityQ {
	return &priorityQ{
		mesh:     mesh,
		capacity: capacity,
	}
}

func (p *priorityQ) Len() int {
	return len(p.handles)
}

func (p *priorityQ) Less(i, j int) bool {
	a := p.keys[p.handles[i]]
	b := p.keys[p.handles[j]]
	u := p.mesh.pt(a)
	v := p.mesh.pt(b)
	if u.s != v.s {
		return u.s < v.s
	}
	if u.t != v.t {
		return u.t < v.t
	}
	return a < b
}

func (p *priorityQ) Swap(i, j int) {
	p.handles[i], p.handles[j] = p.handles[j], p.handles[i]
	p.pos[p.handles[i]] = i
	p.pos[p.handles[j]] = j
}

func (p *priorityQ) Push(x any) {
	h := x.(pqHandle)
	p.pos[h] = len(p.handles)
	p.handles = append(p.handles, h)
}

func (p *priorityQ) Pop() any {
	old := p.handles
	h := old[len(old)-1]
	p.handles = old[:len(old)-1]
	p.pos[h] = -1
	return h
}

// insert queues v and returns its handle.
func (p *priorityQ) insert(v VertexID) (pqHandle, error) {
	if p.capacity > 0 && len(p.handles) >= p.capacity {
		return invalidHandle, fmt.Errorf("tess: priority queue full at %d vertices: %w", p.capacity, ErrResourceExhausted)
	}
	var h pqHandle
	if n := len(p.free); n > 0 {
		h = p.free[n-1]
		p.free = p.free[:n-1]
		p.keys[h] = v
	} else {
		h = pqHandle(len(p.keys))
		p.keys = append(p.keys, v)
		p.pos = append(p.pos, -1)
	}
	heap.Push(p, h)
	return h, nil
}

// extractMin removes and returns the smallest vertex, or NoVertex if the
// queue is empty.
func (p *priorityQ) extractMin() VertexID {
	if len(p.handles) == 0 {
		return NoVertex
	}
	h := heap.Pop(p).(pqHandle)
	return p.release(h)
}

// minimum returns the smallest vertex without removing it.
func (p *priorityQ) minimum() VertexID {
	if len(p.handles) == 0 {
		return NoVertex
	}
	return p.keys[p.handles[0]]
}

// delete removes the vertex behind h. Invalid or stale handles are ignored.
func (p *priorityQ) delete(h pqHandle) {
	if h < 0 || int(h) >= len(p.pos) || p.pos[h] < 0 {
		return
	}
	heap.Remove(p, p.pos[h])
	p.release(h)
}

func (p *priorityQ) release(h pqHandle) VertexID {
	v := p.keys[h]
	p.keys[h] = NoVertex
	p.free = append(p.free, h)
	p.mesh.verts[v].pqHandle = invalidHandle
	return v
}

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

type dictNode struct {
	key  *activeRegion
	prev *dictNode
	next *dictNode
}

// dict keeps active regions sorted by leq along the sweep line. It is a
// circular doubly linked list; the head node has a nil key, so Succ of the
// maximum and Pred of the minimum both have a nil key.
type dict struct {
	head dictNode
	leq  func(a, b *activeRegion) bool
}

func newDict(leq func(a, b *activeRegion) bool) *dict {
	d := &dict{
		leq: leq,
	}
	d.head.next = &d.head
	d.head.prev = &d.head
	return d
}

// insertBefore inserts key in sorted position, searching backwards from n.
func (d *dict) insertBefore(n *dictNode, key *activeRegion) *dictNode {
	for {
		n = n.prev
		if n.key == nil || d.leq(n.key, key) {
			break
		}
	}

	nn := &dictNode{
		key:  key,
		next: n.next,
		prev: n,
	}
	n.next.prev = nn
	n.next = nn
	return nn
}

func (d *dict) insert(key *activeRegion) *dictNode {
	return d.insertBefore(&d.head, key)
}

func (d *dict) delete(n *dictNode) {
	n.next.prev = n.prev
	n.prev.next = n.next
}

// search returns the node with the smallest key greater than or equal to
// key, or the head if there is none.
func (d *dict) search(key *activeRegion) *dictNode {
	n := &d.head
	for {
		n = n.next
		if n.key == nil || d.leq(key, n.key) {
			break
		}
	}
	return n
}

func (d *dict) min() *dictNode {
	return d.head.next
}

func (n *dictNode) succ() *dictNode {
	return n.next
}

func (n *dictNode) pred() *dictNode {
	return n.prev
}

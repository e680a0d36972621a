// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"image"
	"slices"

	"cogentcore.org/adaptive/events"
	"cogentcore.org/adaptive/swipe"
)

// Node is a node of the widget tree of a [Host].
type Node struct {

	// Name is the name of the node.
	Name string

	// Widget is the widget at this node.
	Widget any

	// Listeners are the event listeners of the node.
	Listeners events.PhaseListeners

	parent   *Node
	children []*Node

	// rect returns the area of the node, in window coordinates.
	rect func() image.Rectangle

	// visible returns whether the node takes input.
	visible func() bool
}

// NodeParent implements [swipe.Node].
func (n *Node) NodeParent() swipe.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// NodeWidget implements [swipe.Node].
func (n *Node) NodeWidget() any {
	return n.Widget
}

// Parent returns the parent node, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Rect returns the area of the node, in window coordinates.
func (n *Node) Rect() image.Rectangle {
	if n.rect == nil {
		return image.Rectangle{}
	}
	return n.rect()
}

// Visible returns whether the node and all of its ancestors are visible.
func (n *Node) Visible() bool {
	for ; n != nil; n = n.parent {
		if n.visible != nil && !n.visible() {
			return false
		}
	}
	return true
}

// AddChild adds a new child node with the given name and widget,
// whose area is given by rect.
func (n *Node) AddChild(name string, w any, rect func() image.Rectangle) *Node {
	c := &Node{Name: name, Widget: w, parent: n, rect: rect}
	n.children = append(n.children, c)
	return c
}

// NodeAt returns the innermost visible node containing the given
// point, in window coordinates, or nil. Later children are on top.
func (n *Node) NodeAt(p image.Point) *Node {
	if !n.Visible() || !p.In(n.Rect()) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if c := n.children[i].NodeAt(p); c != nil {
			return c
		}
	}
	return n
}

// Path returns the nodes from the root down to this node.
func (n *Node) Path() []*Node {
	var path []*Node
	for c := n; c != nil; c = c.parent {
		path = append(path, c)
	}
	slices.Reverse(path)
	return path
}

// Find returns the first node with the given name, depth first, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

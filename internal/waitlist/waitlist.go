// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package waitlist implements an intrusive FIFO wait list: park a
// goroutine on a list of waiters, wake the front one, and support O(1)
// cancellation-time removal without losing a wake that raced it.
//
// Every exported method requires the caller to already hold whatever lock
// guards the list — this package has no lock of its own. That mirrors the
// original's assumption that wait-list operations happen in task context,
// where nothing else can run concurrently; in this Go rendition, the
// caller (code.hybscloud.com/rtq.Queue) holds its own mutex across every
// call.
package waitlist

import "container/list"

// Node represents one parked goroutine. The zero value is not usable;
// obtain a Node from (*List).Enroll.
type Node struct {
	elem  *list.Element
	ready chan struct{}
	woken bool
}

// Ready returns a channel that becomes readable exactly once, when the
// node is woken by WakeOne.
func (n *Node) Ready() <-chan struct{} {
	return n.ready
}

// List is a FIFO of parked Nodes.
type List struct {
	l list.List
}

// Enroll appends a new Node to the tail of the list. The caller must hold
// its own lock across this call and every other operation on n or l until
// n is removed (by WakeOne observing it at the front, or by Remove).
func (l *List) Enroll() *Node {
	n := &Node{ready: make(chan struct{}, 1)}
	n.elem = l.l.PushBack(n)
	return n
}

// Remove detaches n from the list, wherever it currently sits, in O(1).
// It reports whether n had already been woken (its Ready channel already
// signalled) — the caller must forward that wake token to the next
// same-direction waiter via WakeOne, or it is lost, per the "wake-token
// forwarding" requirement.
func (l *List) Remove(n *Node) (wasWoken bool) {
	if n.elem != nil {
		l.l.Remove(n.elem)
		n.elem = nil
	}
	return n.woken
}

// WakeOne detaches the front node, if any, and signals its Ready channel.
// Reports whether a waiter was woken. No-op on an empty list.
func (l *List) WakeOne() bool {
	front := l.l.Front()
	if front == nil {
		return false
	}
	n := front.Value.(*Node)
	l.l.Remove(front)
	n.elem = nil
	n.woken = true
	n.ready <- struct{}{}
	return true
}

// Len reports the current number of enrolled (not yet woken-and-removed)
// waiters.
func (l *List) Len() int {
	return l.l.Len()
}

// Empty reports whether the list has no enrolled waiters.
func (l *List) Empty() bool {
	return l.l.Len() == 0
}

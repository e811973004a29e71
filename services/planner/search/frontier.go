// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

// frontierItem is one enqueued candidate. A node may be enqueued more
// than once with different costs; the stale entries are skipped on
// dequeue (lazy deletion).
type frontierItem[N Node] struct {
	node     N
	key      string
	gCost    float64
	priority float64 // gCost + heuristic at enqueue time
	seq      uint64  // insertion sequence, breaks priority ties
}

// frontier is a min-heap over estimated total cost, implementing
// container/heap.Interface. Lower priority wins; equal priorities are
// served in insertion order.
type frontier[N Node] struct {
	items []*frontierItem[N]
	seq   uint64
}

func (f *frontier[N]) Len() int { return len(f.items) }

func (f *frontier[N]) Less(i, j int) bool {
	if f.items[i].priority != f.items[j].priority {
		return f.items[i].priority < f.items[j].priority
	}
	return f.items[i].seq < f.items[j].seq
}

func (f *frontier[N]) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
}

func (f *frontier[N]) Push(x any) {
	item := x.(*frontierItem[N])
	item.seq = f.seq
	f.seq++
	f.items = append(f.items, item)
}

func (f *frontier[N]) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return item
}

package model

import "sort"

// Partition is a candidate assignment: one slice of item indices per bin.
type Partition [][]int

// BinCount returns the number of bins, empty ones included.
func (p Partition) BinCount() int {
	return len(p)
}

// ItemCount returns the total number of item references across all bins.
func (p Partition) ItemCount() int {
	var n int
	for _, bin := range p {
		n += len(bin)
	}
	return n
}

// Flatten returns every item index in bin order.
func (p Partition) Flatten() []int {
	out := make([]int, 0, p.ItemCount())
	for _, bin := range p {
		out = append(out, bin...)
	}
	return out
}

// Sorted returns the flattened item indices in ascending order.
func (p Partition) Sorted() []int {
	out := p.Flatten()
	sort.Ints(out)
	return out
}

// Clone returns a deep copy.
func (p Partition) Clone() Partition {
	if p == nil {
		return nil
	}
	out := make(Partition, len(p))
	for i, bin := range p {
		out[i] = append([]int{}, bin...)
	}
	return out
}

// EmptyBins returns the number of bins with no items.
func (p Partition) EmptyBins() int {
	var n int
	for _, bin := range p {
		if len(bin) == 0 {
			n++
		}
	}
	return n
}

package gol

// WorkAssignment describes the linear indices Start, Start+Stride, Start+2*Stride, ...
// below Size*Size that one worker evaluates.
type WorkAssignment struct {
	Worker int
	Start  int
	Stride int
	Size   int
}

// Indices lists the assigned linear indices in increasing order.
func (a WorkAssignment) Indices() []int {
	cells := a.Size * a.Size
	if a.Start >= cells {
		return nil
	}
	indices := make([]int, 0, (cells-a.Start+a.Stride-1)/a.Stride)
	for index := a.Start; index < cells; index += a.Stride {
		indices = append(indices, index)
	}
	return indices
}

// Partition deals the cells of a size x size board to workers by stride.
// Worker k takes every index congruent to k modulo the worker count, so the
// assignments are disjoint and together cover the whole board. The thread
// count is clamped to the number of cells, no worker is ever left idle.
func Partition(size, threads int) []WorkAssignment {
	nthread := threads
	if nthread > size*size {
		nthread = size * size
	}
	assignments := make([]WorkAssignment, nthread)
	for k := 0; k != nthread; k++ {
		assignments[k] = WorkAssignment{
			Worker: k,
			Start:  k,
			Stride: nthread,
			Size:   size,
		}
	}
	return assignments
}

package worker

import "sort"

// Reorderer restores submission order for results that arrive out of order.
// Items must be submitted with indexes 0, 1, 2, ... It is not safe for
// concurrent use; feed it from the single goroutine reading Results.
type Reorderer struct {
	next    int
	pending map[int]ProcessResult
}

// NewReorderer creates a reorderer expecting index 0 first.
func NewReorderer() *Reorderer {
	return &Reorderer{pending: make(map[int]ProcessResult)}
}

// Push adds a result and returns the results that are now ready, in index
// order. The returned slice is empty while a lower index is outstanding.
func (r *Reorderer) Push(res ProcessResult) []ProcessResult {
	r.pending[res.Index()] = res

	var ready []ProcessResult
	for {
		next, ok := r.pending[r.next]
		if !ok {
			return ready
		}
		delete(r.pending, r.next)
		ready = append(ready, next)
		r.next++
	}
}

// Flush returns any results still held back, in index order. Gaps are left
// by items a stopped pool never processed.
func (r *Reorderer) Flush() []ProcessResult {
	rest := make([]ProcessResult, 0, len(r.pending))
	for _, res := range r.pending {
		rest = append(rest, res)
	}
	sort.Slice(rest, func(i, j int) bool {
		return rest[i].Index() < rest[j].Index()
	})
	r.pending = make(map[int]ProcessResult)
	if n := len(rest); n > 0 {
		r.next = rest[n-1].Index() + 1
	}
	return rest
}

// Pending returns the number of results held back.
func (r *Reorderer) Pending() int {
	return len(r.pending)
}

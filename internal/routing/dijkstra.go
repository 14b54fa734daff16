package routing

import (
	"container/heap"
	"fmt"
	"math"
)

// Unreachable is the distance reported for departments with no path from the start.
const Unreachable int64 = math.MaxInt64

// ShortestDistances returns the minimum total link weight from start to every
// department. Departments that cannot be reached map to Unreachable.
func (g *DepartmentGraph) ShortestDistances(start string) (map[string]int64, error) {
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStart, start)
	}

	dist := make(map[string]int64, len(g.nodes))
	for _, n := range g.nodes {
		dist[n] = Unreachable
	}
	dist[start] = 0

	pq := make(frontier, 0, len(g.nodes))
	heap.Push(&pq, &frontierItem{node: start, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*frontierItem)

		// stale entry, a shorter distance was pushed later
		if item.dist > dist[item.node] {
			continue
		}

		for _, e := range g.neighbors(item.node) {
			// a sum at or past Unreachable would overflow or read as unreachable
			if e.Weight >= Unreachable-item.dist {
				continue
			}
			d := item.dist + e.Weight
			if d < dist[e.To] {
				dist[e.To] = d
				heap.Push(&pq, &frontierItem{node: e.To, dist: d})
			}
		}
	}

	return dist, nil
}

type frontierItem struct {
	node string
	dist int64
}

// frontier is a min-heap of frontierItem ordered by dist.
type frontier []*frontierItem

func (pq frontier) Len() int           { return len(pq) }
func (pq frontier) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq frontier) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

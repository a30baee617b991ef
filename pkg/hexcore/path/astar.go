package path

import (
	"container/heap"
	"errors"
	"fmt"
	"time"

	"github.com/gravitas-games/hexroute/pkg/hexcore/grid"
	"github.com/gravitas-games/hexroute/pkg/hexcore/hex"
)

// ErrNoPathFound is returned when the frontier empties before reaching the
// goal. On a grid built by package grid this means the neighbour relation was
// disconnected by the caller.
var ErrNoPathFound = errors.New("no path found")

// AStar computes a minimum-cost path using the A* algorithm.
// - start, goal: hexes, compared by coordinate
// - h: heuristic for a hex, must not overestimate the remaining cost
// - neighbors: returns adjacent hexes to explore
// - cost: edge cost between two adjacent hexes (values below 1 count as 1)
// - obs: receives search statistics, may be nil
// Returns the path including start and goal.
//
// The search stops when the goal is popped from the frontier. Entries with
// equal priority are popped in insertion order.
func AStar(start, goal hex.Hex,
	h func(a hex.Hex) int,
	neighbors func(a hex.Hex) []hex.Hex,
	cost func(a, b hex.Hex) int,
	obs Observer,
) (Path, error) {
	began := time.Now()
	stats := SearchStats{}
	defer func() {
		if obs != nil {
			stats.Duration = time.Since(began)
			obs.ObserveSearch(stats)
		}
	}()

	open := &nodePQ{}
	heap.Init(open)
	seq := 0
	push := func(a hex.Hex, g, f int) {
		heap.Push(open, &pqNode{h: a, g: g, f: f, seq: seq})
		seq++
		stats.Pushed++
	}

	startK, goalK := start.Key(), goal.Key()
	g := map[hex.Key]int{startK: 0}
	came := map[hex.Key]hex.Hex{}
	push(start, 0, 0)

	for open.Len() > 0 {
		node := heap.Pop(open).(*pqNode)
		cur := node.h
		ck := cur.Key()
		if node.g > g[ck] {
			// superseded by a cheaper push
			continue
		}
		stats.Expanded++
		if ck == goalK {
			p := reconstruct(came, startK, cur)
			stats.Found = true
			stats.Cost = g[ck]
			stats.Length = p.Length()
			return p, nil
		}
		for _, nb := range neighbors(cur) {
			nk := nb.Key()
			step := cost(cur, nb)
			if step <= 0 {
				step = 1
			}
			tentative := g[ck] + step
			old, ok := g[nk]
			if !ok || tentative < old {
				g[nk] = tentative
				came[nk] = cur
				push(nb, tentative, tentative+h(nb))
			}
		}
	}
	return Path{}, fmt.Errorf("%v -> %v after %d expansions: %w", start, goal, stats.Expanded, ErrNoPathFound)
}

// reconstruct walks came from the goal back to start.
func reconstruct(came map[hex.Key]hex.Hex, startK hex.Key, goal hex.Hex) Path {
	hexes := []hex.Hex{goal}
	cur := goal
	for cur.Key() != startK {
		cur = came[cur.Key()]
		hexes = append(hexes, cur)
	}
	for i, j := 0, len(hexes)-1; i < j; i, j = i+1, j-1 {
		hexes[i], hexes[j] = hexes[j], hexes[i]
	}
	return Path{hexes: hexes}
}

// StepCost returns the cost of moving from one hex to the next. Only the
// destination terrain counts.
func StepCost(_, to hex.Hex) int {
	return to.Terrain().MoveCost()
}

// Compute returns a minimum-cost path from start to end over the grid's
// neighbour relation, using the wrapped distance to end as heuristic.
// Endpoints are looked up in the grid so their current terrain is used.
func Compute(g *grid.Grid, start, end hex.Hex) (Path, error) {
	return compute(g, start, end, nil)
}

func compute(g *grid.Grid, start, end hex.Hex, obs Observer) (Path, error) {
	s, err := g.Resolve(start)
	if err != nil {
		return Path{}, fmt.Errorf("path start: %w", err)
	}
	e, err := g.Resolve(end)
	if err != nil {
		return Path{}, fmt.Errorf("path end: %w", err)
	}
	heuristic := func(next hex.Hex) int { return g.WrappedDistance(e, next) }
	return AStar(s, e, heuristic, g.Neighbours, StepCost, obs)
}

// PQ implementation
type pqNode struct {
	h   hex.Hex
	g   int
	f   int
	seq int
}

type nodePQ []*pqNode

func (p nodePQ) Len() int { return len(p) }
func (p nodePQ) Less(i, j int) bool {
	if p[i].f != p[j].f {
		return p[i].f < p[j].f
	}
	return p[i].seq < p[j].seq
}
func (p nodePQ) Swap(i, j int) { p[i], p[j] = p[j], p[i] }
func (p *nodePQ) Push(x any)   { *p = append(*p, x.(*pqNode)) }
func (p *nodePQ) Pop() any {
	old := *p
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*p = old[:n-1]
	return x
}

package path

import (
	"fmt"

	"github.com/gravitas-games/hexroute/pkg/hexcore/grid"
	"github.com/gravitas-games/hexroute/pkg/hexcore/hex"
)

// Flood returns the step count from `from` to every reachable hex, ignoring
// terrain. It is the brute-force answer WrappedDistance must agree with.
func Flood(g *grid.Grid, from hex.Hex) (map[hex.Key]int, error) {
	start, err := g.Resolve(from)
	if err != nil {
		return nil, fmt.Errorf("flood: %w", err)
	}
	dist := map[hex.Key]int{start.Key(): 0}
	q := []hex.Hex{start}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		for _, nxt := range g.Neighbours(cur) {
			if _, seen := dist[nxt.Key()]; seen {
				continue
			}
			dist[nxt.Key()] = dist[cur.Key()] + 1
			q = append(q, nxt)
		}
	}
	return dist, nil
}

// BFS finds a path with the fewest steps from start to goal, ignoring
// terrain. Neighbours are visited in offset order.
func BFS(g *grid.Grid, start, goal hex.Hex) (Path, error) {
	s, err := g.Resolve(start)
	if err != nil {
		return Path{}, fmt.Errorf("bfs start: %w", err)
	}
	e, err := g.Resolve(goal)
	if err != nil {
		return Path{}, fmt.Errorf("bfs goal: %w", err)
	}
	if s.Equal(e) {
		return Path{hexes: []hex.Hex{s}}, nil
	}

	prev := make(map[hex.Key]hex.Hex)
	visited := map[hex.Key]bool{s.Key(): true}
	q := []hex.Hex{s}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		for _, nxt := range g.Neighbours(cur) {
			k := nxt.Key()
			if visited[k] {
				continue
			}
			visited[k] = true
			prev[k] = cur
			if k == e.Key() {
				return reconstruct(prev, s.Key(), nxt), nil
			}
			q = append(q, nxt)
		}
	}
	return Path{}, fmt.Errorf("%v -> %v: %w", s, e, ErrNoPathFound)
}

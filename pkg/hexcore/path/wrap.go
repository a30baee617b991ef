package path

import (
	"fmt"

	"github.com/gravitas-games/hexroute/pkg/hexcore/grid"
	"github.com/gravitas-games/hexroute/pkg/hexcore/hex"
)

// Resolver answers distance and path queries against one grid, trying each
// way round the edges when wrap is enabled.
type Resolver struct {
	grid *grid.Grid
	obs  Observer
}

// NewResolver returns a resolver for g. A nil obs discards search statistics.
func NewResolver(g *grid.Grid, obs Observer) *Resolver {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Resolver{grid: g, obs: obs}
}

func (r *Resolver) Grid() *grid.Grid { return r.grid }

// WrappedDistance returns the step count between a and b under the grid's
// current wrap setting.
func (r *Resolver) WrappedDistance(a, b hex.Hex) int {
	return r.grid.WrappedDistance(a, b)
}

// WrappedPath returns a minimum-cost path from start to end. See WrappedPath.
func (r *Resolver) WrappedPath(start, end hex.Hex) (Path, error) {
	if !r.grid.Wrap() {
		return compute(r.grid, start, end, r.obs)
	}

	// Bring the candidate (larger column) endpoint around the west and north
	// edges. HexAt reduces every translation back onto the grid, so targets
	// that resolve to the same cell share one search.
	candidate, _ := grid.WrapCandidate(start, end)
	candidateIsStart := candidate.Equal(start) && !candidate.Equal(end)

	var best Path
	found := false
	searched := make(map[hex.Key]bool, 4)
	for _, t := range r.grid.WrapTranslations() {
		target, err := r.grid.HexAt(candidate.Row()+t.DRow, candidate.Col()+t.DCol)
		if err != nil {
			return Path{}, fmt.Errorf("wrap candidate %v: %w", candidate, err)
		}
		if searched[target.Key()] {
			continue
		}
		searched[target.Key()] = true

		from, to := start, target
		if candidateIsStart {
			from, to = target, end
		}
		p, err := compute(r.grid, from, to, r.obs)
		if err != nil {
			return Path{}, err
		}
		if !found || shorter(p, best) {
			best = p
			found = true
		}
	}
	return best, nil
}

// shorter orders paths by hex count, then by cost.
func shorter(a, b Path) bool {
	if a.Len() != b.Len() {
		return a.Len() < b.Len()
	}
	return a.Cost() < b.Cost()
}

// WrappedPath returns a minimum-cost path from start to end on g. When wrap is
// disabled this is Compute. When enabled, the larger-column endpoint is
// translated by the grid's wrap translations and the path with the fewest
// hexes among the candidates is kept. The result always starts with start and
// ends with end.
func WrappedPath(g *grid.Grid, start, end hex.Hex) (Path, error) {
	return NewResolver(g, nil).WrappedPath(start, end)
}

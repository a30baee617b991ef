package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/hexroute/pkg/hexcore/grid"
	"github.com/gravitas-games/hexroute/pkg/hexcore/hex"
	"github.com/gravitas-games/hexroute/pkg/hexcore/path"
)

var distanceCmd = &cobra.Command{
	Use:   "distance ROW,COL ROW,COL",
	Short: "Print the step count between two hexes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := resolveHex(args[0])
		if err != nil {
			return err
		}
		b, err := resolveHex(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), gm.Resolver.WrappedDistance(a, b))
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path ROW,COL ROW,COL",
	Short: "Print a minimum-cost path between two hexes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := resolveHex(args[0])
		if err != nil {
			return err
		}
		b, err := resolveHex(args[1])
		if err != nil {
			return err
		}
		p, err := gm.Resolver.WrappedPath(a, b)
		if err != nil {
			return err
		}
		printPath(cmd, p)
		return nil
	},
}

var neighboursCmd = &cobra.Command{
	Use:     "neighbours ROW,COL",
	Aliases: []string{"neighbors"},
	Short:   "List the hexes adjacent to a hex",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := resolveHex(args[0])
		if err != nil {
			return err
		}
		for _, n := range gm.Grid.Neighbours(h) {
			fmt.Fprintf(cmd.OutOrStdout(), "%v %s\n", n, n.Terrain())
		}
		return nil
	},
}

var moveCmd = &cobra.Command{
	Use:   "move ROW,COL DIRECTION",
	Short: "Step one hex in a direction (east, ne, nw, west, sw, se)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := resolveHex(args[0])
		if err != nil {
			return err
		}
		d, err := grid.ParseDirection(args[1])
		if err != nil {
			return err
		}
		to := gm.Grid.Move(h, d)
		if to.Equal(h) && !gm.Grid.CanMove(h, d) {
			fmt.Fprintf(cmd.OutOrStdout(), "%v (blocked %s)\n", to, d)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v %s\n", to, to.Terrain())
		return nil
	},
}

var rangeCmd = &cobra.Command{
	Use:   "range ROW,COL K",
	Short: "List every hex within K steps",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := resolveHex(args[0])
		if err != nil {
			return err
		}
		k, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("range %q: %w", args[1], err)
		}
		for _, n := range gm.Grid.Range(h, k) {
			fmt.Fprintf(cmd.OutOrStdout(), "%v %d\n", n, gm.Resolver.WrappedDistance(h, n))
		}
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch ROW,COL:ROW,COL ...",
	Short: "Find paths for many routes concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		routes := make([]path.Route, 0, len(args))
		for _, arg := range args {
			rt, err := parseRoute(arg)
			if err != nil {
				return err
			}
			if rt.Start, err = gm.Grid.Resolve(rt.Start); err != nil {
				return err
			}
			if rt.End, err = gm.Grid.Resolve(rt.End); err != nil {
				return err
			}
			routes = append(routes, rt)
		}
		paths, err := path.Batch(cmd.Context(), gm.Resolver, routes, cfg.Search.Workers)
		if err != nil {
			return err
		}
		for _, p := range paths {
			printPath(cmd, p)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the grid terrain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		for r, row := range gm.Grid.Rows() {
			var b strings.Builder
			if r%2 == 1 {
				b.WriteByte(' ')
			}
			for i, h := range row {
				if i > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(h.Terrain().Symbol())
			}
			fmt.Fprintln(w, b.String())
		}
		fmt.Fprintf(w, "seed %d, %d hills\n", gm.Seed, gm.HillCount())
		return nil
	},
}

func printPath(cmd *cobra.Command, p path.Path) {
	fmt.Fprintf(cmd.OutOrStdout(), "%v (steps %d, cost %d)\n", p, p.Length(), p.Cost())
}

func resolveHex(s string) (hex.Hex, error) {
	h, err := parseHex(s)
	if err != nil {
		return hex.Hex{}, err
	}
	return gm.Grid.Resolve(h)
}

// parseHex reads "ROW,COL".
func parseHex(s string) (hex.Hex, error) {
	rs, cs, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return hex.Hex{}, fmt.Errorf("coordinate %q: want ROW,COL", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return hex.Hex{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return hex.Hex{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return hex.New(row, col)
}

// parseRoute reads "ROW,COL:ROW,COL".
func parseRoute(s string) (path.Route, error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return path.Route{}, fmt.Errorf("route %q: want ROW,COL:ROW,COL", s)
	}
	start, err := parseHex(from)
	if err != nil {
		return path.Route{}, err
	}
	end, err := parseHex(to)
	if err != nil {
		return path.Route{}, err
	}
	return path.Route{Start: start, End: end}, nil
}

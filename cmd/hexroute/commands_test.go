package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitas-games/hexroute/pkg/hexcore/hex"
)

func TestParseHex(t *testing.T) {
	h, err := parseHex(" 3, 5 ")
	require.NoError(t, err)
	assert.True(t, h.Equal(hex.MustNew(3, 5)))

	for _, bad := range []string{"3", "a,2", "2,b", "1,2"} {
		_, err := parseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseRoute(t *testing.T) {
	rt, err := parseRoute("0,0:5,7")
	require.NoError(t, err)
	assert.True(t, rt.Start.Equal(hex.MustNew(0, 0)))
	assert.True(t, rt.End.Equal(hex.MustNew(5, 7)))

	_, err = parseRoute("0,0-5,7")
	assert.Error(t, err)
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	cfgFile := filepath.Join(t.TempDir(), "hexroute.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("terrain: {source: plains}\nlog: {level: error}\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--config", cfgFile}, args...))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestDistanceCommand(t *testing.T) {
	assert.Equal(t, "3\n", run(t, "distance", "0,0", "0,6"))
	assert.Equal(t, "1\n", run(t, "--wrap=true", "distance", "0,0", "0,6"))
}

func TestPathCommand(t *testing.T) {
	out := run(t, "--wrap=false", "path", "0,0", "0,6")
	assert.Equal(t, "(0,0) -> (0,2) -> (0,4) -> (0,6) (steps 3, cost 3)\n", out)
}

func TestBatchCommandPrintsMetrics(t *testing.T) {
	out := run(t, "--wrap=false", "--metrics", "batch", "0,0:0,4", "1,1:3,3")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "(0,0) -> (0,2) -> (0,4) (steps 2, cost 2)", lines[0])
	assert.Contains(t, out, `hexroute_astar_searches_total{outcome=found} 2`)
	showMetrics = false
}

package funcgraph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caleblevy/funcstructs-sub001/internal/plotpage"
	"github.com/caleblevy/funcstructs-sub001/pkg/endofunc"
)

func TestBuildChart(t *testing.T) {
	t.Parallel()

	t.Run("empty_domain", func(t *testing.T) {
		t.Parallel()

		var f endofunc.Endofunction

		_, err := BuildChart(f, Config{})
		require.ErrorIs(t, err, ErrEmptyDomain)
	})

	t.Run("renders_nodes_and_links", func(t *testing.T) {
		t.Parallel()

		f, err := endofunc.New([]int{1, 2, 0, 0})
		require.NoError(t, err)

		chart, err := BuildChart(f, Config{Title: "four points", Theme: plotpage.ThemeDark})
		require.NoError(t, err)

		var sb strings.Builder
		require.NoError(t, chart.Render(&sb))

		out := sb.String()
		assert.Contains(t, out, "four points")

		// All four nodes appear by name.
		for _, name := range []string{`"0"`, `"1"`, `"2"`, `"3"`} {
			assert.Contains(t, out, name)
		}
	})

	t.Run("single_node", func(t *testing.T) {
		t.Parallel()

		f, err := endofunc.New([]int{0})
		require.NoError(t, err)

		chart, err := BuildChart(f, Config{Title: "fixed point"})
		require.NoError(t, err)
		require.NotNil(t, chart)
	})
}

func TestNodeSymbolSizeClamped(t *testing.T) {
	t.Parallel()

	small := nodeSymbolSize(CirclePoints(3, 1))
	large := nodeSymbolSize(CirclePoints(500, 1))

	assert.LessOrEqual(t, small, maxSymbolSize)
	assert.GreaterOrEqual(t, small, minSymbolSize)
	assert.GreaterOrEqual(t, large, minSymbolSize)
	assert.LessOrEqual(t, large, maxSymbolSize)
}

func TestWritePage(t *testing.T) {
	t.Parallel()

	f, err := endofunc.New([]int{1, 0, 2})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.html")
	require.NoError(t, WritePage(f, Config{Title: "demo", Theme: plotpage.ThemeLight}, path))

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "demo")
	assert.Contains(t, string(data), "echarts")
}

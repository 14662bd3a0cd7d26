package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFunction(t *testing.T) {
	t.Parallel()

	t.Run("image_list", func(t *testing.T) {
		t.Parallel()

		f, err := parseFunction("2,0,1,1", 0)
		require.NoError(t, err)

		assert.Equal(t, 4, f.Len())
		assert.Equal(t, []int{2, 0, 1, 1}, f.Table())
	})

	t.Run("whitespace_tolerated", func(t *testing.T) {
		t.Parallel()

		f, err := parseFunction(" 1, 0 ", 0)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0}, f.Table())
	})

	t.Run("random_is_seeded", func(t *testing.T) {
		t.Parallel()

		f1, err := parseFunction("random:10", 99)
		require.NoError(t, err)

		f2, err := parseFunction("random:10", 99)
		require.NoError(t, err)

		assert.Equal(t, f1.Table(), f2.Table())
		assert.Equal(t, 10, f1.Len())
	})

	t.Run("bad_value", func(t *testing.T) {
		t.Parallel()

		_, err := parseFunction("1,x,2", 0)
		require.ErrorIs(t, err, ErrBadFunction)
	})

	t.Run("out_of_range_image", func(t *testing.T) {
		t.Parallel()

		_, err := parseFunction("0,5", 0)
		require.ErrorIs(t, err, ErrBadFunction)
	})

	t.Run("bad_random_size", func(t *testing.T) {
		t.Parallel()

		_, err := parseFunction("random:zero", 0)
		require.ErrorIs(t, err, ErrBadFunction)

		_, err = parseFunction("random:0", 0)
		require.ErrorIs(t, err, ErrBadFunction)
	})
}

func TestNewPlotCommand_NoOutput(t *testing.T) {
	t.Parallel()

	cmd := NewPlotCommand()
	cmd.SetArgs([]string{"1,0"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.ErrorIs(t, err, ErrNoOutput)
}

func TestNewPlotCommand_WritesGraph(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "graph.html")

	var out bytes.Buffer

	cmd := NewPlotCommand()
	cmd.SetArgs([]string{"2,0,1,1", "--output", path})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")

	summary := out.String()
	assert.Contains(t, summary, "Wrote")
	assert.Contains(t, summary, "points")
	assert.Contains(t, summary, "cycles")
}

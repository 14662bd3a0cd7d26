package funcgraph

import (
	"errors"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/caleblevy/funcstructs-sub001/internal/plotpage"
	"github.com/caleblevy/funcstructs-sub001/pkg/endofunc"
)

// Chart sizing constants.
const (
	chartWidth  = "700px"
	chartHeight = "700px"

	// canvasScale converts unit-circle coordinates to chart pixels.
	canvasScale = 300

	minSymbolSize = 8
	maxSymbolSize = 40

	edgeArrowSize = 7
)

// ErrEmptyDomain is returned when asked to plot a function on zero points.
var ErrEmptyDomain = errors.New("funcgraph: empty domain")

// Config controls chart appearance.
type Config struct {
	Title string
	Theme plotpage.Theme
}

// BuildChart lays f's points on a circle and draws one directed edge per
// mapping i -> f(i).
func BuildChart(f endofunc.Endofunction, cfg Config) (*charts.Graph, error) {
	n := f.Len()
	if n == 0 {
		return nil, ErrEmptyDomain
	}

	theme := plotpage.GetThemeConfig(cfg.Theme)
	points := CirclePoints(n, 1)
	symbolSize := nodeSymbolSize(points)

	nodes := make([]opts.GraphNode, n)
	for i, p := range points {
		nodes[i] = opts.GraphNode{
			Name: strconv.Itoa(i),
			X:    float32(canvasScale * real(p)),
			// ECharts y grows downward; flip to keep the layout
			// counterclockwise on screen.
			Y:          float32(-canvasScale * imag(p)),
			SymbolSize: symbolSize,
			ItemStyle: &opts.ItemStyle{
				Color:       theme.NodeFill,
				BorderColor: theme.NodeBorder,
			},
		}
	}

	links := make([]opts.GraphLink, n)
	for i := range n {
		links[i] = opts.GraphLink{
			Source: strconv.Itoa(i),
			Target: strconv.Itoa(f.Apply(i)),
		}
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           chartWidth,
			Height:          chartHeight,
			BackgroundColor: "transparent",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      cfg.Title,
			Left:       "center",
			TitleStyle: &opts.TextStyle{Color: theme.ChartText},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)

	graph.AddSeries("mappings", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:         "none",
			Roam:           opts.Bool(true),
			EdgeSymbol:     []string{"none", "arrow"},
			EdgeSymbolSize: edgeArrowSize,
		}),
		charts.WithLabelOpts(opts.Label{
			Show:  opts.Bool(true),
			Color: theme.ChartText,
		}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: theme.EdgeColor}),
	)

	return graph, nil
}

// nodeSymbolSize converts the geometric node radius to chart pixels, clamped
// to keep labels legible on both tiny and huge layouts.
func nodeSymbolSize(points []complex128) int {
	px := int(2 * canvasScale * layoutRadius(points))

	return max(minSymbolSize, min(px, maxSymbolSize))
}

// WritePage renders f's graph into a standalone HTML page at path.
func WritePage(f endofunc.Endofunction, cfg Config, path string) error {
	chart, err := BuildChart(f, cfg)
	if err != nil {
		return err
	}

	page := plotpage.NewPage(cfg.Title, "Functional graph: one directed edge per mapping").
		WithTheme(cfg.Theme)
	page.Add(chart)

	return page.WriteFile(path)
}

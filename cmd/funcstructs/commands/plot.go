package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/caleblevy/funcstructs-sub001/internal/funcgraph"
	"github.com/caleblevy/funcstructs-sub001/internal/plotpage"
	"github.com/caleblevy/funcstructs-sub001/pkg/endofunc"
)

const (
	plotCmdUse   = "plot <function>"
	plotCmdShort = "Render an endofunction as a circular graph in HTML"
	plotCmdLong  = `Render an endofunction on {0, ..., n-1} as a circular graph.

The function is given either as a comma-separated image list, where position i
holds f(i), or as "random:<n>" for a uniformly random function on n points.

Examples:
  funcstructs plot 2,0,1,1 --output graph.html
  funcstructs plot random:12 --output graph.html --config plot.yaml
`
	plotArgCount = 1

	plotOutputFlag  = "output"
	plotOutputShort = "o"
	plotOutputUsage = "output HTML file"
	plotConfigFlag  = "config"
	plotConfigUsage = "optional YAML config file"

	randomPrefix = "random:"
)

// ErrNoOutput is returned when the --output flag is not set.
var ErrNoOutput = errors.New("output file is required (use --output)")

// ErrBadFunction is returned for an unparseable function argument.
var ErrBadFunction = errors.New("function must be a comma-separated image list or random:<n>")

// NewPlotCommand creates the plot subcommand.
func NewPlotCommand() *cobra.Command {
	var outputPath, configPath string

	cmd := &cobra.Command{
		Use:   plotCmdUse,
		Short: plotCmdShort,
		Long:  plotCmdLong,
		Args:  cobra.ExactArgs(plotArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return ErrNoOutput
			}

			return runPlot(cmd, args[0], outputPath, configPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, plotOutputFlag, plotOutputShort, "", plotOutputUsage)
	cmd.Flags().StringVar(&configPath, plotConfigFlag, "", plotConfigUsage)

	return cmd
}

func runPlot(cmd *cobra.Command, arg, outputPath, configPath string) error {
	cfg, err := LoadPlotConfig(configPath)
	if err != nil {
		return err
	}

	f, err := parseFunction(arg, cfg.Seed)
	if err != nil {
		return err
	}

	slog.Default().Debug("plotting function", "points", f.Len(), "output", outputPath)

	graphCfg := funcgraph.Config{
		Title: cfg.Title,
		Theme: plotpage.Theme(cfg.Theme),
	}

	writeErr := funcgraph.WritePage(f, graphCfg, outputPath)
	if writeErr != nil {
		return fmt.Errorf("write graph page: %w", writeErr)
	}

	printPlotSummary(cmd, f, outputPath)

	return nil
}

// parseFunction builds an endofunction from a comma-separated image list or a
// "random:<n>" request seeded by seed.
func parseFunction(arg string, seed int64) (endofunc.Endofunction, error) {
	if n, ok := strings.CutPrefix(arg, randomPrefix); ok {
		size, parseErr := strconv.Atoi(n)
		if parseErr != nil || size <= 0 {
			return endofunc.Endofunction{}, fmt.Errorf("%w: bad size %q", ErrBadFunction, n)
		}

		rng := rand.New(rand.NewSource(seed))

		return endofunc.Random(size, rng), nil
	}

	parts := strings.Split(arg, ",")
	image := make([]int, len(parts))

	for i, part := range parts {
		val, parseErr := strconv.Atoi(strings.TrimSpace(part))
		if parseErr != nil {
			return endofunc.Endofunction{}, fmt.Errorf("%w: bad value %q", ErrBadFunction, part)
		}

		image[i] = val
	}

	f, newErr := endofunc.New(image)
	if newErr != nil {
		return endofunc.Endofunction{}, fmt.Errorf("%w: %w", ErrBadFunction, newErr)
	}

	return f, nil
}

func printPlotSummary(cmd *cobra.Command, f endofunc.Endofunction, outputPath string) {
	out := cmd.OutOrStdout()

	cycles := f.Cycles()

	cyclicCount := 0
	for _, cycle := range cycles {
		cyclicCount += len(cycle)
	}

	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	green.Fprintf(out, "Wrote %s\n", outputPath)
	cyan.Fprintf(out, "  points:  %s\n", humanize.Comma(int64(f.Len())))
	cyan.Fprintf(out, "  cycles:  %s\n", humanize.Comma(int64(len(cycles))))
	cyan.Fprintf(out, "  cyclic:  %s\n", humanize.Comma(int64(cyclicCount)))
}

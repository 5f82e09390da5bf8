// Command housing trains a linear regressor on ../../../housing.csv and
// prints R², RMSE and MSE on the held-out test subset.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/YuminosukeSato/housing/metrics"
	"github.com/YuminosukeSato/housing/pkg/errors"
	"github.com/YuminosukeSato/housing/pkg/log"
	"github.com/YuminosukeSato/housing/pipeline"
)

// ANSI foreground colors
const (
	colorGreen   = "\x1b[92m"
	colorRed     = "\x1b[91m"
	colorMagenta = "\x1b[95m"
	colorReset   = "\x1b[39m"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr *os.File) int {
	logger := log.NewConsoleLogger(stderr, log.LevelInfo, isTerminal(stderr))
	log.SetLogger(logger)
	errors.SetWarningHandler(func(w error) {
		logger.Warn("Pipeline warning", log.ErrAttrKey, w)
	})

	wd, err := os.Getwd()
	if err != nil {
		logger.Error("Cannot determine working directory", log.ErrAttrKey, err)
		return 1
	}

	cfg := pipeline.DefaultConfig()
	cfg.DataPath = pipeline.DataPath(wd)

	res, err := pipeline.Run(cfg)
	if err != nil {
		logger.Error("Pipeline failed",
			log.ErrAttrKey, err,
			log.PathKey, cfg.DataPath,
		)
		return 1
	}

	if err := printMetrics(stdout, res.Metrics, isTerminal(stdout)); err != nil {
		logger.Error("Cannot write metrics", log.ErrAttrKey, err)
		return 1
	}
	return 0
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printMetrics writes one metric per line, colored when color is set.
func printMetrics(w io.Writer, m metrics.RegressionMetrics, color bool) error {
	lines := []struct {
		color string
		label string
		value float64
	}{
		{colorGreen, "R Squared", m.RSquared},
		{colorRed, "RootMeanSquaredError", m.RootMeanSquaredError},
		{colorMagenta, "MeanSquaredError", m.MeanSquaredError},
	}

	for _, l := range lines {
		var err error
		if color {
			_, err = fmt.Fprintf(w, "%s%s: %v%s\n", l.color, l.label, l.value, colorReset)
		} else {
			_, err = fmt.Fprintf(w, "%s: %v\n", l.label, l.value)
		}
		if err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}

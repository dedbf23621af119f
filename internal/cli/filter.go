package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/trajfilter/pkg/adapters/file"
	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// RunFilter filters the trajectory at opts.InPath through the chain at opts.ChainPath.
// The result goes to opts.OutPath, or to stdout when no output path is set.
// Metrics, when enabled, are written to stderr in the Prometheus text format.
func RunFilter(ctx context.Context, opts FilterOptions, logger *slog.Logger, stdout, stderr io.Writer) error {
	format, err := file.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	params, closeParams, err := openParamStore(opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeParams(); err != nil {
			logger.Warn("failed to close parameter store", "err", err)
		}
	}()

	var reg *prometheus.Registry
	if opts.Metrics {
		reg = prometheus.NewRegistry()
	}
	p, err := createPipeline(opts, params, logger, registerer(reg))
	if err != nil {
		return err
	}

	if err := p.Configure(ctx); err != nil {
		logger.Warn("some filters are inactive", "err", err, "active", p.Chain().Active())
	}

	in, err := file.LoadTrajectory(opts.InPath)
	if err != nil {
		return err
	}

	out, ok, err := p.Filter(ctx, in)
	if err != nil {
		return err
	}
	if !ok {
		logger.Warn("trajectory was not fully filtered")
	}
	logger.Info("trajectory filtered", "in_points", len(in.Points), "out_points", len(out.Points))

	if err := writeTrajectory(opts.OutPath, format, out, stdout); err != nil {
		return err
	}
	if reg != nil {
		return writeMetrics(reg, stderr)
	}
	return nil
}

func registerer(reg *prometheus.Registry) prometheus.Registerer {
	if reg == nil {
		return nil
	}
	return reg
}

func writeTrajectory(outPath string, format file.Format, t domain.Trajectory, stdout io.Writer) error {
	if outPath != "" {
		return file.SaveTrajectory(outPath, t)
	}
	data, err := file.Marshal(t, format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}

func writeMetrics(reg *prometheus.Registry, w io.Writer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

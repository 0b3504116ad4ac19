package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gostonefire/mygrid-pv/chart"
	"github.com/gostonefire/mygrid-pv/curve"
	"github.com/gostonefire/mygrid-pv/export"
	"github.com/gostonefire/mygrid-pv/ingest"
)

// Run executes the full pvcurve pipeline and writes all requested
// artifacts. With Reshape set the series goes through smoothing (twice),
// stretching and gap interpolation before the optional normalization; with
// it unset the raw series is kept in hour units (the one-pass variant).
func Run(opts Options) (*Result, error) {
	if strings.TrimSpace(opts.CSVPath) == "" {
		return nil, fmt.Errorf("csv path is required")
	}
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "parquet"
	}
	if format != "parquet" && format != "csv" {
		return nil, fmt.Errorf("unsupported format %q (expected parquet|csv)", format)
	}
	scale := opts.Scale
	if scale == 0 {
		scale = curve.DefaultScale
	}

	samples, err := ingest.ReadFile(opts.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("read telemetry: %w", err)
	}

	pts := curve.Points(samples, scale)
	if opts.Reshape {
		for i := 0; i < 2; i++ {
			pts, err = curve.Smooth(pts)
			if err != nil {
				return nil, fmt.Errorf("smooth: %w", err)
			}
		}
		pts, err = curve.Stretch(pts, curve.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("stretch: %w", err)
		}
		pts = curve.Interpolate(pts)
	} else {
		for i := range pts {
			pts[i].X = float64(pts[i].Minute) / 60
		}
	}
	if opts.Normalize {
		pts = curve.Normalize(pts)
	}

	if err := ensureOutputDir(opts.OutDir, opts.Overwrite); err != nil {
		return nil, err
	}

	points := export.FromPlotPoints(pts)

	jsonPath := filepath.Join(opts.OutDir, "curve.json")
	doc := export.Document{
		GeneratedAt: time.Now().UTC(),
		Source:      filepath.Base(opts.CSVPath),
		Points:      points,
	}
	if err := export.WriteJSON(jsonPath, doc); err != nil {
		return nil, fmt.Errorf("write curve.json: %w", err)
	}

	dataPath := filepath.Join(opts.OutDir, "curve."+format)
	switch format {
	case "csv":
		if err := export.WriteCSV(dataPath, points); err != nil {
			return nil, fmt.Errorf("write curve csv: %w", err)
		}
	case "parquet":
		if err := export.WriteParquet(dataPath, points); err != nil {
			return nil, fmt.Errorf("write curve parquet: %w", err)
		}
	}

	chartPath := ""
	if opts.RenderChart {
		chartOpts := chart.HoursOptions()
		if opts.Normalize {
			chartOpts = chart.NormalizedOptions()
		}
		chartPath = filepath.Join(opts.OutDir, "curve.png")
		if err := chart.Render(points, chartOpts, chartPath); err != nil {
			return nil, fmt.Errorf("render chart: %w", err)
		}
	}

	return &Result{
		OutputDir:     opts.OutDir,
		CurveJSONPath: jsonPath,
		CurveDataPath: dataPath,
		ChartPath:     chartPath,
		PointCount:    len(points),
	}, nil
}

func ensureOutputDir(path string, overwrite bool) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read output directory: %w", err)
	}
	if len(entries) > 0 && !overwrite {
		return fmt.Errorf("output directory is not empty: %s (set overwrite=true to allow)", path)
	}
	return nil
}

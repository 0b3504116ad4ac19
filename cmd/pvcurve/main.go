package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gostonefire/mygrid-pv/curve"
	"github.com/gostonefire/mygrid-pv/ingest"
	"github.com/gostonefire/mygrid-pv/pipeline"
)

func main() {
	var (
		csvPath   = flag.String("csv", "", "Path to input telemetry CSV (overrides -dir/-date)")
		dir       = flag.String("dir", "", "Telemetry directory holding YYYYMMDD.csv files")
		date      = flag.String("date", "", "Day to process, YYYY-MM-DD (used with -dir)")
		outDir    = flag.String("out", "", "Output directory")
		format    = flag.String("format", "parquet", "Curve data format: parquet|csv")
		scale     = flag.Float64("scale", curve.DefaultScale, "PV power scale factor")
		raw       = flag.Bool("raw", false, "Skip smoothing/stretching/interpolation")
		normalize = flag.Bool("normalize", false, "Rescale both axes to the unit interval")
		noChart   = flag.Bool("no-chart", false, "Skip PNG chart rendering")
		overwrite = flag.Bool("overwrite", true, "Allow writing into non-empty output directories")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --csv day.csv --out outdir [--normalize] [--format parquet|csv]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "       %s --dir /data/mygrid --date 2025-04-03 --out outdir\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	path := strings.TrimSpace(*csvPath)
	if path == "" && *dir != "" && *date != "" {
		day, err := time.ParseInLocation("2006-01-02", *date, time.Local)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -date %q: %v\n", *date, err)
			os.Exit(2)
		}
		path = ingest.DayPath(*dir, day)
	}
	if path == "" || strings.TrimSpace(*outDir) == "" {
		flag.Usage()
		os.Exit(2)
	}

	result, err := pipeline.Run(pipeline.Options{
		CSVPath:     path,
		OutDir:      *outDir,
		Format:      *format,
		Scale:       *scale,
		Reshape:     !*raw,
		Normalize:   *normalize,
		RenderChart: !*noChart,
		Overwrite:   *overwrite,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pvcurve failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("pvcurve complete\n")
	fmt.Printf("Output dir:   %s\n", result.OutputDir)
	fmt.Printf("curve.json:   %s\n", result.CurveJSONPath)
	fmt.Printf("curve data:   %s\n", result.CurveDataPath)
	if result.ChartPath != "" {
		fmt.Printf("chart:        %s\n", result.ChartPath)
	}
	fmt.Printf("points:       %d\n", result.PointCount)
}

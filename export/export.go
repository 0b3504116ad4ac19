// Package export serializes the final curve for charting and for
// consumption by other tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/gostonefire/mygrid-pv/curve"
)

// CurvePoint is one {x, y} pair of the final series.
type CurvePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Document is the persisted form of one day's curve.
type Document struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Source      string       `json:"source"`
	Points      []CurvePoint `json:"points"`
}

// FromPlotPoints projects pipeline points onto the output shape.
func FromPlotPoints(pts []curve.PlotPoint) []CurvePoint {
	out := make([]CurvePoint, 0, len(pts))
	for _, p := range pts {
		out = append(out, CurvePoint{X: p.X, Y: p.PV})
	}
	return out
}

// WriteJSON writes the curve document with indentation.
func WriteJSON(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteCSV writes the curve as x,y rows.
func WriteCSV(path string, points []CurvePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

type curveParquetRow struct {
	X float64 `parquet:"name=x, type=DOUBLE"`
	Y float64 `parquet:"name=y, type=DOUBLE"`
}

// WriteParquet writes the curve as a SNAPPY-compressed parquet file.
func WriteParquet(path string, points []CurvePoint) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	pw, err := writer.NewParquetWriter(fw, new(curveParquetRow), 4)
	if err != nil {
		_ = fw.Close()
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, p := range points {
		if err := pw.Write(curveParquetRow{X: p.X, Y: p.Y}); err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return err
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}

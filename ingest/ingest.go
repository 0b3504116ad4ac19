// Package ingest reads one day of grid telemetry from CSV into ordered
// samples for the curve pipeline. The logger writes one file per day,
// header row first, then date_time,pv_power,ld_power rows at minute
// resolution.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gostonefire/mygrid-pv/curve"
)

// TimeLayout is the logger's timestamp format, minute resolution, local time.
const TimeLayout = "2006-01-02 15:04"

// ErrNoData reports a telemetry source with no usable rows.
var ErrNoData = errors.New("ingest: no usable data")

// DayPath returns the conventional telemetry file name for one day.
func DayPath(dir string, date time.Time) string {
	return filepath.Join(dir, date.Format("20060102")+".csv")
}

// ReadFile opens and parses one day of telemetry.
func ReadFile(path string) ([]curve.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open telemetry file: %w", err)
	}
	defer f.Close()

	samples, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// Read parses telemetry rows into chronologically ordered samples. Any
// malformed row aborts the whole read with an error naming the line; the
// pipeline never sees partial data.
func Read(r io.Reader) ([]curve.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	samples := make([]curve.Sample, 0, 512)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("line %d: expected date_time,pv_power,ld_power, got %d fields", line, len(rec))
		}

		ts, err := time.ParseInLocation(TimeLayout, rec[0], time.Local)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse date_time: %w", line, err)
		}
		pv, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse pv_power: %w", line, err)
		}
		ld, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse ld_power: %w", line, err)
		}
		if n := len(samples); n > 0 && !ts.After(samples[n-1].Time) {
			return nil, fmt.Errorf("line %d: timestamp %q not after previous row", line, rec[0])
		}

		samples = append(samples, curve.Sample{Time: ts, PV: pv, Load: ld})
	}

	if len(samples) == 0 {
		return nil, ErrNoData
	}
	return samples, nil
}

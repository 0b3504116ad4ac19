package pipeline

// Options configures one pvcurve run.
type Options struct {
	CSVPath     string
	OutDir      string
	Format      string // parquet|csv
	Scale       float64
	Reshape     bool
	Normalize   bool
	RenderChart bool
	Overwrite   bool
}

// Result returns generated output paths.
type Result struct {
	OutputDir     string `json:"output_dir"`
	CurveJSONPath string `json:"curve_json_path"`
	CurveDataPath string `json:"curve_data_path"`
	ChartPath     string `json:"chart_path,omitempty"`
	PointCount    int    `json:"point_count"`
}

package output

import (
	"encoding/json"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"netexposure/internal/model"
)

// Record is the JSON rendition of a completed scan.
type Record struct {
	Target     string           `json:"target"`
	Ports      []int            `json:"ports"`
	HostCount  int              `json:"host_count"`
	StartedAt  string           `json:"started_at"`
	FinishedAt string           `json:"finished_at"`
	Exposures  []model.Exposure `json:"exposures"`
}

// PageData provides the full context for the HTML report.
type PageData struct {
	Target     string
	HostCount  int
	Ports      string
	StartedAt  string
	FinishedAt string
	Rows       []ExposureRow
}

// ExposureRow is one HTML table row with placeholders already applied.
type ExposureRow struct {
	Host   string
	Port   int
	Banner string
	Risk   string
}

// BuildRecord converts a ScanReport into a Record for JSON output. Port and
// exposure slices are copied so the record stays detached from the report,
// and an empty exposure list encodes as [] rather than null.
func BuildRecord(report *model.ScanReport) Record {
	ports := make([]int, len(report.Ports))
	copy(ports, report.Ports)
	exposures := make([]model.Exposure, len(report.Exposures))
	copy(exposures, report.Exposures)
	return Record{
		Target:     report.Target,
		Ports:      ports,
		HostCount:  report.HostCount,
		StartedAt:  formatTime(report.StartedAt),
		FinishedAt: formatTime(report.FinishedAt),
		Exposures:  exposures,
	}
}

// WriteJSON writes the record as indented JSON.
func WriteJSON(w io.Writer, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// buildRows applies the banner and risk placeholders shared by the HTML and
// console renderers.
func buildRows(report *model.ScanReport) []ExposureRow {
	rows := make([]ExposureRow, 0, len(report.Exposures))
	for _, exp := range report.Exposures {
		banner := "-"
		if exp.ServiceBanner != nil && *exp.ServiceBanner != "" {
			banner = *exp.ServiceBanner
		}
		riskNote := "Review manually"
		if exp.Risk != nil && *exp.Risk != "" {
			riskNote = *exp.Risk
		}
		rows = append(rows, ExposureRow{Host: exp.Host, Port: exp.Port, Banner: banner, Risk: riskNote})
	}
	return rows
}

// BuildPageData converts a ScanReport into template-ready view data.
func BuildPageData(report *model.ScanReport) PageData {
	return PageData{
		Target:     report.Target,
		HostCount:  report.HostCount,
		Ports:      FormatPorts(report.Ports),
		StartedAt:  formatTime(report.StartedAt),
		FinishedAt: formatTime(report.FinishedAt),
		Rows:       buildRows(report),
	}
}

// FormatPorts renders a port set the way the reports display it.
func FormatPorts(ports []int) string {
	parts := make([]string, len(ports))
	for i, p := range ports {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Network Exposure Report</title>
  <style>
    body { font-family: -apple-system, 'Segoe UI', sans-serif; margin: 2rem; }
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid #ddd; padding: 0.5rem; }
    th { background: #f3f4f6; text-align: left; }
  </style>
</head>
<body>
  <h1>Network Exposure Report</h1>
  <p><strong>Target:</strong> {{.Target}}</p>
  <p><strong>Hosts scanned:</strong> {{.HostCount}}</p>
  <p><strong>Ports:</strong> {{.Ports}}</p>
  <p><strong>Scan window:</strong> {{.StartedAt}} → {{.FinishedAt}}</p>
  <table>
    <thead>
      <tr><th>Host</th><th>Port</th><th>Banner</th><th>Risk Note</th></tr>
    </thead>
    <tbody>
{{- if .Rows}}
{{- range .Rows}}
      <tr><td>{{.Host}}</td><td>{{.Port}}</td><td>{{.Banner}}</td><td>{{.Risk}}</td></tr>
{{- end}}
{{- else}}
      <tr><td colspan="4">No exposures detected</td></tr>
{{- end}}
    </tbody>
  </table>
</body>
</html>
`))

// RenderHTML renders the HTML report for the given scan.
func RenderHTML(w io.Writer, report *model.ScanReport) error {
	return htmlTemplate.Execute(w, BuildPageData(report))
}

package model

import "time"

// Exposure represents one confirmed open service on a scanned host.
// ServiceBanner and Risk stay nil when the service sent nothing readable
// or the port carries no canned warning; both render as JSON null.
type Exposure struct {
	Host          string  `json:"host"`
	Port          int     `json:"port"`
	ServiceBanner *string `json:"service_banner"`
	Risk          *string `json:"risk"`
}

// ScanReport is the final output for a single completed scan. It is built
// once, after every probe has resolved, and never mutated afterward.
type ScanReport struct {
	Target     string
	Ports      []int
	HostCount  int
	Exposures  []Exposure
	StartedAt  time.Time
	FinishedAt time.Time
}

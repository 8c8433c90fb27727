package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/reef/config"
)

// OutputManager handles structured session output with CSV logging.
type OutputManager struct {
	dir           string
	telemetryFile *os.File

	headerWritten bool
}

// NewOutputManager creates the output directory and the telemetry file.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}

	return &OutputManager{dir: dir, telemetryFile: f}, nil
}

// WriteWindow appends a window to the telemetry CSV, writing the header on
// first use.
func (om *OutputManager) WriteWindow(ws WindowStats) error {
	records := []WindowStats{ws}
	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry header: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
		return fmt.Errorf("writing telemetry row: %w", err)
	}
	return nil
}

// WriteConfigSnapshot writes the effective configuration next to the logs so
// a session can be reproduced.
func (om *OutputManager) WriteConfigSnapshot(cfg *config.Config) error {
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om.telemetryFile != nil {
		return om.telemetryFile.Close()
	}
	return nil
}

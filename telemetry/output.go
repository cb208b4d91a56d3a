package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/asteroids/config"
)

// csvSink appends records to a CSV file, writing the header once.
type csvSink struct {
	file          *os.File
	headerWritten bool
}

func openSink(dir, name string) (*csvSink, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvSink{file: f}, nil
}

func (s *csvSink) append(records any) error {
	if !s.headerWritten {
		if err := gocsv.Marshal(records, s.file); err != nil {
			return err
		}
		s.headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, s.file)
}

// OutputManager writes run artifacts (config snapshot and CSV logs) to a directory.
// A nil *OutputManager is valid and discards everything.
type OutputManager struct {
	dir       string
	telemetry *csvSink
	perf      *csvSink
	closed    bool
}

// NewOutputManager creates the output directory and opens the CSV files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	telemetry, err := openSink(dir, "telemetry.csv")
	if err != nil {
		return nil, err
	}
	perf, err := openSink(dir, "perf.csv")
	if err != nil {
		telemetry.file.Close()
		return nil, err
	}

	return &OutputManager{dir: dir, telemetry: telemetry, perf: perf}, nil
}

// WriteConfig saves the effective configuration as config.yaml.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry appends a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := om.telemetry.append([]WindowStats{stats}); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WritePerf appends a performance record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	if err := om.perf.append([]PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files. Calling it again is a no-op.
func (om *OutputManager) Close() error {
	if om == nil || om.closed {
		return nil
	}
	om.closed = true
	return errors.Join(om.telemetry.file.Close(), om.perf.file.Close())
}

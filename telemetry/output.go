package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/snake/config"
)

// csvFile is an output file that writes its header with the first record.
type csvFile struct {
	name          string
	f             *os.File
	headerWritten bool
}

func (c *csvFile) write(records any) error {
	if !c.headerWritten {
		if err := gocsv.Marshal(records, c.f); err != nil {
			return fmt.Errorf("writing %s: %w", c.name, err)
		}
		c.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, c.f); err != nil {
		return fmt.Errorf("writing %s: %w", c.name, err)
	}
	return nil
}

// OutputManager writes session telemetry as CSV files.
// A nil *OutputManager is valid and discards everything.
type OutputManager struct {
	dir    string
	games  *csvFile
	levels *csvFile
	perf   *csvFile
}

// NewOutputManager creates the output directory and its CSV files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	for _, target := range []struct {
		name string
		dst  **csvFile
	}{
		{"games.csv", &om.games},
		{"levels.csv", &om.levels},
		{"perf.csv", &om.perf},
	} {
		f, err := os.Create(filepath.Join(dir, target.name))
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating %s: %w", target.name, err)
		}
		*target.dst = &csvFile{name: target.name, f: f}
	}
	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteGame appends a finished game to games.csv.
func (om *OutputManager) WriteGame(r GameRecord) error {
	if om == nil {
		return nil
	}
	return om.games.write([]GameRecord{r})
}

// WriteLevel appends a level-up to levels.csv.
func (om *OutputManager) WriteLevel(r LevelRecord) error {
	if om == nil {
		return nil
	}
	return om.levels.write([]LevelRecord{r})
}

// WritePerf appends a perf window to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, frame int64) error {
	if om == nil {
		return nil
	}
	return om.perf.write([]PerfStatsCSV{stats.ToCSV(frame)})
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var errs []error
	for _, c := range []*csvFile{om.games, om.levels, om.perf} {
		if c != nil && c.f != nil {
			errs = append(errs, c.f.Close())
		}
	}
	return errors.Join(errs...)
}

// ReadGames loads the records of a games.csv file.
func ReadGames(path string) ([]GameRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening games file: %w", err)
	}
	defer f.Close()

	var games []GameRecord
	if err := gocsv.UnmarshalFile(f, &games); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return games, nil
}

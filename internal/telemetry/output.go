package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// OutputManager пишет итоги партий в runs.csv. Заголовок пишется один раз.
type OutputManager struct {
	dir           string
	runsFile      *os.File
	headerWritten bool
}

// NewOutputManager создаёт каталог и файл. Пустой dir - вывод выключен, вернётся nil.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "runs.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating runs.csv: %w", err)
	}
	return &OutputManager{dir: dir, runsFile: f}, nil
}

func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

func (om *OutputManager) WriteRuns(records []RunRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}

	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.runsFile); err != nil {
			return fmt.Errorf("writing runs: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.runsFile); err != nil {
		return fmt.Errorf("writing runs: %w", err)
	}
	return nil
}

// ReadRuns читает runs.csv обратно, например для сравнения серий.
func ReadRuns(path string) ([]RunRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening runs file: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parsing runs file: %w", err)
	}
	return records, nil
}

func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.runsFile.Close()
}

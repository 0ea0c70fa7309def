package purchaselog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"medeasy/counter/domain"
)

// CSVLog appends purchases to a header-less CSV file of
// customerName,customerAddress,medicineName,price rows.
type CSVLog struct {
	path string
}

// NewCSVLog returns a CSVLog writing to path. The file is created on first write.
func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

func (l *CSVLog) Path() string { return l.path }

// Record opens the file, appends a single row, syncs and closes it again, so
// nothing is buffered between calls.
func (l *CSVLog) Record(_ context.Context, p domain.Purchase) (err error) {
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("unable to open purchase log %s: %w", l.path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close purchase log %s: %w", l.path, cerr)
		}
	}()

	writer := csv.NewWriter(file)
	row := []string{p.CustomerName, p.CustomerAddress, p.MedicineName, p.UnitPrice.StringFixed(2)}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("unable to write purchase log %s: %w", l.path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("unable to write purchase log %s: %w", l.path, err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("unable to sync purchase log %s: %w", l.path, err)
	}
	return nil
}

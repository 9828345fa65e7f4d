package fs

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/harvest"
)

// LedgerFileName is the name of the visit ledger inside the output directory.
const LedgerFileName = "discovered_links.csv"

// Ensure Ledger implements harvest.VisitLedger at compile time.
var _ harvest.VisitLedger = (*Ledger)(nil)

// Ledger appends processed URLs to a single-column CSV file.
// The "url" header is written only when the file is new or empty, so
// reopening the ledger of an earlier run keeps appending to it.
// Every row is flushed as soon as it is recorded.
type Ledger struct {
	mu   sync.Mutex
	file *os.File
	w    *csv.Writer
}

// OpenLedger opens or creates the ledger in dir.
func OpenLedger(dir string) (*Ledger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, harvest.Errorf(harvest.EPERSIST, "create output directory: %v", err)
	}

	path := filepath.Join(dir, LedgerFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, harvest.Errorf(harvest.EPERSIST, "open ledger: %v", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, harvest.Errorf(harvest.EPERSIST, "stat ledger: %v", err)
	}

	l := &Ledger{file: f, w: csv.NewWriter(f)}
	if info.Size() == 0 {
		if err := l.write("url"); err != nil {
			f.Close()
			return nil, err
		}
	}
	return l, nil
}

// Record appends url as one row.
func (l *Ledger) Record(_ context.Context, url string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.write(url)
}

func (l *Ledger) write(value string) error {
	if err := l.w.Write([]string{value}); err != nil {
		return harvest.Errorf(harvest.EPERSIST, "write ledger: %v", err)
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		return harvest.Errorf(harvest.EPERSIST, "flush ledger: %v", err)
	}
	return nil
}

// Close closes the ledger file.
func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

package scout

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindLedger returns the unique ledger matching the name.
// If the query is empty and no ledger exists, an empty default ledger is
// returned so a fresh directory works out of the box. In any other ambiguous
// case it returns an error.
func FindLedger(path, query string) (*Ledger, error) {
	ledgerPaths, err := findLedgerPaths(path, query)
	if err != nil {
		return nil, err
	}
	switch len(ledgerPaths) {
	case 0:
		if query == "" {
			l := NewLedger()
			l.name = "transactions"
			return l, nil
		}
		return nil, fmt.Errorf("could not find ledger %q", query)
	case 1:
		return loadLedgerFile(path, ledgerPaths[0])
	default:
		return nil, fmt.Errorf("multiple ledgers found for %q", query)
	}
}

// FindLedgers discovers and loads ledger files from a directory. A ledger
// name is its relative path without the .jsonl extension; an empty query
// loads them all.
func FindLedgers(path, query string) ([]*Ledger, error) {
	ledgerPaths, err := findLedgerPaths(path, query)
	if err != nil {
		return nil, err
	}

	var loaded []*Ledger
	for _, fullPath := range ledgerPaths {
		ledger, err := loadLedgerFile(path, fullPath)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, ledger)
	}
	return loaded, nil
}

// loadLedgerFile opens and decodes a ledger, naming it after its relative
// path to the portfolio root.
func loadLedgerFile(portfolioPath, fullPath string) (*Ledger, error) {
	relPath, err := filepath.Rel(portfolioPath, fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not determine relative path for %q: %w", fullPath, err)
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", fullPath, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", fullPath, err)
	}
	ledger.name = strings.TrimSuffix(relPath, ".jsonl")
	return ledger, nil
}

// SaveLedger saves a ledger to its file within the portfolio path: a ledger
// named "john/bnp" is saved to "<path>/john/bnp.jsonl".
func SaveLedger(path string, ledger *Ledger) error {
	if ledger.Name() == "" {
		return fmt.Errorf("cannot save ledger with an empty name")
	}

	filePath := filepath.Join(path, ledger.Name()+".jsonl")
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", filePath, err)
	}

	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", filePath, err)
	}
	defer f.Close()

	return EncodeLedger(f, ledger)
}

// LoadMarketData loads the market data file. A missing file yields an empty
// collection, not an error, so a fresh directory works out of the box.
func LoadMarketData(marketFile string) (*MarketData, error) {
	f, err := os.Open(marketFile)
	if err != nil {
		if os.IsNotExist(err) {
			return NewMarketData(), nil
		}
		return nil, fmt.Errorf("could not open market data file %q: %w", marketFile, err)
	}
	defer f.Close()

	m, err := DecodeMarketData(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode market data file %q: %w", marketFile, err)
	}
	return m, nil
}

// SaveMarketData persists the market data to its file, creating parent
// directories as needed.
func SaveMarketData(marketFile string, m *MarketData) error {
	if err := os.MkdirAll(filepath.Dir(marketFile), 0755); err != nil {
		return fmt.Errorf("could not create directory for market data %q: %w", marketFile, err)
	}
	f, err := os.Create(marketFile)
	if err != nil {
		return fmt.Errorf("error opening market data file %q for writing: %w", marketFile, err)
	}
	defer f.Close()

	return EncodeMarketData(f, m)
}

// findLedgerPaths scans a directory for ledger files matching the query.
func findLedgerPaths(path, query string) ([]string, error) {
	var ledgers []string

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".jsonl") {
			return nil
		}
		relPath, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(relPath, ".jsonl")
		if query == "" || name == query {
			ledgers = append(ledgers, p)
		}
		return nil
	})

	return ledgers, err
}

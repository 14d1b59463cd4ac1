package balanceloader

import (
	"context"
	"fmt"
	"os"
	"strings"

	"balance_ranker/internal/app/port"
	"balance_ranker/internal/domain/entity"

	"gopkg.in/yaml.v3"
)

// DefaultFilePath is used when no balance file is configured.
const DefaultFilePath = "data/balances.yml"

type balanceFile struct {
	Balances []entity.WalletBalance `yaml:"balances"`
}

// FileLoader implements port.BalanceSource by reading a YAML balance file.
// The file is read again on every call so edits show up without a restart.
type FileLoader struct {
	filePath string
	logger   port.Logger
}

// NewFileLoader creates a new FileLoader.
func NewFileLoader(filePath string, l port.Logger) *FileLoader {
	if filePath == "" {
		filePath = DefaultFilePath
	}
	return &FileLoader{
		filePath: filePath,
		logger:   l.With("component", "BalanceFileLoader"),
	}
}

// GetBalances implements port.BalanceSource. Records with an unknown chain or a
// non-positive amount are returned untouched; only records without a currency are skipped.
func (l *FileLoader) GetBalances(ctx context.Context) ([]entity.WalletBalance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file %s: %w", l.filePath, err)
	}

	var file balanceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balance file %s: %w", l.filePath, err)
	}

	balances := make([]entity.WalletBalance, 0, len(file.Balances))
	for i, b := range file.Balances {
		b.Currency = strings.TrimSpace(b.Currency)
		if b.Currency == "" {
			l.logger.Warn("Skipping balance without currency", "file", l.filePath, "index", i)
			continue
		}
		balances = append(balances, b)
	}

	l.logger.Debug("Balances loaded from file", "count", len(balances), "path", l.filePath)
	return balances, nil
}

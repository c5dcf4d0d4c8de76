package corpusfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"transaction-anonymizer/internal/core/domain"
	"transaction-anonymizer/internal/core/ports"
)

// MappingsProvider serves the mapping snapshot written by the last run. The
// file is read per request so a fresh run is visible without a restart.
type MappingsProvider struct {
	path string
}

var _ ports.MappingsProvider = (*MappingsProvider)(nil)

// NewMappingsProvider creates a provider over the mappings file.
func NewMappingsProvider(path string) *MappingsProvider {
	return &MappingsProvider{path: path}
}

// Mappings loads the snapshot. A missing file means no run has completed yet
// and is reported as (nil, nil).
func (p *MappingsProvider) Mappings(_ context.Context) (*domain.MappingSnapshot, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading mappings %s: %w", p.path, err)
	}
	var snap domain.MappingSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing mappings %s: %w", p.path, err)
	}
	return &snap, nil
}

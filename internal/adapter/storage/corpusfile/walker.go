// Package corpusfile reads and writes the filesystem artifacts of an
// anonymization run: the partitioned raw capture tree, the flat anonymized
// corpus, the relationship report and the pseudonym mappings.
package corpusfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"transaction-anonymizer/internal/core/domain"

	"github.com/rs/zerolog"
)

// Walker discovers and loads capture envelopes from a Hive-partitioned tree:
//
//	<root>/year=YYYY/month=MM/day=DD/account_id=<id>/transactions_<ts>.json
//
// One unreadable or malformed file is logged and skipped; the walk itself only
// fails when the root is missing.
type Walker struct {
	root string
	log  zerolog.Logger
}

// NewWalker creates a walker over one capture tree.
func NewWalker(root string, log zerolog.Logger) *Walker {
	return &Walker{root: root, log: log}
}

// Load walks the tree and parses every capture file it finds. Files are
// visited in lexical path order, so repeated loads of the same tree yield the
// same slice.
func (w *Walker) Load() ([]domain.Envelope, error) {
	if _, err := os.Stat(w.root); err != nil {
		return nil, fmt.Errorf("capture tree %s: %w", w.root, err)
	}

	pattern := filepath.Join(w.root,
		"year=*", "month=*", "day=*", "account_id=*", "transactions_*.json")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing capture tree: %w", err)
	}
	sort.Strings(paths)

	envelopes := make([]domain.Envelope, 0, len(paths))
	skipped := 0
	for _, path := range paths {
		env, err := readEnvelope(path)
		if err != nil {
			w.log.Warn().Str("file", path).Err(err).Msg("skipping unreadable capture file")
			skipped++
			continue
		}
		envelopes = append(envelopes, env)
	}

	w.log.Info().
		Int("files_found", len(paths)).
		Int("files_skipped", skipped).
		Int("envelopes_loaded", len(envelopes)).
		Str("root", w.root).
		Msg("capture tree loaded")

	return envelopes, nil
}

func readEnvelope(path string) (domain.Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Envelope{}, err
	}
	var env domain.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.Envelope{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return env, nil
}

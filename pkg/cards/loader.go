package cards

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mandys/cardqa/pkg/apperrors"
	"github.com/mandys/cardqa/pkg/models"
)

// Load reads every .json/.yaml/.yml terms document in dir into a
// Registry. A malformed or unreadable file is logged as a warning and
// skipped; that bank's cards are simply absent. Only a completely empty
// result is an error, since the service cannot answer anything without
// card data.
func Load(dir string, logger *zap.Logger) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
			files = append(files, e.Name())
		}
	}
	// Directory order is platform-dependent; loading is order-sensitive
	// because of overwrite-on-collision, so fix it.
	sort.Strings(files)

	reg := newRegistry()
	for _, name := range files {
		path := filepath.Join(dir, name)
		doc, err := loadDocument(path)
		if err != nil {
			logger.Warn("skipping card document",
				zap.String("file", name),
				zap.Error(err))
			continue
		}

		bank := bankFromFilename(name)
		doc.Bank = bank
		reg.addTerms(bank, &doc.CommonTerms)

		for _, card := range doc.Cards {
			if card.Name == "" {
				logger.Warn("skipping card without name", zap.String("file", name))
				continue
			}
			card.Bank = bank
			card.CardID = models.ResolveCardID(card.ID, card.Name)
			if reg.add(card) {
				logger.Warn("card name collision, later definition wins",
					zap.String("card", card.Name),
					zap.String("file", name))
			}
		}
		logger.Info("loaded card document",
			zap.String("file", name),
			zap.Int("cards", len(doc.Cards)))
	}

	if reg.Len() == 0 {
		return nil, fmt.Errorf("%w: no usable documents in %s", apperrors.ErrNoCardData, dir)
	}
	return reg, nil
}

// loadDocument parses one terms file. YAML documents are converted to
// JSON first so the tolerant CardRecord unmarshalling applies to both.
func loadDocument(path string) (*models.CardDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		var generic map[string]any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		if data, err = json.Marshal(generic); err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
	}

	var doc models.CardDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	doc.Raw = data
	return &doc, nil
}

// bankFromFilename derives the bank key from the file stem, e.g.
// "axis-atlas.json" -> "axis-atlas".
func bankFromFilename(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

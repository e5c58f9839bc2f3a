package decks

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/komekomeaaa/tarot/internal/domain"
)

//go:embed data/*.yaml
var deckFS embed.FS

const catalogFile = "data/rider_waite.yaml"

// EmbeddedStore loads the card catalog from the embedded YAML table.
type EmbeddedStore struct {
	once    sync.Once
	catalog *domain.Catalog
	err     error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	raw, err := deckFS.ReadFile(catalogFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded catalog: %w", err)
		return
	}
	s.catalog, s.err = Parse(raw)
}

// Catalog returns the process-wide catalog, parsing it on first use.
func (s *EmbeddedStore) Catalog(_ context.Context) (*domain.Catalog, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	return s.catalog, nil
}

// MustLoad returns the embedded catalog or panics. The table ships with the
// binary, so a failure here is a build defect.
func MustLoad() *domain.Catalog {
	cat, err := NewEmbeddedStore().Catalog(context.Background())
	if err != nil {
		panic(err)
	}
	return cat
}

// Parse decodes a YAML card table. Minor arcana ranks are taken from the
// card number.
func Parse(raw []byte) (*domain.Catalog, error) {
	var cards []domain.Card
	if err := yaml.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i := range cards {
		if cards[i].Arcana == domain.Minor {
			cards[i].Rank = domain.Rank(cards[i].Number)
		}
	}
	cat, err := domain.NewCatalog(cards)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return cat, nil
}

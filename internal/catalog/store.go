package catalog

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/angelmondragon/salesboard/pkg/models"
)

const productIDPrefix = "prod-"

// Store holds the in-memory product list. Reads return copies so callers never share state
// with the store.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewStore seeds the store with a copy of products.
func NewStore(products []models.Product) *Store {
	seeded := make([]models.Product, len(products))
	for i, p := range products {
		seeded[i] = cloneProduct(p)
	}
	return &Store{products: seeded}
}

// All returns every product in insertion order.
func (s *Store) All(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = cloneProduct(p)
	}
	return out, nil
}

// FindByID returns the product with id.
func (s *Store) FindByID(ctx context.Context, id string) (models.Product, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Product{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return cloneProduct(p), true, nil
		}
	}
	return models.Product{}, false, nil
}

// Insert assigns the next prod-N id under the write lock, stores the product, and returns it.
func (s *Store) Insert(ctx context.Context, product models.Product) (models.Product, error) {
	if err := ctx.Err(); err != nil {
		return models.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = productIDPrefix + strconv.Itoa(s.maxSequenceLocked()+1)
	s.products = append(s.products, cloneProduct(product))
	return cloneProduct(product), nil
}

// Update applies mutate to the product with id. It reports false when no product matches.
func (s *Store) Update(ctx context.Context, id string, mutate func(*models.Product)) (models.Product, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Product{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		mutate(&s.products[i])
		return cloneProduct(s.products[i]), true, nil
	}
	return models.Product{}, false, nil
}

// maxSequenceLocked returns the highest numeric suffix among prod-N ids.
func (s *Store) maxSequenceLocked() int {
	highest := 0
	for _, p := range s.products {
		raw, ok := strings.CutPrefix(p.ID, productIDPrefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}

func cloneProduct(p models.Product) models.Product {
	if p.Image != nil {
		image := *p.Image
		p.Image = &image
	}
	return p
}

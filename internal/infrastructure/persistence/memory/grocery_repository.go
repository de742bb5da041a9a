package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mealhaven/api/internal/domain/grocery"
	"github.com/mealhaven/api/internal/ports/outbound"
)

// GroceryListRepository is an in-memory grocery list store.
type GroceryListRepository struct {
	mu    sync.RWMutex
	lists map[string]*grocery.List
}

// NewGroceryListRepository creates an empty in-memory grocery list store.
func NewGroceryListRepository() *GroceryListRepository {
	return &GroceryListRepository{lists: make(map[string]*grocery.List)}
}

func (r *GroceryListRepository) Create(ctx context.Context, l *grocery.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[l.ID.String()] = copyList(l)
	return nil
}

func (r *GroceryListRepository) FindByID(ctx context.Context, id string) (*grocery.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.lists[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return copyList(l), nil
}

func (r *GroceryListRepository) FindAll(ctx context.Context) ([]*grocery.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lists := make([]*grocery.List, 0, len(r.lists))
	for _, l := range r.lists {
		lists = append(lists, copyList(l))
	}
	sort.Slice(lists, func(i, j int) bool {
		return lists[i].CreatedAt.After(lists[j].CreatedAt)
	})
	return lists, nil
}

func (r *GroceryListRepository) Update(ctx context.Context, l *grocery.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lists[l.ID.String()]; !ok {
		return outbound.ErrNotFound
	}
	r.lists[l.ID.String()] = copyList(l)
	return nil
}

func (r *GroceryListRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lists[id]; !ok {
		return outbound.ErrNotFound
	}
	delete(r.lists, id)
	return nil
}

func copyList(l *grocery.List) *grocery.List {
	clone := *l
	clone.Items = append([]grocery.Item(nil), l.Items...)
	clone.Collaborators = append([]string(nil), l.Collaborators...)
	return &clone
}

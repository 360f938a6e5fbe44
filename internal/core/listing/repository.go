package listing

import (
	"github.com/aqarcrm/aqarcrm/internal/storage"
)

// Repository owns the in-memory property collection and mirrors every
// mutation to the store.
type Repository struct {
	col *storage.Collection[Property]
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{
		col: storage.NewCollection(store, storage.KeyProperties, func(p Property) string { return p.ID }, nil),
	}
}

func (r *Repository) All() []Property {
	return r.col.All()
}

func (r *Repository) Get(id string) (Property, bool) {
	return r.col.Get(id)
}

func (r *Repository) GetByCode(code string) (Property, bool) {
	for _, p := range r.col.All() {
		if p.Code == code {
			return p, true
		}
	}
	return Property{}, false
}

func (r *Repository) Upsert(p Property) {
	r.col.Upsert(p)
}

func (r *Repository) Delete(id string) bool {
	return r.col.Delete(id)
}

func (r *Repository) Replace(items []Property) {
	r.col.Replace(items)
}

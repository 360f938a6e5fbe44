package client

import (
	"github.com/aqarcrm/aqarcrm/internal/storage"
)

type Repository struct {
	col *storage.Collection[Client]
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{
		col: storage.NewCollection(store, storage.KeyClients, func(c Client) string { return c.ID }, nil),
	}
}

func (r *Repository) All() []Client {
	return r.col.All()
}

func (r *Repository) Get(id string) (Client, bool) {
	return r.col.Get(id)
}

func (r *Repository) Upsert(c Client) {
	r.col.Upsert(c)
}

func (r *Repository) Delete(id string) bool {
	return r.col.Delete(id)
}

func (r *Repository) Replace(items []Client) {
	r.col.Replace(items)
}

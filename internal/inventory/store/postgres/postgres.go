package postgres

import (
	"oysterfarm/internal/inventory/store"
	"oysterfarm/internal/repository"

	"github.com/doug-martin/goqu/v9"
)

// runner is the slice of goqu.Database and goqu.TxDatabase the stores need, so
// the same store code serves both the plain handle and a transaction.
type runner interface {
	Select(cols ...interface{}) *goqu.SelectDataset
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// NewStores builds the store set over a goqu runner.
func NewStores(db runner) store.Stores {
	return store.Stores{
		Products:  &ProductStore{db: db},
		Locations: &LocationStore{db: db},
		Stocks:    &StockStore{db: db},
		Movements: &MovementStore{db: db},
	}
}

// UnitOfWork brackets one engine call in one database transaction, the
// transaction boundary required for multi-record operations like transfers.
type UnitOfWork struct {
	r *repository.Repository
}

func NewUnitOfWork(r *repository.Repository) *UnitOfWork {
	return &UnitOfWork{r: r}
}

func (u *UnitOfWork) Do(fn func(s store.Stores) error) error {
	return repository.WithTransaction(u.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		return fn(NewStores(tx))
	})
}

package rental

import (
	"github.com/aqarcrm/aqarcrm/internal/storage"
)

type Repository struct {
	contracts *storage.Collection[Contract]
	payments  *storage.Collection[Payment]
	alerts    *storage.Collection[Alert]
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{
		contracts: storage.NewCollection(store, storage.KeyContracts, func(c Contract) string { return c.ID }, nil),
		payments:  storage.NewCollection(store, storage.KeyPayments, func(p Payment) string { return p.ID }, nil),
		alerts:    storage.NewCollection(store, storage.KeyAlerts, func(a Alert) string { return a.ID }, nil),
	}
}

func (r *Repository) AllContracts() []Contract               { return r.contracts.All() }
func (r *Repository) GetContract(id string) (Contract, bool) { return r.contracts.Get(id) }
func (r *Repository) UpsertContract(c Contract)              { r.contracts.Upsert(c) }
func (r *Repository) DeleteContract(id string) bool          { return r.contracts.Delete(id) }
func (r *Repository) ReplaceContracts(cs []Contract)         { r.contracts.Replace(cs) }

func (r *Repository) AllPayments() []Payment               { return r.payments.All() }
func (r *Repository) GetPayment(id string) (Payment, bool) { return r.payments.Get(id) }
func (r *Repository) UpsertPayment(p Payment)              { r.payments.Upsert(p) }
func (r *Repository) DeletePayment(id string) bool         { return r.payments.Delete(id) }
func (r *Repository) ReplacePayments(ps []Payment)         { r.payments.Replace(ps) }

func (r *Repository) AllAlerts() []Alert               { return r.alerts.All() }
func (r *Repository) GetAlert(id string) (Alert, bool) { return r.alerts.Get(id) }
func (r *Repository) UpsertAlert(a Alert)              { r.alerts.Upsert(a) }
func (r *Repository) DeleteAlert(id string) bool       { return r.alerts.Delete(id) }

// PaymentsForContract preserves insertion order.
func (r *Repository) PaymentsForContract(contractID string) []Payment {
	var out []Payment
	for _, p := range r.payments.All() {
		if p.ContractID == contractID {
			out = append(out, p)
		}
	}
	return out
}

// HasAlert reports whether an unresolved alert of the given type already
// exists for the subject, keyed by contract and optional payment.
func (r *Repository) HasAlert(t AlertType, contractID, paymentID string) bool {
	for _, a := range r.alerts.All() {
		if a.Type == t && a.ContractID == contractID && a.PaymentID == paymentID && !a.Resolved {
			return true
		}
	}
	return false
}

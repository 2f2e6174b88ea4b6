package repository

import (
	"context"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

// PaymentRepository stores the connected payment markers. No processing
// happens here; the external provider owns the money path.
type PaymentRepository struct {
	store store.Store
}

func NewPaymentRepository(s store.Store) *PaymentRepository {
	return &PaymentRepository{store: s}
}

func (r *PaymentRepository) Get(ctx context.Context) models.PaymentSelection {
	sel := models.PaymentSelection{}
	if v, err := r.store.Get(ctx, store.KeyPaymentType); err == nil {
		sel.Type = v
	}
	if v, err := r.store.Get(ctx, store.KeyPaymentMethod); err == nil {
		sel.Method = v
	}
	return sel
}

func (r *PaymentRepository) Save(ctx context.Context, sel models.PaymentSelection) error {
	if err := r.store.Set(ctx, store.KeyPaymentType, sel.Type); err != nil {
		return err
	}
	return r.store.Set(ctx, store.KeyPaymentMethod, sel.Method)
}

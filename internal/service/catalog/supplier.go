package service

import (
	"context"
	"fmt"

	"github.com/you-humble/kicad-dblib/internal/model"
	"github.com/you-humble/kicad-dblib/internal/workflow"
	"github.com/you-humble/kicad-dblib/platform/logger"
)

// NewAddSupplierDialog opens a supplier form. Suppliers accept any values.
func (svc *service) NewAddSupplierDialog() *workflow.Dialog[model.Supplier] {
	return workflow.Open(workflow.Spec[model.Supplier]{
		Kind:   workflow.KindAddSupplier,
		Fields: supplierFields,
		Submit: svc.addSupplier,
	}, svc.refresher, svc.opts...)
}

func (svc *service) addSupplier(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	const op string = "catalog.service.AddSupplier"
	log := logger.With(
		logger.String("supplier_name", s.Name),
	)

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	id, err := svc.repo.AddSupplier(wctx, s)
	if err != nil {
		log.Error(ctx, "repository add supplier", logger.ErrorF(err))
		return model.Supplier{}, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}
	s.ID = id

	log.Info(ctx, "supplier added", logger.String("supplier_id", id.String()))
	svc.notify(ctx, model.EntitySupplier, model.ActionCreated, "", id)

	return s, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/you-humble/kicad-dblib/internal/model"
	"github.com/you-humble/kicad-dblib/internal/validator"
	"github.com/you-humble/kicad-dblib/internal/workflow"
	"github.com/you-humble/kicad-dblib/platform/logger"
)

// NewAddPartDialog opens an empty part form with the library prefixes
// pre-filled.
func (svc *service) NewAddPartDialog() *workflow.Dialog[model.Part] {
	return workflow.Open(workflow.Spec[model.Part]{
		Kind:   workflow.KindAddPart,
		Fields: partFields,
		Defaults: model.Part{
			FootprintRef: model.DefaultFootprintRef,
			SymbolRef:    model.DefaultSymbolRef,
		},
		Validate: validator.Part,
		Submit:   svc.addPart,
	}, svc.refresher, svc.opts...)
}

// NewEditPartDialog loads the part stored under key. The key stays fixed for
// the whole session whatever the submitted values carry.
func (svc *service) NewEditPartDialog(ctx context.Context, key string) (*workflow.Dialog[model.Part], error) {
	const op string = "catalog.service.NewEditPartDialog"

	var storedID uuid.UUID
	spec := workflow.Spec[model.Part]{
		Kind:   workflow.KindEditPart,
		Fields: editPartFields,
		Validate: func(p model.Part) error {
			p.KicadPartNumber = key
			return validator.Part(p)
		},
		Submit: func(ctx context.Context, p model.Part) (model.Part, error) {
			p.ID, p.KicadPartNumber = storedID, key
			return svc.updatePart(ctx, p)
		},
	}

	load := func(ctx context.Context) (model.Part, error) {
		p, err := svc.PartDetails(ctx, key)
		if err != nil {
			return model.Part{}, err
		}
		storedID = p.ID
		return *p, nil
	}

	d, err := workflow.OpenEdit(ctx, spec, load, svc.refresher, svc.opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}

func (svc *service) addPart(ctx context.Context, p model.Part) (model.Part, error) {
	const op string = "catalog.service.AddPart"
	log := logger.With(
		logger.String("kicad_part_number", p.KicadPartNumber),
		logger.String("component_type", string(p.ComponentType)),
	)

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	id, err := svc.repo.AddPart(wctx, p)
	if err != nil {
		log.Error(ctx, "repository add part", logger.ErrorF(err))
		return model.Part{}, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}
	p.ID = id

	log.Info(ctx, "part added", logger.String("part_id", id.String()))
	svc.notify(ctx, model.EntityPart, model.ActionCreated, p.KicadPartNumber, id)

	return p, nil
}

func (svc *service) updatePart(ctx context.Context, p model.Part) (model.Part, error) {
	const op string = "catalog.service.UpdatePart"
	log := logger.With(
		logger.String("kicad_part_number", p.KicadPartNumber),
	)

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.UpdatePart(wctx, p); err != nil {
		log.Error(ctx, "repository update part", logger.ErrorF(err))
		return model.Part{}, svc.wrapRepoErr(op, err)
	}

	log.Info(ctx, "part updated")
	svc.notify(ctx, model.EntityPart, model.ActionUpdated, p.KicadPartNumber, p.ID)

	return p, nil
}

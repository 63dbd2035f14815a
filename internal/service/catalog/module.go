package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/you-humble/kicad-dblib/internal/model"
	"github.com/you-humble/kicad-dblib/internal/resolver"
	"github.com/you-humble/kicad-dblib/internal/workflow"
	"github.com/you-humble/kicad-dblib/platform/logger"
)

// NewAddModuleDialog snapshots the current part keys into a resolver that
// lives as long as the dialog. Parts added elsewhere afterwards are not
// selectable until a new dialog is opened.
func (svc *service) NewAddModuleDialog(ctx context.Context) (*workflow.Dialog[model.Module], resolver.Map, error) {
	const op string = "catalog.service.NewAddModuleDialog"

	keys, err := svc.PartKeys(ctx)
	if err != nil {
		return nil, resolver.Map{}, fmt.Errorf("%s: %w", op, err)
	}
	res := resolver.New(keys)

	d := workflow.Open(workflow.Spec[model.Module]{
		Kind:   workflow.KindAddModule,
		Fields: moduleFields,
		Defaults: model.Module{
			FootprintRef: model.DefaultFootprintRef,
			SymbolRef:    model.DefaultSymbolRef,
		},
		Validate: func(m model.Module) error {
			_, err := res.Resolve(m.Parts)
			return err
		},
		Submit: func(ctx context.Context, m model.Module) (model.Module, error) {
			return svc.createModule(ctx, res, m)
		},
	}, svc.refresher, svc.opts...)

	return d, res, nil
}

// AttachParts links more parts to a stored module. The links are written
// separately from the module row; on failure the module keeps its previous
// links.
func (svc *service) AttachParts(ctx context.Context, moduleID uuid.UUID, keys []string) error {
	const op string = "catalog.service.AttachParts"
	log := logger.With(
		logger.String("module_id", moduleID.String()),
		logger.Int("number_parts", len(keys)),
	)

	rctx, rcancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rcancel()

	exists, err := svc.repo.ModuleExists(rctx, moduleID)
	if err != nil {
		log.Error(ctx, "repository module exists", logger.ErrorF(err))
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}
	if !exists {
		log.Warn(ctx, "module not found")
		return fmt.Errorf("%s: %w", op, model.ErrModuleNotFound)
	}

	pairs, err := svc.repo.PartKeys(rctx)
	if err != nil {
		log.Error(ctx, "repository part keys", logger.ErrorF(err))
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	partIDs, err := resolver.New(pairs).Resolve(keys)
	if err != nil {
		log.Warn(ctx, "resolve part keys", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wcancel()

	if err := svc.repo.AddModuleParts(wctx, moduleID, partIDs); err != nil {
		log.Error(ctx, "repository add module parts", logger.ErrorF(err))
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	svc.notify(ctx, model.EntityModule, model.ActionLinked, "", moduleID)

	return nil
}

func (svc *service) createModule(ctx context.Context, res resolver.Map, m model.Module) (model.Module, error) {
	const op string = "catalog.service.CreateModule"
	log := logger.With(
		logger.String("kicad_part_number", m.KicadPartNumber),
		logger.Int("number_parts", len(m.Parts)),
	)

	partIDs, err := res.Resolve(m.Parts)
	if err != nil {
		return model.Module{}, fmt.Errorf("%s: %w", op, err)
	}

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	id, err := svc.repo.CreateModule(wctx, m, partIDs)
	if err != nil {
		log.Error(ctx, "repository create module", logger.ErrorF(err))
		return model.Module{}, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}
	m.ID = id

	log.Info(ctx, "module created", logger.String("module_id", id.String()))
	svc.notify(ctx, model.EntityModule, model.ActionCreated, m.KicadPartNumber, id)

	return m, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/kicad-dblib/internal/model"
	"github.com/you-humble/kicad-dblib/internal/workflow"
	"github.com/you-humble/kicad-dblib/platform/logger"
)

type CatalogRepository interface {
	AddPart(ctx context.Context, p model.Part) (uuid.UUID, error)
	UpdatePart(ctx context.Context, p model.Part) error
	Parts(ctx context.Context, filter model.PartsFilter) ([]model.PartRow, error)
	PartByKey(ctx context.Context, key string) (*model.Part, error)
	PartKeys(ctx context.Context) ([]model.PartKey, error)
	AddModule(ctx context.Context, m model.Module) (uuid.UUID, error)
	AddModuleParts(ctx context.Context, moduleID uuid.UUID, partIDs []uuid.UUID) error
	CreateModule(ctx context.Context, m model.Module, partIDs []uuid.UUID) (uuid.UUID, error)
	ModuleParts(ctx context.Context, moduleID uuid.UUID) ([]model.ModulePart, error)
	ModuleExists(ctx context.Context, moduleID uuid.UUID) (bool, error)
	AddSupplier(ctx context.Context, s model.Supplier) (uuid.UUID, error)
}

type ChangeProducer interface {
	SendCatalogChanged(ctx context.Context, event model.ChangeEvent) error
}

type service struct {
	repo      CatalogRepository
	producer  ChangeProducer
	refresher workflow.Refresher
	opts      []workflow.Option

	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

// NewCatalogService wires the dialogs to the repository. The refresher runs
// after every successful dialog submission; opts are passed to every dialog.
func NewCatalogService(
	repository CatalogRepository,
	producer ChangeProducer,
	refresher workflow.Refresher,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
	opts ...workflow.Option,
) *service {
	svc := &service{
		repo:           repository,
		producer:       producer,
		refresher:      refresher,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
	svc.opts = append([]workflow.Option{workflow.WithRefreshErrorHandler(svc.logRefreshError)}, opts...)

	return svc
}

func (svc *service) Parts(ctx context.Context, filter model.PartsFilter) ([]model.PartRow, error) {
	const op string = "catalog.service.Parts"
	log := logger.With(
		logger.String("component_type", string(filter.ComponentType)),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	rows, err := svc.repo.Parts(ctx, filter)
	if err != nil {
		log.Error(ctx, "repository parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	return rows, nil
}

func (svc *service) PartDetails(ctx context.Context, key string) (*model.Part, error) {
	const op string = "catalog.service.PartDetails"
	log := logger.With(
		logger.String("kicad_part_number", key),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	p, err := svc.repo.PartByKey(ctx, key)
	if err != nil {
		log.Error(ctx, "repository part by key", logger.ErrorF(err))
		return nil, svc.wrapRepoErr(op, err)
	}

	return p, nil
}

func (svc *service) PartKeys(ctx context.Context) ([]model.PartKey, error) {
	const op string = "catalog.service.PartKeys"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	keys, err := svc.repo.PartKeys(ctx)
	if err != nil {
		logger.Error(ctx, "repository part keys", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	return keys, nil
}

func (svc *service) ModuleParts(ctx context.Context, moduleID uuid.UUID) ([]model.ModulePart, error) {
	const op string = "catalog.service.ModuleParts"
	log := logger.With(
		logger.String("module_id", moduleID.String()),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	links, err := svc.repo.ModuleParts(ctx, moduleID)
	if err != nil {
		log.Error(ctx, "repository module parts", logger.ErrorF(err))
		return nil, svc.wrapRepoErr(op, err)
	}

	return links, nil
}

// wrapRepoErr marks storage failures with ErrPersistence. Not-found errors
// are domain outcomes and pass through unmarked.
func (svc *service) wrapRepoErr(op string, err error) error {
	switch {
	case errors.Is(err, model.ErrPartNotFound), errors.Is(err, model.ErrModuleNotFound):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}
}

// notify publishes a change event. Delivery failures are logged only: the
// mutation is already committed.
func (svc *service) notify(ctx context.Context, entity model.Entity, action model.Action, key string, id uuid.UUID) {
	event := model.ChangeEvent{
		EventID: uuid.New(),
		Entity:  entity,
		Action:  action,
		Key:     key,
		ID:      id,
	}

	if err := svc.producer.SendCatalogChanged(ctx, event); err != nil {
		logger.Warn(ctx, "send catalog changed",
			logger.String("entity", string(entity)),
			logger.String("action", string(action)),
			logger.String("id", id.String()),
			logger.ErrorF(err),
		)
	}
}

func (svc *service) logRefreshError(ctx context.Context, err error) {
	logger.Warn(ctx, "refresh after submit", logger.ErrorF(err))
}

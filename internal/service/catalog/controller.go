package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/you-humble/kicad-dblib/internal/model"
	"github.com/you-humble/kicad-dblib/platform/logger"
)

type PartLister interface {
	Parts(ctx context.Context, filter model.PartsFilter) ([]model.PartRow, error)
}

// Presenter receives every listing the controller produces through
// FilterByType or Refresh.
type Presenter interface {
	ShowParts(ctx context.Context, filter model.PartsFilter, rows []model.PartRow) error
}

// controller keeps one filter for the whole process: the listing every
// presenter client sees. Only FilterByType changes it.
type controller struct {
	parts         PartLister
	presenter     Presenter
	readDBTimeout time.Duration

	mu     sync.Mutex
	filter model.PartsFilter
}

func NewCatalogController(parts PartLister, presenter Presenter, readDBTimeout time.Duration) *controller {
	return &controller{
		parts:         parts,
		presenter:     presenter,
		readDBTimeout: readDBTimeout,
	}
}

// List queries storage on every call.
func (c *controller) List(ctx context.Context, filter model.PartsFilter) ([]model.PartRow, error) {
	const op string = "catalog.controller.List"

	ctx, cancel := context.WithTimeout(ctx, c.readDBTimeout)
	defer cancel()

	rows, err := c.parts.Parts(ctx, filter)
	if err != nil {
		logger.Error(ctx, "repository parts",
			logger.String("component_type", string(filter.ComponentType)),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	return rows, nil
}

// FilterByType remembers ct as the active filter and shows the matching
// rows. A nil ct clears the filter.
func (c *controller) FilterByType(ctx context.Context, ct *model.ComponentType) ([]model.PartRow, error) {
	var filter model.PartsFilter
	if ct != nil {
		filter.ComponentType = *ct
	}

	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()

	return c.show(ctx, filter)
}

// Refresh re-runs the active filter. It is the refresher handed to dialogs.
func (c *controller) Refresh(ctx context.Context) error {
	_, err := c.show(ctx, c.Filter())
	return err
}

func (c *controller) Filter() model.PartsFilter {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.filter
}

func (c *controller) show(ctx context.Context, filter model.PartsFilter) ([]model.PartRow, error) {
	rows, err := c.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if c.presenter != nil {
		if err := c.presenter.ShowParts(ctx, filter, rows); err != nil {
			logger.Warn(ctx, "presenter show parts", logger.ErrorF(err))
		}
	}

	return rows, nil
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/you-humble/kicad-dblib/internal/model"
	"github.com/you-humble/kicad-dblib/internal/resolver"
	"github.com/you-humble/kicad-dblib/internal/workflow"
	"github.com/you-humble/kicad-dblib/platform/logger"
	catalogv1 "github.com/you-humble/kicad-dblib/pkg/api/catalog/v1"
)

type CatalogService interface {
	PartDetails(ctx context.Context, key string) (*model.Part, error)
	PartKeys(ctx context.Context) ([]model.PartKey, error)
	ModuleParts(ctx context.Context, moduleID uuid.UUID) ([]model.ModulePart, error)
	AttachParts(ctx context.Context, moduleID uuid.UUID, keys []string) error
	NewAddPartDialog() *workflow.Dialog[model.Part]
	NewEditPartDialog(ctx context.Context, key string) (*workflow.Dialog[model.Part], error)
	NewAddModuleDialog(ctx context.Context) (*workflow.Dialog[model.Module], resolver.Map, error)
	NewAddSupplierDialog() *workflow.Dialog[model.Supplier]
}

type CatalogController interface {
	List(ctx context.Context, filter model.PartsFilter) ([]model.PartRow, error)
	FilterByType(ctx context.Context, ct *model.ComponentType) ([]model.PartRow, error)
}

type handler struct {
	svc  CatalogService
	ctrl CatalogController
}

func NewCatalogHandler(service CatalogService, controller CatalogController) *handler {
	return &handler{svc: service, ctrl: controller}
}

// Register mounts the catalogue routes on r.
func (h *handler) Register(r chi.Router) {
	r.Route("/parts", func(r chi.Router) {
		r.Get("/", h.ListParts)
		r.Post("/", h.AddPart)
		r.Get("/keys", h.PartKeys)
		r.Get("/export.xlsx", h.ExportParts)
		r.Get("/{key}", h.PartDetails)
		r.Put("/{key}", h.EditPart)
	})
	r.Route("/modules", func(r chi.Router) {
		r.Post("/", h.AddModule)
		r.Get("/{id}/parts", h.ModuleParts)
		r.Post("/{id}/parts", h.AttachParts)
	})
	r.Put("/listing", h.SetListingFilter)
	r.Post("/suppliers", h.AddSupplier)
	r.Get("/component-types", h.ComponentTypes)
	r.Get("/forms/{kind}", h.Form)
}

// parseFilter reads the optional component_type query parameter. An empty
// value means all types.
func parseFilter(r *http.Request) (*model.ComponentType, error) {
	raw := r.URL.Query().Get("component_type")
	if raw == "" {
		return nil, nil
	}

	ct := model.ComponentType(raw)
	if !ct.Known() {
		return nil, &model.ValidationError{
			Field:  "Component Type",
			Reason: fmt.Sprintf("%q is not a known component type.", raw),
		}
	}

	return &ct, nil
}

func filterOf(ct *model.ComponentType) model.PartsFilter {
	if ct == nil {
		return model.PartsFilter{}
	}
	return model.PartsFilter{ComponentType: *ct}
}

func parseModuleID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, &model.ValidationError{Field: "module id", Reason: "must be a UUID."}
	}
	return id, nil
}

func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &model.ValidationError{Field: "request body", Reason: "is not valid JSON: " + err.Error()}
	}
	return nil
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "encode response", logger.ErrorF(err))
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", logger.ErrorF(err))
	}

	writeJSON(ctx, w, status, catalogv1.Error{Code: status, Message: messageFromError(err)})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrUnknownPart):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, model.ErrPartNotFound), errors.Is(err, model.ErrModuleNotFound):
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}

// messageFromError prefers the bare validation message, which is what a
// form shows next to the offending field.
func messageFromError(err error) string {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return err.Error()
}

func submitted[T any](d *workflow.Dialog[T], id uuid.UUID) catalogv1.SubmitResponse {
	resp := catalogv1.SubmitResponse{Kind: d.Kind().String(), State: d.State().String()}
	if id != uuid.Nil {
		resp.ID = id.String()
	}
	return resp
}

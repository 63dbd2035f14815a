package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/kicad-dblib/internal/converter"
	"github.com/you-humble/kicad-dblib/internal/model"
	catalogv1 "github.com/you-humble/kicad-dblib/pkg/api/catalog/v1"
)

// ListParts answers the caller only. The shared listing pushed to websocket
// clients is changed through SetListingFilter.
func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ct, err := parseFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.ctrl.List(ctx, filterOf(ct))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, partsResponse(ct, rows))
}

// SetListingFilter makes ct the filter of the shared listing, re-runs it and
// pushes the rows to every websocket client.
func (h *handler) SetListingFilter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ct, err := parseFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.ctrl.FilterByType(ctx, ct)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, partsResponse(ct, rows))
}

func partsResponse(ct *model.ComponentType, rows []model.PartRow) catalogv1.PartsResponse {
	var filter string
	if ct != nil {
		filter = string(*ct)
	}

	return catalogv1.PartsResponse{
		ComponentType: filter,
		Parts:         converter.PartRowsToAPI(rows),
	}
}

func (h *handler) PartKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	keys, err := h.svc.PartKeys(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, converter.PartKeysToAPI(keys))
}

func (h *handler) PartDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.svc.PartDetails(ctx, chi.URLParam(r, "key"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, converter.PartToAPI(*p))
}

// AddPart fills the form defaults, overlays the request body and submits.
func (h *handler) AddPart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dlg := h.svc.NewAddPartDialog()
	defer dlg.Close()

	req := converter.PartToAPI(dlg.Values())
	if err := decode(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := dlg.Submit(ctx, converter.PartFromAPI(req)); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, submitted(dlg, dlg.Values().ID))
}

// EditPart loads the stored part, overlays the request body and submits.
// Fields missing from the body keep their stored values.
func (h *handler) EditPart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dlg, err := h.svc.NewEditPartDialog(ctx, chi.URLParam(r, "key"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	defer dlg.Close()

	req := converter.PartToAPI(dlg.Values())
	if err := decode(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := dlg.Submit(ctx, converter.PartFromAPI(req)); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, submitted(dlg, dlg.Values().ID))
}

func (h *handler) ComponentTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, converter.ComponentTypesToAPI(model.ComponentTypes()))
}

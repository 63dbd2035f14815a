package http

import (
	"net/http"

	"github.com/you-humble/kicad-dblib/internal/converter"
	catalogv1 "github.com/you-humble/kicad-dblib/pkg/api/catalog/v1"
)

func (h *handler) AddModule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dlg, _, err := h.svc.NewAddModuleDialog(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	defer dlg.Close()

	req := converter.ModuleToAPI(dlg.Values())
	if err := decode(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := dlg.Submit(ctx, converter.ModuleFromAPI(req)); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, submitted(dlg, dlg.Values().ID))
}

func (h *handler) ModuleParts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseModuleID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	links, err := h.svc.ModuleParts(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, converter.ModulePartsToAPI(links))
}

func (h *handler) AttachParts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseModuleID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req catalogv1.AttachPartsRequest
	if err := decode(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.svc.AttachParts(ctx, id, req.Parts); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

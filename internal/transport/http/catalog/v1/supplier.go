package http

import (
	"net/http"

	"github.com/you-humble/kicad-dblib/internal/converter"
)

func (h *handler) AddSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dlg := h.svc.NewAddSupplierDialog()
	defer dlg.Close()

	req := converter.SupplierToAPI(dlg.Values())
	if err := decode(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := dlg.Submit(ctx, converter.SupplierFromAPI(req)); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, submitted(dlg, dlg.Values().ID))
}

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/kicad-dblib/internal/converter"
	"github.com/you-humble/kicad-dblib/internal/model"
	"github.com/you-humble/kicad-dblib/internal/workflow"
	catalogv1 "github.com/you-humble/kicad-dblib/pkg/api/catalog/v1"
)

// Form opens a dialog only to describe it and abandons it right away.
func (h *handler) Form(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, ok := workflow.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		writeJSON(ctx, w, http.StatusNotFound, catalogv1.Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("unknown form %q", chi.URLParam(r, "kind")),
		})
		return
	}

	var form catalogv1.Form
	switch kind {
	case workflow.KindAddPart:
		dlg := h.svc.NewAddPartDialog()
		defer dlg.Close()
		form = catalogv1.Form{Fields: converter.FieldsToAPI(dlg.Fields()), Defaults: converter.PartToAPI(dlg.Defaults())}

	case workflow.KindEditPart:
		key := r.URL.Query().Get("key")
		if key == "" {
			writeError(ctx, w, &model.ValidationError{Field: "key"})
			return
		}

		dlg, err := h.svc.NewEditPartDialog(ctx, key)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		defer dlg.Close()
		form = catalogv1.Form{Fields: converter.FieldsToAPI(dlg.Fields()), Defaults: converter.PartToAPI(dlg.Defaults())}

	case workflow.KindAddModule:
		dlg, res, err := h.svc.NewAddModuleDialog(ctx)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		defer dlg.Close()
		form = catalogv1.Form{
			Fields:   converter.FieldsToAPI(dlg.Fields()),
			Defaults: converter.ModuleToAPI(dlg.Defaults()),
			PartKeys: res.Keys(),
		}

	case workflow.KindAddSupplier:
		dlg := h.svc.NewAddSupplierDialog()
		defer dlg.Close()
		form = catalogv1.Form{Fields: converter.FieldsToAPI(dlg.Fields()), Defaults: converter.SupplierToAPI(dlg.Defaults())}
	}

	form.Kind = kind.String()
	writeJSON(ctx, w, http.StatusOK, form)
}

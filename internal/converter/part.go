package converter

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/kicad-dblib/internal/model"
	"github.com/you-humble/kicad-dblib/internal/workflow"
	catalogv1 "github.com/you-humble/kicad-dblib/pkg/api/catalog/v1"
)

func PartToAPI(p model.Part) catalogv1.Part {
	var id string
	if p.ID != uuid.Nil {
		id = p.ID.String()
	}

	return catalogv1.Part{
		ID:                     id,
		Description:            p.Description,
		Datasheet:              p.Datasheet,
		FootprintRef:           p.FootprintRef,
		SymbolRef:              p.SymbolRef,
		ModelRef:               p.ModelRef,
		KicadPartNumber:        p.KicadPartNumber,
		ManufacturerPartNumber: p.ManufacturerPartNumber,
		Manufacturer:           p.Manufacturer,
		ManufacturerPartURL:    p.ManufacturerPartURL,
		Note:                   p.Note,
		Value:                  p.Value,
		ComponentType:          string(p.ComponentType),
	}
}

// PartFromAPI ignores the id: storage assigns it.
func PartFromAPI(p catalogv1.Part) model.Part {
	return model.Part{
		Description:            p.Description,
		Datasheet:              p.Datasheet,
		FootprintRef:           p.FootprintRef,
		SymbolRef:              p.SymbolRef,
		ModelRef:               p.ModelRef,
		KicadPartNumber:        p.KicadPartNumber,
		ManufacturerPartNumber: p.ManufacturerPartNumber,
		Manufacturer:           p.Manufacturer,
		ManufacturerPartURL:    p.ManufacturerPartURL,
		Note:                   p.Note,
		Value:                  p.Value,
		ComponentType:          model.ComponentType(p.ComponentType),
	}
}

func PartRowsToAPI(rows []model.PartRow) []catalogv1.PartRow {
	return lo.Map(rows, func(r model.PartRow, _ int) catalogv1.PartRow {
		return catalogv1.PartRow{
			KicadPartNumber:        r.KicadPartNumber,
			Description:            r.Description,
			ComponentType:          string(r.ComponentType),
			Value:                  r.Value,
			SymbolRef:              r.SymbolRef,
			FootprintRef:           r.FootprintRef,
			Manufacturer:           r.Manufacturer,
			ManufacturerPartNumber: r.ManufacturerPartNumber,
		}
	})
}

func PartKeysToAPI(keys []model.PartKey) []catalogv1.PartKey {
	return lo.Map(keys, func(k model.PartKey, _ int) catalogv1.PartKey {
		return catalogv1.PartKey{ID: k.ID.String(), KicadPartNumber: k.KicadPartNumber}
	})
}

func ModuleToAPI(m model.Module) catalogv1.Module {
	parts := m.Parts
	if parts == nil {
		parts = []string{}
	}

	return catalogv1.Module{
		Description:            m.Description,
		Datasheet:              m.Datasheet,
		FootprintRef:           m.FootprintRef,
		SymbolRef:              m.SymbolRef,
		ModelRef:               m.ModelRef,
		KicadPartNumber:        m.KicadPartNumber,
		ManufacturerPartNumber: m.ManufacturerPartNumber,
		Manufacturer:           m.Manufacturer,
		ManufacturerPartURL:    m.ManufacturerPartURL,
		Note:                   m.Note,
		Value:                  m.Value,
		Parts:                  parts,
	}
}

func ModuleFromAPI(m catalogv1.Module) model.Module {
	return model.Module{
		Description:            m.Description,
		Datasheet:              m.Datasheet,
		FootprintRef:           m.FootprintRef,
		SymbolRef:              m.SymbolRef,
		ModelRef:               m.ModelRef,
		KicadPartNumber:        m.KicadPartNumber,
		ManufacturerPartNumber: m.ManufacturerPartNumber,
		Manufacturer:           m.Manufacturer,
		ManufacturerPartURL:    m.ManufacturerPartURL,
		Note:                   m.Note,
		Value:                  m.Value,
		Parts:                  m.Parts,
	}
}

func ModulePartsToAPI(links []model.ModulePart) []catalogv1.ModulePart {
	return lo.Map(links, func(l model.ModulePart, _ int) catalogv1.ModulePart {
		return catalogv1.ModulePart{ModuleID: l.ModuleID.String(), PartID: l.PartID.String()}
	})
}

func SupplierToAPI(s model.Supplier) catalogv1.Supplier {
	return catalogv1.Supplier{
		Name:    s.Name,
		Address: s.Address,
		WebURL:  s.WebURL,
		Phone:   s.Phone,
		Email:   s.Email,
	}
}

func SupplierFromAPI(s catalogv1.Supplier) model.Supplier {
	return model.Supplier{
		Name:    s.Name,
		Address: s.Address,
		WebURL:  s.WebURL,
		Phone:   s.Phone,
		Email:   s.Email,
	}
}

func FieldsToAPI(fields []workflow.Field) []catalogv1.Field {
	return lo.Map(fields, func(f workflow.Field, _ int) catalogv1.Field {
		return catalogv1.Field{Name: f.Name, Label: f.Label}
	})
}

func ComponentTypesToAPI(types []model.ComponentType) []string {
	return lo.Map(types, func(ct model.ComponentType, _ int) string { return string(ct) })
}

package repository

import (
	"github.com/you-humble/kicad-dblib/internal/model"
)

func PartEntityToModel(e PartEntity) *model.Part {
	return &model.Part{
		ID:                     e.ID,
		Description:            e.Description,
		Datasheet:              e.Datasheet,
		FootprintRef:           e.FootprintRef,
		SymbolRef:              e.SymbolRef,
		ModelRef:               e.ModelRef,
		KicadPartNumber:        e.KicadPartNumber,
		ManufacturerPartNumber: e.ManufacturerPartNumber,
		Manufacturer:           e.Manufacturer,
		ManufacturerPartURL:    e.ManufacturerPartURL,
		Note:                   e.Note,
		Value:                  e.Value,
		ComponentType:          model.ComponentType(e.ComponentType),
	}
}

func PartRowEntityToModel(e PartRowEntity) model.PartRow {
	return model.PartRow{
		KicadPartNumber:        e.KicadPartNumber,
		Description:            e.Description,
		ComponentType:          model.ComponentType(e.ComponentType),
		Value:                  e.Value,
		SymbolRef:              e.SymbolRef,
		FootprintRef:           e.FootprintRef,
		Manufacturer:           e.Manufacturer,
		ManufacturerPartNumber: e.ManufacturerPartNumber,
	}
}

func PartKeyEntityToModel(e PartKeyEntity) model.PartKey {
	return model.PartKey{ID: e.ID, KicadPartNumber: e.KicadPartNumber}
}

func ModulePartEntityToModel(e ModulePartEntity) model.ModulePart {
	return model.ModulePart{ModuleID: e.ModuleID, PartID: e.PartID}
}

// partValues follows the order of partColumns without the id.
func partValues(p model.Part) []any {
	return []any{
		p.Description,
		p.Datasheet,
		p.FootprintRef,
		p.SymbolRef,
		p.ModelRef,
		p.KicadPartNumber,
		p.ManufacturerPartNumber,
		p.Manufacturer,
		p.ManufacturerPartURL,
		p.Note,
		p.Value,
		string(p.ComponentType),
	}
}

func moduleValues(m model.Module) []any {
	return []any{
		m.Description,
		m.Datasheet,
		m.FootprintRef,
		m.SymbolRef,
		m.ModelRef,
		m.KicadPartNumber,
		m.ManufacturerPartNumber,
		m.Manufacturer,
		m.ManufacturerPartURL,
		m.Note,
		m.Value,
	}
}

func supplierValues(s model.Supplier) []any {
	return []any{s.Name, s.Address, s.WebURL, s.Phone, s.Email}
}

package service

import "github.com/you-humble/kicad-dblib/internal/workflow"

var (
	partFields = []workflow.Field{
		{Name: "description", Label: "Description"},
		{Name: "datasheet", Label: "Datasheet"},
		{Name: "footprint_ref", Label: "Footprint Ref"},
		{Name: "symbol_ref", Label: "Symbol Ref"},
		{Name: "model_ref", Label: "Model Ref"},
		{Name: "kicad_part_number", Label: "KiCad Part Number"},
		{Name: "manufacturer_part_number", Label: "Manufacturer Part Number"},
		{Name: "manufacturer", Label: "Manufacturer"},
		{Name: "manufacturer_part_url", Label: "Manufacturer Part URL"},
		{Name: "note", Label: "Note"},
		{Name: "value", Label: "Value"},
		{Name: "component_type", Label: "Component Type"},
	}

	// The business key is not editable.
	editPartFields = []workflow.Field{
		{Name: "description", Label: "Description"},
		{Name: "datasheet", Label: "Datasheet"},
		{Name: "footprint_ref", Label: "Footprint Ref"},
		{Name: "symbol_ref", Label: "Symbol Ref"},
		{Name: "model_ref", Label: "Model Ref"},
		{Name: "manufacturer_part_number", Label: "Manufacturer Part Number"},
		{Name: "manufacturer", Label: "Manufacturer"},
		{Name: "manufacturer_part_url", Label: "Manufacturer Part URL"},
		{Name: "note", Label: "Note"},
		{Name: "value", Label: "Value"},
		{Name: "component_type", Label: "Component Type"},
	}

	moduleFields = []workflow.Field{
		{Name: "description", Label: "Description"},
		{Name: "datasheet", Label: "Datasheet"},
		{Name: "footprint_ref", Label: "Footprint Ref"},
		{Name: "symbol_ref", Label: "Symbol Ref"},
		{Name: "model_ref", Label: "Model Ref"},
		{Name: "kicad_part_number", Label: "KiCad Part Number"},
		{Name: "manufacturer_part_number", Label: "Manufacturer Part Number"},
		{Name: "manufacturer", Label: "Manufacturer"},
		{Name: "manufacturer_part_url", Label: "Manufacturer Part URL"},
		{Name: "note", Label: "Note"},
		{Name: "value", Label: "Value"},
		{Name: "parts", Label: "Selected Parts"},
	}

	supplierFields = []workflow.Field{
		{Name: "name", Label: "Supplier Name"},
		{Name: "address", Label: "Address"},
		{Name: "web_url", Label: "Web URL"},
		{Name: "phone", Label: "Phone"},
		{Name: "email", Label: "Email"},
	}
)

// Package validator checks entities before they reach storage.
package validator

import (
	"fmt"
	"strings"

	"github.com/you-humble/kicad-dblib/internal/model"
)

const (
	FieldKicadPartNumber        = "KiCad Part Number"
	FieldManufacturerPartNumber = "Manufacturer Part Number"
	FieldFootprintRef           = "Footprint Ref"
	FieldSymbolRef              = "Symbol Ref"
	FieldComponentType          = "Component Type"
)

// Part returns the first failing check as a *model.ValidationError, or nil.
// Required fields are checked in a fixed order, then the component type.
func Part(p model.Part) error {
	required := []struct {
		name  string
		value string
	}{
		{FieldKicadPartNumber, p.KicadPartNumber},
		{FieldManufacturerPartNumber, p.ManufacturerPartNumber},
		{FieldFootprintRef, p.FootprintRef},
		{FieldSymbolRef, p.SymbolRef},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &model.ValidationError{Field: f.name}
		}
	}

	if !p.ComponentType.Known() {
		return &model.ValidationError{
			Field:  FieldComponentType,
			Reason: fmt.Sprintf("%q is not a known component type.", p.ComponentType),
		}
	}

	return nil
}

// Check adapts Part to a (valid, message) pair for presentation layers.
func Check(p model.Part) (bool, string) {
	if err := Part(p); err != nil {
		return false, err.Error()
	}
	return true, ""
}

package model

import "github.com/google/uuid"

type Module struct {
	// Storage identifier (module_uuid), generated on insert.
	ID                     uuid.UUID
	Description            string
	Datasheet              string
	FootprintRef           string
	SymbolRef              string
	ModelRef               string
	KicadPartNumber        string
	ManufacturerPartNumber string
	Manufacturer           string
	ManufacturerPartURL    string
	Note                   string
	Value                  string
	// Business keys of the selected parts, in selection order.
	// Duplicates are kept.
	Parts []string
}

type ModulePart struct {
	ModuleID uuid.UUID
	PartID   uuid.UUID
}

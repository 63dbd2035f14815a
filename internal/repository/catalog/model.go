package repository

import "github.com/google/uuid"

const (
	tableParts       = "parts"
	tableModule      = "module"
	tableModuleParts = "module_parts"
	tableSupplier    = "supplier"
)

var (
	partColumns = []string{
		"parts_uuid",
		"description",
		"datasheet",
		"footprint_ref",
		"symbol_ref",
		"model_ref",
		"kicad_part_number",
		"manufacturer_part_number",
		"manufacturer",
		"manufacturer_part_url",
		"note",
		"value",
		"component_type",
	}

	partRowColumns = []string{
		"kicad_part_number",
		"description",
		"component_type",
		"value",
		"symbol_ref",
		"footprint_ref",
		"manufacturer",
		"manufacturer_part_number",
	}

	moduleColumns = []string{
		"description",
		"datasheet",
		"footprint_ref",
		"symbol_ref",
		"model_ref",
		"kicad_part_number",
		"manufacturer_part_number",
		"manufacturer",
		"manufacturer_part_url",
		"note",
		"value",
	}

	supplierColumns = []string{
		"supplier_name",
		"supplier_address",
		"supplier_web_url",
		"supplier_phone",
		"supplier_email",
	}
)

type PartEntity struct {
	ID                     uuid.UUID `db:"parts_uuid"`
	Description            string    `db:"description"`
	Datasheet              string    `db:"datasheet"`
	FootprintRef           string    `db:"footprint_ref"`
	SymbolRef              string    `db:"symbol_ref"`
	ModelRef               string    `db:"model_ref"`
	KicadPartNumber        string    `db:"kicad_part_number"`
	ManufacturerPartNumber string    `db:"manufacturer_part_number"`
	Manufacturer           string    `db:"manufacturer"`
	ManufacturerPartURL    string    `db:"manufacturer_part_url"`
	Note                   string    `db:"note"`
	Value                  string    `db:"value"`
	ComponentType          string    `db:"component_type"`
}

type PartRowEntity struct {
	KicadPartNumber        string `db:"kicad_part_number"`
	Description            string `db:"description"`
	ComponentType          string `db:"component_type"`
	Value                  string `db:"value"`
	SymbolRef              string `db:"symbol_ref"`
	FootprintRef           string `db:"footprint_ref"`
	Manufacturer           string `db:"manufacturer"`
	ManufacturerPartNumber string `db:"manufacturer_part_number"`
}

type PartKeyEntity struct {
	ID              uuid.UUID `db:"parts_uuid"`
	KicadPartNumber string    `db:"kicad_part_number"`
}

type ModulePartEntity struct {
	ModuleID uuid.UUID `db:"module_uuid"`
	PartID   uuid.UUID `db:"part_uuid"`
}

package model

import "github.com/google/uuid"

type ComponentType string

const (
	ComponentNone              ComponentType = ""
	ComponentResistor          ComponentType = "Resistor"
	ComponentCapacitor         ComponentType = "Capacitor"
	ComponentConnector         ComponentType = "Connector"
	ComponentDiode             ComponentType = "Diode"
	ComponentElectroMechanical ComponentType = "Electro Mechanical"
	ComponentMechanical        ComponentType = "Mechanical"
	ComponentInductor          ComponentType = "Inductor"
	ComponentOpto              ComponentType = "Opto"
	ComponentOpAmp             ComponentType = "OpAmp"
	ComponentTransistor        ComponentType = "Transistor"
	ComponentPowerSupplyIC     ComponentType = "Power Supply IC"
	ComponentSemiconductor     ComponentType = "Semiconductor"
)

// ComponentTypes lists the selectable component types, the empty type first.
func ComponentTypes() []ComponentType {
	return []ComponentType{
		ComponentNone,
		ComponentResistor,
		ComponentCapacitor,
		ComponentConnector,
		ComponentDiode,
		ComponentElectroMechanical,
		ComponentMechanical,
		ComponentInductor,
		ComponentOpto,
		ComponentOpAmp,
		ComponentTransistor,
		ComponentPowerSupplyIC,
		ComponentSemiconductor,
	}
}

func (c ComponentType) Known() bool {
	for _, ct := range ComponentTypes() {
		if c == ct {
			return true
		}
	}
	return false
}

const (
	DefaultFootprintRef = "db_footprints:"
	DefaultSymbolRef    = "db_library:"
)

type Part struct {
	// Storage identifier (parts_uuid). Zero until the part is stored.
	ID uuid.UUID
	// Free-form description shown in the listing.
	Description string
	// Datasheet URL or reference text.
	Datasheet string
	// Footprint library reference, e.g. "db_footprints:0402".
	FootprintRef string
	// Schematic symbol library reference, e.g. "db_library:R".
	SymbolRef string
	// 3D model reference.
	ModelRef string
	// Business key used for display and lookup. Immutable once stored.
	KicadPartNumber string
	// Manufacturer's own part number.
	ManufacturerPartNumber string
	Manufacturer           string
	ManufacturerPartURL    string
	Note                   string
	Value                  string
	ComponentType          ComponentType
}

// PartRow is the listing projection of a part.
type PartRow struct {
	KicadPartNumber        string
	Description            string
	ComponentType          ComponentType
	Value                  string
	SymbolRef              string
	FootprintRef           string
	Manufacturer           string
	ManufacturerPartNumber string
}

// PartKey pairs a part's storage id with its business key.
type PartKey struct {
	ID              uuid.UUID
	KicadPartNumber string
}

type PartsFilter struct {
	ComponentType ComponentType
}

func (f PartsFilter) Empty() bool { return f.ComponentType == ComponentNone }

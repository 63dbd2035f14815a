// Package catalogv1 holds the JSON wire types of the catalogue HTTP API.
package catalogv1

type Part struct {
	ID                     string `json:"id,omitempty"`
	Description            string `json:"description"`
	Datasheet              string `json:"datasheet"`
	FootprintRef           string `json:"footprint_ref"`
	SymbolRef              string `json:"symbol_ref"`
	ModelRef               string `json:"model_ref"`
	KicadPartNumber        string `json:"kicad_part_number"`
	ManufacturerPartNumber string `json:"manufacturer_part_number"`
	Manufacturer           string `json:"manufacturer"`
	ManufacturerPartURL    string `json:"manufacturer_part_url"`
	Note                   string `json:"note"`
	Value                  string `json:"value"`
	ComponentType          string `json:"component_type"`
}

type PartRow struct {
	KicadPartNumber        string `json:"kicad_part_number"`
	Description            string `json:"description"`
	ComponentType          string `json:"component_type"`
	Value                  string `json:"value"`
	SymbolRef              string `json:"symbol_ref"`
	FootprintRef           string `json:"footprint_ref"`
	Manufacturer           string `json:"manufacturer"`
	ManufacturerPartNumber string `json:"manufacturer_part_number"`
}

type PartsResponse struct {
	ComponentType string    `json:"component_type"`
	Parts         []PartRow `json:"parts"`
}

type PartKey struct {
	ID              string `json:"id"`
	KicadPartNumber string `json:"kicad_part_number"`
}

type Module struct {
	Description            string   `json:"description"`
	Datasheet              string   `json:"datasheet"`
	FootprintRef           string   `json:"footprint_ref"`
	SymbolRef              string   `json:"symbol_ref"`
	ModelRef               string   `json:"model_ref"`
	KicadPartNumber        string   `json:"kicad_part_number"`
	ManufacturerPartNumber string   `json:"manufacturer_part_number"`
	Manufacturer           string   `json:"manufacturer"`
	ManufacturerPartURL    string   `json:"manufacturer_part_url"`
	Note                   string   `json:"note"`
	Value                  string   `json:"value"`
	Parts                  []string `json:"parts"`
}

type ModulePart struct {
	ModuleID string `json:"module_id"`
	PartID   string `json:"part_id"`
}

type AttachPartsRequest struct {
	Parts []string `json:"parts"`
}

type Supplier struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	WebURL  string `json:"web_url"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Form describes a dialog ready to be rendered. PartKeys is only set for
// module forms.
type Form struct {
	Kind     string   `json:"kind"`
	Fields   []Field  `json:"fields"`
	Defaults any      `json:"defaults"`
	PartKeys []string `json:"part_keys,omitempty"`
}

// SubmitResponse reports where the dialog ended. ID is the storage id of the
// persisted entity.
type SubmitResponse struct {
	Kind  string `json:"kind"`
	State string `json:"state"`
	ID    string `json:"id,omitempty"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Event is pushed to websocket clients.
type Event struct {
	Type          string    `json:"type"`
	ComponentType string    `json:"component_type"`
	Parts         []PartRow `json:"parts"`
}

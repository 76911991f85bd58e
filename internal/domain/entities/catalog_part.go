package entities

// CatalogPart is one row of the static part reference table consumed by the
// intake and customer-view screens. The catalog is read-only; selecting a
// catalog part copies its fields onto an estimate Part.
type CatalogPart struct {
	Name     string       `json:"name"`
	Category PartCategory `json:"category"`
	Price    float64      `json:"price"`
	Source   PartSource   `json:"source"`
	LeadTime string       `json:"leadTime,omitempty"`
}

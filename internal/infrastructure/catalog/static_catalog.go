package catalog

import (
	"strings"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"
)

// StaticCatalog serves the compiled-in part reference table. The catalog is
// read-only master data: intake copies the selected row onto the estimate,
// after which the job owns its own Part records.

type StaticCatalog struct {
	parts []entities.CatalogPart
}

var _ interfaces.IPartCatalog = (*StaticCatalog)(nil)

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{parts: referenceParts}
}

func (c *StaticCatalog) List() []entities.CatalogPart {
	out := make([]entities.CatalogPart, len(c.parts))
	copy(out, c.parts)
	return out
}

// FindByName matches case-insensitively on the exact part name.
func (c *StaticCatalog) FindByName(name string) (entities.CatalogPart, bool) {
	name = strings.TrimSpace(name)
	for _, p := range c.parts {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return entities.CatalogPart{}, false
}

// referenceParts is the workshop's standard stock list. "In Stock" parts are
// reserved straight from the shelf at approval time; "Order Needed" parts go
// through procurement.
var referenceParts = []entities.CatalogPart{
	{Name: "Brake Pads", Category: entities.PartCategoryOEM, Price: 3200, Source: entities.PartSourceInStock},
	{Name: "Brake Discs", Category: entities.PartCategoryOEM, Price: 5400, Source: entities.PartSourceOrderNeeded, LeadTime: "2 days"},
	{Name: "Engine Oil 5W-30", Category: entities.PartCategoryOEM, Price: 850, Source: entities.PartSourceInStock},
	{Name: "Oil Filter", Category: entities.PartCategoryAftermarket, Price: 450, Source: entities.PartSourceInStock},
	{Name: "Air Filter", Category: entities.PartCategoryAftermarket, Price: 600, Source: entities.PartSourceInStock},
	{Name: "Clutch Plate", Category: entities.PartCategoryOEM, Price: 8900, Source: entities.PartSourceOrderNeeded, LeadTime: "3 days"},
	{Name: "Timing Belt", Category: entities.PartCategoryOEM, Price: 4200, Source: entities.PartSourceOrderNeeded, LeadTime: "2 days"},
	{Name: "Battery 12V 45Ah", Category: entities.PartCategoryAftermarket, Price: 6500, Source: entities.PartSourceInStock},
	{Name: "Spark Plugs (set)", Category: entities.PartCategoryOEM, Price: 1800, Source: entities.PartSourceInStock},
	{Name: "Radiator Coolant", Category: entities.PartCategoryAftermarket, Price: 550, Source: entities.PartSourceInStock},
	{Name: "Wiper Blades (pair)", Category: entities.PartCategoryAftermarket, Price: 900, Source: entities.PartSourceInStock},
	{Name: "Suspension Strut", Category: entities.PartCategoryOEM, Price: 7200, Source: entities.PartSourceOrderNeeded, LeadTime: "4 days"},
	{Name: "Headlight Assembly", Category: entities.PartCategoryOEM, Price: 5100, Source: entities.PartSourceOrderNeeded, LeadTime: "5 days"},
}

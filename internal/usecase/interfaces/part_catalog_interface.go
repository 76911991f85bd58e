package interfaces

import "workshop_jobs/internal/domain/entities"

// IPartCatalog abstracts the static part reference table used by the intake
// and customer-view screens to populate selectable parts.

type IPartCatalog interface {
	List() []entities.CatalogPart
	FindByName(name string) (entities.CatalogPart, bool)
}

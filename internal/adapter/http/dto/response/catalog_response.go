package response

import "workshop_jobs/internal/domain/entities"

type CatalogPartResponse struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Source   string  `json:"source"`
	LeadTime string  `json:"leadTime,omitempty"`
}

func FromCatalogParts(parts []entities.CatalogPart) []CatalogPartResponse {
	out := make([]CatalogPartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, CatalogPartResponse{
			Name:     p.Name,
			Category: string(p.Category),
			Price:    p.Price,
			Source:   string(p.Source),
			LeadTime: p.LeadTime,
		})
	}
	return out
}

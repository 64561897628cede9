package models

import (
	"time"

	"bookly-be/internal/entities"
)

// ServiceResponse represents a catalog entry in API responses
type ServiceResponse struct {
	ID          string    `json:"id"` // UUID
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewServiceResponse converts a service entity to its API shape
func NewServiceResponse(s *entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// NewServiceListResponse converts a slice of service entities
func NewServiceListResponse(services []*entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, NewServiceResponse(s))
	}
	return out
}

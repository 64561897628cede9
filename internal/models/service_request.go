package models

// CreateServiceRequest represents the request body for creating a service
type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"` // Pointer so an explicit 0 passes "required"
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

// UpdateServiceRequest represents the request body for a partial service update.
// Only non-nil fields are applied.
type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

package service

import (
	"context"
	"fmt"
	"time"

	"bookly-be/internal/apperrors"
	"bookly-be/internal/authz"
	"bookly-be/internal/cache"
	"bookly-be/internal/entities"
	"bookly-be/internal/models"
	"bookly-be/internal/repository"
)

const (
	activeServicesCacheKey = "services:active"
	activeServicesCacheTTL = 5 * time.Minute
)

// CatalogService defines the interface for service catalog business logic
type CatalogService interface {
	ListActive() ([]models.ServiceResponse, error)
	ListAll(actor *authz.Actor) ([]models.ServiceResponse, error)
	Create(actor *authz.Actor, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
	Update(actor *authz.Actor, id string, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
	Delete(actor *authz.Actor, id string) error
}

type catalogService struct {
	repo  repository.ServiceRepository
	cache cache.Cache
	ctx   context.Context
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.ServiceRepository, cacheClient cache.Cache) CatalogService {
	svc := &catalogService{
		repo: repo,
		ctx:  context.Background(),
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// ListActive returns services currently open for booking
func (s *catalogService) ListActive() ([]models.ServiceResponse, error) {
	if s.cache != nil {
		var cached []models.ServiceResponse
		if err := s.cache.GetJSON(s.ctx, activeServicesCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	services, err := s.repo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list active services: %w", err)
	}

	resp := models.NewServiceListResponse(services)
	if s.cache != nil {
		s.cache.SetJSON(s.ctx, activeServicesCacheKey, resp, activeServicesCacheTTL)
	}
	return resp, nil
}

// ListAll returns every service including inactive ones (admin only)
func (s *catalogService) ListAll(actor *authz.Actor) ([]models.ServiceResponse, error) {
	if !authz.CanPerform(actor, authz.ActionListAllServices) {
		return nil, apperrors.ErrForbidden
	}

	services, err := s.repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return models.NewServiceListResponse(services), nil
}

// Create adds a new catalog entry (admin only)
func (s *catalogService) Create(actor *authz.Actor, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if !authz.CanPerform(actor, authz.ActionCreateService) {
		return nil, apperrors.ErrForbidden
	}

	status := entities.ServiceStatusActive
	if req.Status != nil {
		status = *req.Status
	}

	svc, err := s.repo.Create(req.Name, req.Description, *req.Price, status)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.invalidateActiveCache()
	resp := models.NewServiceResponse(svc)
	return &resp, nil
}

// Update applies a partial update to a catalog entry (admin only)
func (s *catalogService) Update(actor *authz.Actor, id string, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	if !authz.CanPerform(actor, authz.ActionUpdateService) {
		return nil, apperrors.ErrForbidden
	}

	svc, err := s.repo.Update(id, req.Name, req.Description, req.Price, req.Status)
	if err != nil {
		return nil, err
	}

	s.invalidateActiveCache()
	resp := models.NewServiceResponse(svc)
	return &resp, nil
}

// Delete removes a catalog entry (admin only)
func (s *catalogService) Delete(actor *authz.Actor, id string) error {
	if !authz.CanPerform(actor, authz.ActionDeleteService) {
		return apperrors.ErrForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidateActiveCache()
	return nil
}

func (s *catalogService) invalidateActiveCache() {
	if s.cache != nil {
		s.cache.Delete(s.ctx, activeServicesCacheKey)
	}
}

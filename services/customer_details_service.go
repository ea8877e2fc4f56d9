package services

import (
	"context"

	"bookstore/models"
	"bookstore/repositories"
)

// CustomerDetailsService manages a user's saved addresses. Every call is
// scoped to the given user id.
type CustomerDetailsService interface {
	AddCustomerDetails(ctx context.Context, userID int, req models.CustomerDetailsRequest) models.APIResponse[*models.CustomerDetails]
	GetCustomerDetails(ctx context.Context, userID int) models.APIResponse[[]models.CustomerDetails]
	DeleteCustomerDetails(ctx context.Context, addressID string, userID int) models.APIResponse[*models.CustomerDetails]
	UpdateCustomerDetails(ctx context.Context, addressID string, userID int, req models.CustomerDetailsRequest) models.APIResponse[*models.CustomerDetails]
	GetAddress(ctx context.Context, addressID string, userID int) models.APIResponse[*models.CustomerDetails]
}

type customerDetailsService struct {
	repo repositories.CustomerDetailsRepository
}

func NewCustomerDetailsService(repo repositories.CustomerDetailsRepository) CustomerDetailsService {
	return &customerDetailsService{repo: repo}
}

func (s *customerDetailsService) AddCustomerDetails(ctx context.Context, userID int, req models.CustomerDetailsRequest) models.APIResponse[*models.CustomerDetails] {
	return s.repo.Add(ctx, userID, req)
}

func (s *customerDetailsService) GetCustomerDetails(ctx context.Context, userID int) models.APIResponse[[]models.CustomerDetails] {
	return s.repo.ListByUser(ctx, userID)
}

func (s *customerDetailsService) DeleteCustomerDetails(ctx context.Context, addressID string, userID int) models.APIResponse[*models.CustomerDetails] {
	return s.repo.Delete(ctx, addressID, userID)
}

func (s *customerDetailsService) UpdateCustomerDetails(ctx context.Context, addressID string, userID int, req models.CustomerDetailsRequest) models.APIResponse[*models.CustomerDetails] {
	return s.repo.Update(ctx, addressID, userID, req)
}

func (s *customerDetailsService) GetAddress(ctx context.Context, addressID string, userID int) models.APIResponse[*models.CustomerDetails] {
	return s.repo.FindByID(ctx, addressID, userID)
}

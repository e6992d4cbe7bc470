package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"wheelmart/internal/models"
	"wheelmart/internal/repo"
	"wheelmart/internal/transport"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	if !models.ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: category must be car or bike", ErrValidation)
	}

	prod := models.Product{
		URL:         req.URL,
		Name:        req.Name,
		Category:    req.Category,
		Seller:      req.Seller,
		Description: req.Description,
		Price:       req.Price,
	}
	return s.Repo.CreateProduct(ctx, &prod)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req transport.ProductRequest) (*models.Product, error) {
	if !models.ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: category must be car or bike", ErrValidation)
	}

	fields := models.Product{
		URL:         req.URL,
		Name:        req.Name,
		Category:    req.Category,
		Seller:      req.Seller,
		Description: req.Description,
		Price:       req.Price,
	}
	return s.Repo.UpdateProduct(ctx, id, &fields)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.Repo.DeleteProduct(ctx, id)
}

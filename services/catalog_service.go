package services

import (
	"context"
	"fmt"

	"autoshop-backend/models"

	"gorm.io/gorm"
)

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// Available lists the services shown on the public services page, newest
// first. There is no write path; rows come from seeding.
func (s *CatalogService) Available(ctx context.Context) ([]models.ServiceItem, error) {
	var items []models.ServiceItem
	if err := s.DB.WithContext(ctx).
		Where("available = ?", true).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	return items, nil
}

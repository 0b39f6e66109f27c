package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"autoshop-backend/models"

	"gorm.io/gorm"
)

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// GetOrCreate loads the profile for an account id. A missing row is created
// on first access with defaults taken from the token identity claims.
func (s *ProfileService) GetOrCreate(ctx context.Context, accountID, name, email string) (*models.Profile, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, fmt.Errorf("validation: account id is required")
	}

	var profile models.Profile
	err := s.DB.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}

	profile = models.Profile{
		AccountID: accountID,
		FullName:  name,
		Email:     email,
	}
	if err := s.DB.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

// Update writes the display fields only; account binding never changes.
func (s *ProfileService) Update(ctx context.Context, accountID string, in models.Profile) (*models.Profile, error) {
	profile, err := s.GetOrCreate(ctx, accountID, in.FullName, in.Email)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"full_name":  strings.TrimSpace(in.FullName),
		"email":      strings.TrimSpace(in.Email),
		"phone":      strings.TrimSpace(in.Phone),
		"vehicle":    strings.TrimSpace(in.Vehicle),
		"avatar_url": strings.TrimSpace(in.AvatarURL),
	}
	if err := s.DB.WithContext(ctx).Model(profile).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	var out models.Profile
	if err := s.DB.WithContext(ctx).Where("account_id = ?", accountID).First(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return &out, nil
}

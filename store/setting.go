package store

import (
	"context"
	"errors"
	"fmt"

	"runji/models"
	"runji/validators"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSettingNotFound is returned by GetSetting for an unknown key.
var ErrSettingNotFound = errors.New("setting not found")

// GetSetting returns the setting stored under key.
func GetSetting(ctx context.Context, db *gorm.DB, key string) (*models.Setting, error) {
	var setting models.Setting
	err := db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get setting %s: %w", key, err)
	}
	return &setting, nil
}

// SetSetting stores value under key, replacing any previous value.
func SetSetting(ctx context.Context, db *gorm.DB, key, value string) (*models.Setting, error) {
	setting := models.Setting{Key: key, Value: value}
	if err := validators.Insert(&setting); err != nil {
		return nil, err
	}

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, fmt.Errorf("set setting %s: %w", key, err)
	}
	return GetSetting(ctx, db, key)
}

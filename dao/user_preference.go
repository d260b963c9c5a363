package dao

import (
	"Plume/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserPreferenceDAO struct {
	Repo[models.UserPreference]
}

func NewUserPreferenceDAO(db *gorm.DB) *UserPreferenceDAO {
	return &UserPreferenceDAO{
		Repo: NewRepo[models.UserPreference](db),
	}
}

// ListCategories 读者订阅的分类列表
func (d *UserPreferenceDAO) ListCategories(ctx context.Context, userID int64) ([]string, error) {
	var categories []string
	err := d.Db.WithContext(ctx).
		Model(&models.UserPreference{}).
		Where("user_id = ?", userID).
		Pluck("category", &categories).Error
	return categories, err
}

// Add 订阅分类，重复订阅忽略
func (d *UserPreferenceDAO) Add(ctx context.Context, userID int64, category string) error {
	item := models.UserPreference{UserID: userID, Category: category}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&item).Error
}

// Remove 取消订阅
func (d *UserPreferenceDAO) Remove(ctx context.Context, userID int64, category string) error {
	return d.Db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		Delete(&models.UserPreference{}).Error
}

package dao

import (
	"Plume/models"
	"context"

	"gorm.io/gorm"
)

type CategoryDAO struct {
	Repo[models.Category]
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{Repo: NewRepo[models.Category](db)}
}

// List 全部分类
func (d *CategoryDAO) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := d.Db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}

// IsValid 分类是否在封闭集合内
func (d *CategoryDAO) IsValid(ctx context.Context, name string) (bool, error) {
	return d.IsExist(ctx, "name = ?", name)
}

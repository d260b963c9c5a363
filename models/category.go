package models

import "time"

// Category 分类表，管理端维护的封闭集合
// 对应表 categories
type Category struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(64);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Category) TableName() string { return "categories" }

package models

import "time"

// UserPreference 读者订阅的分类
// 对应表 user_preferences
// 唯一键: user_id + category
type UserPreference struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_category,priority:1" json:"user_id"`
	Category  string    `gorm:"column:category;type:varchar(64);not null;uniqueIndex:uk_user_category,priority:2" json:"category"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserPreference) TableName() string { return "user_preferences" }

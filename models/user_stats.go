package models

import "time"

// UserStats 作者维度统计
// 对应表 user_stats
// article_count/view_count/like_count 是该用户名下所有文章的聚合缓存
type UserStats struct {
	UserID       int64     `gorm:"column:user_id;primaryKey" json:"user_id"`
	ArticleCount int64     `gorm:"column:article_count;not null;default:0" json:"article_count"`
	ViewCount    int64     `gorm:"column:view_count;not null;default:0" json:"view_count"`
	LikeCount    int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserStats) TableName() string { return "user_stats" }

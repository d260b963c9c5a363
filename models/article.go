package models

import (
	"time"

	"gorm.io/datatypes"
)

// Article 文章主表
// 对应表 articles
// views/likes/dislikes 为冗余计数，真实来源是 article_reactions 账本，
// 只允许反应引擎按状态机写入
type Article struct {
	ID          int64          `gorm:"column:id;primaryKey" json:"id"`
	Title       string         `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Body        string         `gorm:"column:body;type:text" json:"body"`
	Category    string         `gorm:"column:category;type:varchar(64);not null;index" json:"category"`
	AuthorID    int64          `gorm:"column:author_id;not null;index" json:"author_id"`
	Views       int64          `gorm:"column:views;not null;default:0" json:"views"`
	Likes       int64          `gorm:"column:likes;not null;default:0" json:"likes"`
	Dislikes    int64          `gorm:"column:dislikes;not null;default:0" json:"dislikes"`
	IsBlocked   bool           `gorm:"column:is_blocked;not null;default:false;index" json:"is_blocked"`
	PublishedAt time.Time      `gorm:"column:published_at;not null;index" json:"published_at"`
	ReadTime    int            `gorm:"column:read_time;not null;default:1" json:"read_time"` // 预计阅读分钟数
	Tags        datatypes.JSON `gorm:"column:tags" json:"tags"`
	Image       string         `gorm:"column:image;type:varchar(512)" json:"image"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Article) TableName() string { return "articles" }

package models

import "time"

// UserArticleBlock 个人屏蔽记录
// 对应表 user_article_blocks
// 唯一键: user_id + article_id
// 只影响该读者自己的信息流，与管理端封禁(articles.is_blocked)互相独立
type UserArticleBlock struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_article,priority:1" json:"user_id"`
	ArticleID int64     `gorm:"column:article_id;not null;uniqueIndex:uk_user_article,priority:2" json:"article_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserArticleBlock) TableName() string { return "user_article_blocks" }

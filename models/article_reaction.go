package models

import "time"

// 反应状态
const (
	ReactionLike    uint8 = 1 // 点赞
	ReactionDislike uint8 = 2 // 点踩
)

// ArticleReaction 反应账本
// 对应表 article_reactions
// 唯一键: article_id + user_id，一个读者对一篇文章最多一条记录
type ArticleReaction struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	ArticleID int64     `gorm:"column:article_id;not null;uniqueIndex:uk_article_user,priority:1" json:"article_id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_article_user,priority:2" json:"user_id"`
	Status    uint8     `gorm:"column:status;not null" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ArticleReaction) TableName() string { return "article_reactions" }

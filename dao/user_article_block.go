package dao

import (
	"Plume/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserArticleBlockDAO struct {
	Repo[models.UserArticleBlock]
}

func NewUserArticleBlockDAO(db *gorm.DB) *UserArticleBlockDAO {
	return &UserArticleBlockDAO{
		Repo: NewRepo[models.UserArticleBlock](db),
	}
}

// Add 加入个人屏蔽列表
// 唯一键冲突直接忽略，重复屏蔽等价于一次
func (d *UserArticleBlockDAO) Add(ctx context.Context, userID, articleID int64) error {
	item := models.UserArticleBlock{UserID: userID, ArticleID: articleID}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&item).Error
}

// ListArticleIDs 读者屏蔽的文章 id 列表，信息流过滤用
func (d *UserArticleBlockDAO) ListArticleIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserArticleBlock{}).
		Where("user_id = ?", userID).
		Pluck("article_id", &ids).Error
	return ids, err
}

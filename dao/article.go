package dao

import (
	"Plume/models"
	"context"

	"gorm.io/gorm"
)

// ArticleFilter 信息流查询条件
// OnlyVisible 对应管理端封禁位，Categories/ExcludeIDs 对应读者的订阅与个人屏蔽
type ArticleFilter struct {
	OnlyVisible bool
	Categories  []string
	ExcludeIDs  []int64
	AuthorID    int64
}

func (f ArticleFilter) apply(q *gorm.DB) *gorm.DB {
	if f.OnlyVisible {
		q = q.Where("is_blocked = ?", false)
	}
	if len(f.Categories) > 0 {
		q = q.Where("category IN ?", f.Categories)
	}
	if len(f.ExcludeIDs) > 0 {
		q = q.Where("id NOT IN ?", f.ExcludeIDs)
	}
	if f.AuthorID != 0 {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	return q
}

type ArticleDAO struct {
	Repo[models.Article]
}

func NewArticleDAO(db *gorm.DB) *ArticleDAO {
	return &ArticleDAO{Repo: NewRepo[models.Article](db)}
}

// FindByFilter 按条件分页查询，最新发布在前
// id 作为第二排序键，保证翻页时顺序稳定
func (d *ArticleDAO) FindByFilter(ctx context.Context, f ArticleFilter, limit, offset int) ([]*models.Article, error) {
	var articles []*models.Article
	err := f.apply(d.Db.WithContext(ctx)).
		Order("published_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&articles).Error
	return articles, err
}

// CountByFilter 按同样的条件统计总数，供分页计算
func (d *ArticleDAO) CountByFilter(ctx context.Context, f ArticleFilter) (int64, error) {
	var count int64
	err := f.apply(d.Db.WithContext(ctx).Model(&models.Article{})).Count(&count).Error
	return count, err
}

// IncrCountersTx 在事务内一次性调整三个冗余计数，避免负数
func (d *ArticleDAO) IncrCountersTx(tx *gorm.DB, articleID int64, likes, dislikes, views int64) error {
	return tx.Exec(
		"UPDATE articles SET "+
			"likes = GREATEST(likes + ?, 0), "+
			"dislikes = GREATEST(dislikes + ?, 0), "+
			"views = GREATEST(views + ?, 0), "+
			"updated_at = NOW() "+
			"WHERE id = ?",
		likes, dislikes, views, articleID,
	).Error
}

// UpdateFields 更新指定字段
func (d *ArticleDAO) UpdateFields(ctx context.Context, articleID int64, fields map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", articleID).
		Updates(fields).Error
}

// SetBlocked 设置封禁位
func (d *ArticleDAO) SetBlocked(ctx context.Context, articleID int64, blocked bool) error {
	return d.Db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", articleID).
		Update("is_blocked", blocked).Error
}

// DeleteTx 事务内删除文章
func (d *ArticleDAO) DeleteTx(tx *gorm.DB, articleID int64) error {
	return tx.Where("id = ?", articleID).Delete(&models.Article{}).Error
}

// SumViews 未封禁文章的总浏览量，统计面板用
func (d *ArticleDAO) SumViews(ctx context.Context) (int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).
		Model(&models.Article{}).
		Where("is_blocked = ?", false).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

package dao

import (
	"Plume/models"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleReactionDAO struct {
	Repo[models.ArticleReaction]
}

func NewArticleReactionDAO(db *gorm.DB) *ArticleReactionDAO {
	return &ArticleReactionDAO{Repo: NewRepo[models.ArticleReaction](db)}
}

// GetByArticleUser 查询指定读者对指定文章的反应记录
func (d *ArticleReactionDAO) GetByArticleUser(ctx context.Context, articleID, userID int64) (*models.ArticleReaction, error) {
	var item models.ArticleReaction
	err := d.Db.WithContext(ctx).Where("article_id = ? AND user_id = ?", articleID, userID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// GetForUpdateTx 事务内加行锁读取，串行化同一读者对同一文章的并发反应
func (d *ArticleReactionDAO) GetForUpdateTx(tx *gorm.DB, articleID, userID int64) (*models.ArticleReaction, error) {
	var item models.ArticleReaction
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Limit(1).
		Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// CreateTx 事务内写入账本记录
// 唯一键 uk_article_user 冲突会返回 gorm.ErrDuplicatedKey，由上层做幂等处理
func (d *ArticleReactionDAO) CreateTx(tx *gorm.DB, item *models.ArticleReaction) error {
	return tx.Create(item).Error
}

// UpdateStatusTx 事务内翻转反应方向
func (d *ArticleReactionDAO) UpdateStatusTx(tx *gorm.DB, id int64, status uint8) error {
	return tx.Model(&models.ArticleReaction{}).Where("id = ?", id).Update("status", status).Error
}

// DeleteTx 事务内删除账本记录（读者撤销反应）
func (d *ArticleReactionDAO) DeleteTx(tx *gorm.DB, id int64) error {
	return tx.Where("id = ?", id).Delete(&models.ArticleReaction{}).Error
}

// DeleteByArticleTx 文章删除时清空其全部账本记录
func (d *ArticleReactionDAO) DeleteByArticleTx(tx *gorm.DB, articleID int64) error {
	return tx.Where("article_id = ?", articleID).Delete(&models.ArticleReaction{}).Error
}

// CountByStatus 按反应方向统计总量
func (d *ArticleReactionDAO) CountByStatus(ctx context.Context, status uint8) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.ArticleReaction{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// CountByArticle 单篇文章的某方向反应数，对账用
func (d *ArticleReactionDAO) CountByArticle(ctx context.Context, articleID int64, status uint8) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.ArticleReaction{}).
		Where("article_id = ? AND status = ?", articleID, status).
		Count(&count).Error
	return count, err
}

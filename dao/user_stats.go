package dao

import (
	"Plume/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type UserStatsDAO struct {
	Repo[models.UserStats]
}

func NewUserStatsDAO(db *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{
		Repo: NewRepo[models.UserStats](db),
	}
}

// IncrEngagementTx 事务内调整作者的获赞/浏览聚合
func (d *UserStatsDAO) IncrEngagementTx(tx *gorm.DB, userID int64, likes, views int64) error {
	now := time.Now()
	return tx.Exec(`
		INSERT INTO user_stats (user_id, like_count, view_count, created_at, updated_at)
		VALUES (?, GREATEST(?, 0), GREATEST(?, 0), ?, ?)
		ON DUPLICATE KEY UPDATE
			like_count = GREATEST(like_count + ?, 0),
			view_count = GREATEST(view_count + ?, 0),
			updated_at = VALUES(updated_at)
	`, userID, likes, views, now, now, likes, views).Error
}

// IncrArticleCountTx 事务内调整作者的文章数（发布 +1，删除 -1）
func (d *UserStatsDAO) IncrArticleCountTx(tx *gorm.DB, userID int64, delta int64) error {
	now := time.Now()
	return tx.Exec(`
		INSERT INTO user_stats (user_id, article_count, created_at, updated_at)
		VALUES (?, GREATEST(?, 0), ?, ?)
		ON DUPLICATE KEY UPDATE
			article_count = GREATEST(article_count + ?, 0),
			updated_at = VALUES(updated_at)
	`, userID, delta, now, now, delta).Error
}

// GetByUserID 根据用户ID获取统计
func (d *UserStatsDAO) GetByUserID(ctx context.Context, userID int64) (*models.UserStats, error) {
	var stats models.UserStats
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(1).
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	if stats.UserID == 0 {
		return &models.UserStats{UserID: userID}, nil
	}
	return &stats, nil
}

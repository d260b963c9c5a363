package dao

import (
	"Plume/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByIDs 批量查询用户，信息流拼作者名用
func (u *Users) FindByIDs(ctx context.Context, ids []int64) (map[int64]*models.Users, error) {
	result := make(map[int64]*models.Users, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var users []*models.Users
	err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		result[user.ID] = user
	}
	return result, nil
}

// FindPage 管理端用户列表，新注册在前
// id 作为第二排序键，保证翻页时顺序稳定
func (u *Users) FindPage(ctx context.Context, limit, offset int) ([]*models.Users, error) {
	var users []*models.Users
	err := u.Db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}

// SetBlocked 设置账号封禁位
func (u *Users) SetBlocked(ctx context.Context, userID int64, blocked bool) error {
	return u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", userID).
		Update("is_blocked", blocked).Error
}

// Count 用户总数，统计面板用
func (u *Users) Count(ctx context.Context) (int64, error) {
	var count int64
	err := u.Db.WithContext(ctx).Model(&models.Users{}).Count(&count).Error
	return count, err
}

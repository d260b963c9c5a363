package types

import (
	"Plume/models"
	"time"
)

// PreferenceRequest 订阅/退订分类请求
type PreferenceRequest struct {
	Category string `json:"category" binding:"required,max=64"`
}

// PreferenceResponse 读者当前订阅
type PreferenceResponse struct {
	Categories []string `json:"categories"`
}

// UserItem 管理端用户列表条目
type UserItem struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsBlocked bool      `json:"is_blocked"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserItem(u *models.Users) *UserItem {
	return &UserItem{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsBlocked: u.IsBlocked,
		CreatedAt: u.CreatedAt,
	}
}

// UserListResponse 管理端用户列表
type UserListResponse struct {
	Items      []*UserItem `json:"items"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
	Total      int64       `json:"total"`
}

// UserModerationResult 账号封禁操作结果
type UserModerationResult struct {
	ID        int64 `json:"id"`
	IsBlocked bool  `json:"is_blocked"`
}

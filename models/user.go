package models

import "time"

// 用户角色
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Users 用户表
// 对应表 users
// 注册/登录由外围系统负责，这里只读取身份、角色与封禁状态
type Users struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(128);uniqueIndex" json:"email"`
	Phone     string    `gorm:"column:phone;type:varchar(32)" json:"phone"`
	FirstName string    `gorm:"column:first_name;type:varchar(64)" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(64)" json:"last_name"`
	IsBlocked bool      `gorm:"column:is_blocked;not null;default:false" json:"is_blocked"`
	Role      string    `gorm:"column:role;type:varchar(16);not null;default:user" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string { return "users" }

// DisplayName 信息流里展示的作者名，读取时拼接
func (u *Users) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

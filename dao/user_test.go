package dao

import (
	"context"
	"strings"
	"testing"

	"gorm.io/gorm"
)

// 账号封禁只动 users.is_blocked 一个布尔位
func TestUsersSetBlocked(t *testing.T) {
	db := newDryRunDB(t)

	var captured string
	err := db.Callback().Update().After("gorm:update").Register("capture_sql", func(tx *gorm.DB) {
		captured = tx.Statement.SQL.String()
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	d := NewUsers(db)
	if err := d.SetBlocked(context.Background(), 7, true); err != nil {
		t.Fatalf("set blocked: %v", err)
	}

	if !strings.Contains(captured, "UPDATE") || !strings.Contains(captured, "is_blocked") {
		t.Fatalf("封禁应更新 is_blocked: %s", captured)
	}
	for _, forbidden := range []string{"role", "email"} {
		if strings.Contains(captured, forbidden) {
			t.Fatalf("封禁不应触碰字段 %q: %s", forbidden, captured)
		}
	}
}

// 用户列表按注册时间倒序，id 作为第二排序键
func TestUsersFindPage(t *testing.T) {
	db := newDryRunDB(t)

	var captured string
	err := db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		captured = tx.Statement.SQL.String()
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	d := NewUsers(db)
	if _, err := d.FindPage(context.Background(), 20, 0); err != nil {
		t.Fatalf("find page: %v", err)
	}

	for _, want := range []string{"ORDER BY", "created_at DESC", "id DESC"} {
		if !strings.Contains(captured, want) {
			t.Fatalf("用户列表缺少排序 %q: %s", want, captured)
		}
	}
}

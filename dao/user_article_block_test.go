package dao

import (
	"context"
	"strings"
	"testing"

	"gorm.io/gorm"
)

// 重复屏蔽同一篇文章：INSERT 必须带冲突忽略，撞唯一键等价于一次
func TestUserArticleBlockAdd_Idempotent(t *testing.T) {
	db := newDryRunDB(t)

	var captured string
	err := db.Callback().Create().After("gorm:create").Register("capture_sql", func(tx *gorm.DB) {
		captured = tx.Statement.SQL.String()
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	d := NewUserArticleBlockDAO(db)
	if err := d.Add(context.Background(), 1, 42); err != nil {
		t.Fatalf("add: %v", err)
	}

	if !strings.Contains(captured, "INSERT") {
		t.Fatalf("屏蔽应落为插入: %s", captured)
	}
	if !strings.Contains(captured, "ON CONFLICT DO NOTHING") {
		t.Fatalf("重复屏蔽必须靠冲突忽略吸收: %s", captured)
	}
}

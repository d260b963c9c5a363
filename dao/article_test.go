package dao

import (
	"Plume/models"
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

// 关注流条件：封禁位 + 分类 + 个人屏蔽全都要进 WHERE
func TestArticleFilter_Following(t *testing.T) {
	db := newDryRunDB(t)

	f := ArticleFilter{
		OnlyVisible: true,
		Categories:  []string{"Space", "Tech"},
		ExcludeIDs:  []int64{42},
	}
	var out []models.Article
	stmt := f.apply(db.Model(&models.Article{})).Find(&out).Statement
	sql := stmt.SQL.String()

	for _, want := range []string{"is_blocked", "category IN", "id NOT IN"} {
		if !strings.Contains(sql, want) {
			t.Fatalf("sql 缺少条件 %q: %s", want, sql)
		}
	}
	if strings.Contains(sql, "author_id") {
		t.Fatalf("关注流不应有作者条件: %s", sql)
	}
}

// 发现流条件：只有封禁位
func TestArticleFilter_Explore(t *testing.T) {
	db := newDryRunDB(t)

	f := ArticleFilter{OnlyVisible: true}
	var out []models.Article
	stmt := f.apply(db.Model(&models.Article{})).Find(&out).Statement
	sql := stmt.SQL.String()

	if !strings.Contains(sql, "is_blocked") {
		t.Fatalf("发现流必须过滤封禁文章: %s", sql)
	}
	for _, forbidden := range []string{"category", "NOT IN", "author_id"} {
		if strings.Contains(sql, forbidden) {
			t.Fatalf("发现流不应有条件 %q: %s", forbidden, sql)
		}
	}
}

// 作者主页：只按作者过滤，封禁的也要出现
func TestArticleFilter_Author(t *testing.T) {
	db := newDryRunDB(t)

	f := ArticleFilter{AuthorID: 7}
	var out []models.Article
	stmt := f.apply(db.Model(&models.Article{})).Find(&out).Statement
	sql := stmt.SQL.String()

	if !strings.Contains(sql, "author_id") {
		t.Fatalf("作者主页必须按作者过滤: %s", sql)
	}
	if strings.Contains(sql, "is_blocked") {
		t.Fatalf("作者主页不应过滤封禁文章: %s", sql)
	}
}

// 管理端全量流：没有任何 WHERE
func TestArticleFilter_Moderation(t *testing.T) {
	db := newDryRunDB(t)

	var out []models.Article
	stmt := ArticleFilter{}.apply(db.Model(&models.Article{})).Find(&out).Statement
	sql := stmt.SQL.String()

	if strings.Contains(sql, "WHERE") {
		t.Fatalf("管理端流不应有过滤条件: %s", sql)
	}
}

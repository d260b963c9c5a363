package types

import (
	"Plume/models"
	"Plume/pkg/log"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// 分页默认值
const (
	DefaultPage  int = 1
	DefaultLimit int = 20
	MaxLimit     int = 100
)

// ArticleSnapshot 反应操作返回的计数快照
type ArticleSnapshot struct {
	ID       int64 `json:"id"`
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	Views    int64 `json:"views"`
}

// ArticleItem 信息流条目，作者名在读取时拼入
type ArticleItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Category    string    `json:"category"`
	AuthorID    int64     `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	Dislikes    int64     `json:"dislikes"`
	IsBlocked   bool      `json:"is_blocked"`
	PublishedAt time.Time `json:"published_at"`
	ReadTime    int       `json:"read_time"`
	Tags        []string  `json:"tags"`
	Image       string    `json:"image,omitempty"`
}

func NewArticleItem(article *models.Article, authorName string) *ArticleItem {
	tags := make([]string, 0)
	if len(article.Tags) > 0 {
		if err := json.Unmarshal([]byte(article.Tags), &tags); err != nil {
			log.L.Warn("decode article tags failed",
				zap.Int64("article_id", article.ID), zap.Error(err))
		}
	}
	return &ArticleItem{
		ID:          article.ID,
		Title:       article.Title,
		Body:        article.Body,
		Category:    article.Category,
		AuthorID:    article.AuthorID,
		AuthorName:  authorName,
		Views:       article.Views,
		Likes:       article.Likes,
		Dislikes:    article.Dislikes,
		IsBlocked:   article.IsBlocked,
		PublishedAt: article.PublishedAt,
		ReadTime:    article.ReadTime,
		Tags:        tags,
		Image:       article.Image,
	}
}

// CreateArticleRequest 发布文章请求
type CreateArticleRequest struct {
	Title    string   `json:"title" binding:"required,max=200"`
	Body     string   `json:"body" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image"`
}

// UpdateArticleRequest 编辑文章请求，空字段保持原值
type UpdateArticleRequest struct {
	Title    string   `json:"title" binding:"max=200"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image"`
}

// SetBlockedRequest 管理端封禁请求
type SetBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// RankItem 点赞榜条目
type RankItem struct {
	Rank      int    `json:"rank"`
	ArticleID int64  `json:"article_id"`
	Title     string `json:"title,omitempty"`
	Likes     int64  `json:"likes"`
}

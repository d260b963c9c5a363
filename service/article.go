package service

import (
	"Plume/dao"
	"Plume/dao/cache"
	"Plume/models"
	"Plume/pkg/log"
	"Plume/pkg/response"
	"Plume/pkg/snowflake"
	"Plume/types"
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IArticleService = (*ArticleService)(nil)

type IArticleService interface {
	Publish(ctx context.Context, authorID int64, req *types.CreateArticleRequest) (int64, error)
	Update(ctx context.Context, userID, articleID int64, req *types.UpdateArticleRequest) error
	Delete(ctx context.Context, userID int64, role string, articleID int64) error
}

type ArticleService struct {
	Db           *gorm.DB
	ArticleDAO   *dao.ArticleDAO
	ReactionDAO  *dao.ArticleReactionDAO
	UserStatsDAO *dao.UserStatsDAO
	CategoryDAO  *dao.CategoryDAO
	Rank         *cache.RankCache
}

// readTime 预计阅读分钟数，按 200 词/分钟估算，至少 1 分钟
func readTime(body string) int {
	words := len(strings.Fields(body))
	minutes := words / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Publish 发布文章，作者文章数 +1 与写入同一事务
func (s *ArticleService) Publish(ctx context.Context, authorID int64, req *types.CreateArticleRequest) (int64, error) {
	valid, err := s.CategoryDAO.IsValid(ctx, req.Category)
	if err != nil {
		return 0, err
	}
	if !valid {
		return 0, response.NewError(400, "分类不存在")
	}

	if req.Tags == nil {
		req.Tags = make([]string, 0)
	}
	tagsJSON, err := json.Marshal(req.Tags)
	if err != nil {
		return 0, err
	}

	articleID := snowflake.GenArticleID()
	now := time.Now()
	article := &models.Article{
		ID:          articleID,
		Title:       req.Title,
		Body:        req.Body,
		Category:    req.Category,
		AuthorID:    authorID,
		PublishedAt: now,
		ReadTime:    readTime(req.Body),
		Tags:        datatypes.JSON(tagsJSON),
		Image:       req.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(article).Error; err != nil {
			return err
		}
		return s.UserStatsDAO.IncrArticleCountTx(tx, authorID, 1)
	})
	if err != nil {
		return 0, err
	}

	log.L.Info("article published",
		zap.Int64("article_id", articleID), zap.Int64("author_id", authorID))
	return articleID, nil
}

// Update 编辑文章，仅作者本人，空字段保持原值
func (s *ArticleService) Update(ctx context.Context, userID, articleID int64, req *types.UpdateArticleRequest) error {
	article, err := s.ArticleDAO.FindById(ctx, articleID)
	if err != nil {
		return err
	}
	if article == nil {
		return response.NotFound("文章不存在")
	}
	if article.AuthorID != userID {
		return response.Forbidden("没有权限编辑该文章")
	}

	fields := map[string]any{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Body != "" {
		fields["body"] = req.Body
		fields["read_time"] = readTime(req.Body)
	}
	if req.Category != "" {
		valid, err := s.CategoryDAO.IsValid(ctx, req.Category)
		if err != nil {
			return err
		}
		if !valid {
			return response.NewError(400, "分类不存在")
		}
		fields["category"] = req.Category
	}
	if req.Tags != nil {
		tagsJSON, err := json.Marshal(req.Tags)
		if err != nil {
			return err
		}
		fields["tags"] = tagsJSON
	}
	if req.Image != "" {
		fields["image"] = req.Image
	}
	if len(fields) == 0 {
		return nil
	}

	return s.ArticleDAO.UpdateFields(ctx, articleID, fields)
}

// Delete 删除文章，作者本人或管理员
// 同一事务内清掉账本记录并回减作者文章数
func (s *ArticleService) Delete(ctx context.Context, userID int64, role string, articleID int64) error {
	article, err := s.ArticleDAO.FindById(ctx, articleID)
	if err != nil {
		return err
	}
	if article == nil {
		return response.NotFound("文章不存在")
	}
	if article.AuthorID != userID && role != models.RoleAdmin {
		return response.Forbidden("没有权限删除该文章")
	}

	err = s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ArticleDAO.DeleteTx(tx, articleID); err != nil {
			return err
		}
		if err := s.ReactionDAO.DeleteByArticleTx(tx, articleID); err != nil {
			return err
		}
		return s.UserStatsDAO.IncrArticleCountTx(tx, article.AuthorID, -1)
	})
	if err != nil {
		return err
	}

	if rerr := s.Rank.Remove(ctx, articleID); rerr != nil {
		log.L.Warn("remove from rank failed", zap.Int64("article_id", articleID), zap.Error(rerr))
	}

	log.L.Info("article deleted",
		zap.Int64("article_id", articleID), zap.Int64("operator", userID))
	return nil
}

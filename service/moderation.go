package service

import (
	"Plume/dao"
	"Plume/dao/cache"
	"Plume/pkg/log"
	"Plume/pkg/response"
	"Plume/types"
	"context"

	"go.uber.org/zap"
)

var _ IModerationService = (*ModerationService)(nil)

type IModerationService interface {
	SetBlocked(ctx context.Context, articleID int64, blocked bool) (*types.ArticleSnapshot, error)
	ToggleBlocked(ctx context.Context, articleID int64) (*types.ArticleSnapshot, error)
	Users(ctx context.Context, page, limit int) (*types.UserListResponse, error)
	SetUserBlocked(ctx context.Context, userID int64, blocked bool) (*types.UserModerationResult, error)
	ToggleUserBlocked(ctx context.Context, userID int64) (*types.UserModerationResult, error)
}

// ModerationService 管理端封禁开关
// 文章侧只翻转 articles.is_blocked 一个布尔位，与读者的个人屏蔽互不相干
// 账号侧同理，只动 users.is_blocked
type ModerationService struct {
	ArticleDAO *dao.ArticleDAO
	UserDAO    *dao.Users
	Rank       *cache.RankCache
}

func (s *ModerationService) SetBlocked(ctx context.Context, articleID int64, blocked bool) (*types.ArticleSnapshot, error) {
	article, err := s.ArticleDAO.FindById(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, response.NotFound("文章不存在")
	}

	// 已处于目标状态，按无操作处理
	if article.IsBlocked == blocked {
		return snapshot(article.ID, article.Likes, article.Dislikes, article.Views), nil
	}

	if err := s.ArticleDAO.SetBlocked(ctx, articleID, blocked); err != nil {
		return nil, err
	}

	// 封禁的文章不留在点赞榜上，解封按当前点赞数回填
	if blocked {
		if rerr := s.Rank.Remove(ctx, articleID); rerr != nil {
			log.L.Warn("remove from rank failed", zap.Int64("article_id", articleID), zap.Error(rerr))
		}
	} else {
		if rerr := s.Rank.Set(ctx, articleID, article.Likes); rerr != nil {
			log.L.Warn("restore rank failed", zap.Int64("article_id", articleID), zap.Error(rerr))
		}
	}

	log.L.Info("article moderation changed",
		zap.Int64("article_id", articleID), zap.Bool("blocked", blocked))

	return snapshot(article.ID, article.Likes, article.Dislikes, article.Views), nil
}

func (s *ModerationService) ToggleBlocked(ctx context.Context, articleID int64) (*types.ArticleSnapshot, error) {
	article, err := s.ArticleDAO.FindById(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, response.NotFound("文章不存在")
	}
	return s.SetBlocked(ctx, articleID, !article.IsBlocked)
}

func snapshot(id, likes, dislikes, views int64) *types.ArticleSnapshot {
	return &types.ArticleSnapshot{ID: id, Likes: likes, Dislikes: dislikes, Views: views}
}

// Users 管理端用户列表，含封禁账号
func (s *ModerationService) Users(ctx context.Context, page, limit int) (*types.UserListResponse, error) {
	page, limit = normalizePage(page, limit)

	users, err := s.UserDAO.FindPage(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := s.UserDAO.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*types.UserItem, 0, len(users))
	for _, u := range users {
		items = append(items, types.NewUserItem(u))
	}
	return &types.UserListResponse{
		Items:      items,
		Page:       page,
		TotalPages: totalPages(total, limit),
		Total:      total,
	}, nil
}

// SetUserBlocked 封禁/解封账号，重复设置同一状态是无操作
func (s *ModerationService) SetUserBlocked(ctx context.Context, userID int64, blocked bool) (*types.UserModerationResult, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NotFound("用户不存在")
	}

	if user.IsBlocked == blocked {
		return &types.UserModerationResult{ID: user.ID, IsBlocked: blocked}, nil
	}

	if err := s.UserDAO.SetBlocked(ctx, userID, blocked); err != nil {
		return nil, err
	}

	log.L.Info("user moderation changed",
		zap.Int64("user_id", userID), zap.Bool("blocked", blocked))

	return &types.UserModerationResult{ID: user.ID, IsBlocked: blocked}, nil
}

// ToggleUserBlocked 翻转账号封禁位
func (s *ModerationService) ToggleUserBlocked(ctx context.Context, userID int64) (*types.UserModerationResult, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NotFound("用户不存在")
	}
	return s.SetUserBlocked(ctx, userID, !user.IsBlocked)
}

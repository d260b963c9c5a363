package service

import (
	"Plume/dao"
	"Plume/pkg/log"
	"Plume/pkg/response"
	"context"

	"go.uber.org/zap"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	HideArticle(ctx context.Context, userID, articleID int64) error
	AddPreference(ctx context.Context, userID int64, category string) error
	RemovePreference(ctx context.Context, userID int64, category string) error
	ListPreferences(ctx context.Context, userID int64) ([]string, error)
}

type UserService struct {
	UserDAO     *dao.Users
	ArticleDAO  *dao.ArticleDAO
	BlockDAO    *dao.UserArticleBlockDAO
	PrefDAO     *dao.UserPreferenceDAO
	CategoryDAO *dao.CategoryDAO
}

// HideArticle 个人屏蔽，只影响该读者自己的信息流
// 不动文章本体，重复屏蔽等价于一次
func (s *UserService) HideArticle(ctx context.Context, userID, articleID int64) error {
	exist, err := s.ArticleDAO.IsExist(ctx, "id = ?", articleID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("文章不存在")
	}

	if err := s.BlockDAO.Add(ctx, userID, articleID); err != nil {
		return err
	}

	log.L.Info("article hidden",
		zap.Int64("user_id", userID), zap.Int64("article_id", articleID))
	return nil
}

// AddPreference 订阅分类，分类必须在管理端维护的集合内
func (s *UserService) AddPreference(ctx context.Context, userID int64, category string) error {
	valid, err := s.CategoryDAO.IsValid(ctx, category)
	if err != nil {
		return err
	}
	if !valid {
		return response.NewError(400, "分类不存在")
	}
	return s.PrefDAO.Add(ctx, userID, category)
}

func (s *UserService) RemovePreference(ctx context.Context, userID int64, category string) error {
	return s.PrefDAO.Remove(ctx, userID, category)
}

func (s *UserService) ListPreferences(ctx context.Context, userID int64) ([]string, error) {
	return s.PrefDAO.ListCategories(ctx, userID)
}

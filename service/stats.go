package service

import (
	"Plume/dao"
	"Plume/models"
	"Plume/types"
	"context"
)

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	Overview(ctx context.Context) (*types.StatsResponse, error)
}

// StatsService 管理端统计面板
// 点赞总数直接数账本，不走冗余计数
type StatsService struct {
	UserDAO     *dao.Users
	ArticleDAO  *dao.ArticleDAO
	ReactionDAO *dao.ArticleReactionDAO
}

func (s *StatsService) Overview(ctx context.Context) (*types.StatsResponse, error) {
	users, err := s.UserDAO.Count(ctx)
	if err != nil {
		return nil, err
	}
	articles, err := s.ArticleDAO.CountByFilter(ctx, dao.ArticleFilter{})
	if err != nil {
		return nil, err
	}
	views, err := s.ArticleDAO.SumViews(ctx)
	if err != nil {
		return nil, err
	}
	likes, err := s.ReactionDAO.CountByStatus(ctx, models.ReactionLike)
	if err != nil {
		return nil, err
	}

	return &types.StatsResponse{
		TotalUsers:    users,
		TotalArticles: articles,
		TotalViews:    views,
		TotalLikes:    likes,
	}, nil
}

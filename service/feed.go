package service

import (
	"Plume/dao"
	"Plume/dao/cache"
	"Plume/models"
	"Plume/pkg/response"
	"Plume/types"
	"context"
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	FollowingFeed(ctx context.Context, userID int64, page, limit int) (*types.FeedResponse, error)
	ExploreFeed(ctx context.Context, page, limit int) (*types.FeedResponse, error)
	AuthorFeed(ctx context.Context, authorID int64, page, limit int) (*types.FeedResponse, error)
	ModerationFeed(ctx context.Context, page, limit int) (*types.FeedResponse, error)
	TopLiked(ctx context.Context, n int) ([]*types.RankItem, error)
	GetArticle(ctx context.Context, articleID int64) (*types.ArticleItem, error)
}

type FeedService struct {
	ArticleDAO *dao.ArticleDAO
	UserDAO    *dao.Users
	BlockDAO   *dao.UserArticleBlockDAO
	PrefDAO    *dao.UserPreferenceDAO
	Rank       *cache.RankCache
}

// normalizePage 分页参数兜底
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = types.DefaultPage
	}
	if limit <= 0 {
		limit = types.DefaultLimit
	}
	if limit > types.MaxLimit {
		limit = types.MaxLimit
	}
	return page, limit
}

// totalPages 向上取整
func totalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// FollowingFeed 关注流：未封禁 + 订阅分类内 + 未被读者个人屏蔽
func (s *FeedService) FollowingFeed(ctx context.Context, userID int64, page, limit int) (*types.FeedResponse, error) {
	page, limit = normalizePage(page, limit)

	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NotFound("用户不存在")
	}

	prefs, err := s.PrefDAO.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	// 没有订阅任何分类，关注流为空
	if len(prefs) == 0 {
		return &types.FeedResponse{Items: make([]*types.ArticleItem, 0), Page: page}, nil
	}

	hidden, err := s.BlockDAO.ListArticleIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	filter := dao.ArticleFilter{
		OnlyVisible: true,
		Categories:  prefs,
		ExcludeIDs:  hidden,
	}
	return s.query(ctx, filter, page, limit)
}

// ExploreFeed 发现流：只排除封禁文章
func (s *FeedService) ExploreFeed(ctx context.Context, page, limit int) (*types.FeedResponse, error) {
	page, limit = normalizePage(page, limit)
	return s.query(ctx, dao.ArticleFilter{OnlyVisible: true}, page, limit)
}

// AuthorFeed 作者主页：包含作者自己被封禁的文章
func (s *FeedService) AuthorFeed(ctx context.Context, authorID int64, page, limit int) (*types.FeedResponse, error) {
	page, limit = normalizePage(page, limit)

	author, err := s.UserDAO.FindById(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, response.NotFound("用户不存在")
	}

	return s.query(ctx, dao.ArticleFilter{AuthorID: authorID}, page, limit)
}

// ModerationFeed 管理端全量流，不做任何过滤
func (s *FeedService) ModerationFeed(ctx context.Context, page, limit int) (*types.FeedResponse, error) {
	page, limit = normalizePage(page, limit)
	return s.query(ctx, dao.ArticleFilter{}, page, limit)
}

// GetArticle 单篇详情
func (s *FeedService) GetArticle(ctx context.Context, articleID int64) (*types.ArticleItem, error) {
	article, err := s.ArticleDAO.FindById(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, response.NotFound("文章不存在")
	}
	items, err := s.withAuthorNames(ctx, []*models.Article{article})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// TopLiked 点赞榜前 n 名，标题从库里补齐
func (s *FeedService) TopLiked(ctx context.Context, n int) ([]*types.RankItem, error) {
	if n <= 0 {
		n = 10
	}
	entries, err := s.Rank.Top(ctx, int64(n))
	if err != nil {
		return nil, err
	}

	items := make([]*types.RankItem, 0, len(entries))
	for i, e := range entries {
		item := &types.RankItem{Rank: i + 1, ArticleID: e.ArticleID, Likes: e.Likes}
		if article, err := s.ArticleDAO.FindById(ctx, e.ArticleID); err == nil && article != nil {
			item.Title = article.Title
		}
		items = append(items, item)
	}
	return items, nil
}

// query 执行过滤查询并拼装分页响应
func (s *FeedService) query(ctx context.Context, filter dao.ArticleFilter, page, limit int) (*types.FeedResponse, error) {
	offset := (page - 1) * limit

	articles, err := s.ArticleDAO.FindByFilter(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.ArticleDAO.CountByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.withAuthorNames(ctx, articles)
	if err != nil {
		return nil, err
	}

	return &types.FeedResponse{
		Items:      items,
		Page:       page,
		TotalPages: totalPages(total, limit),
		Total:      total,
	}, nil
}

// withAuthorNames 读取时拼作者展示名，作者改名后信息流即时生效
func (s *FeedService) withAuthorNames(ctx context.Context, articles []*models.Article) ([]*types.ArticleItem, error) {
	ids := make([]int64, 0, len(articles))
	seen := make(map[int64]struct{}, len(articles))
	for _, a := range articles {
		if _, ok := seen[a.AuthorID]; ok {
			continue
		}
		seen[a.AuthorID] = struct{}{}
		ids = append(ids, a.AuthorID)
	}

	authors, err := s.UserDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*types.ArticleItem, 0, len(articles))
	for _, a := range articles {
		name := ""
		if author, ok := authors[a.AuthorID]; ok {
			name = author.DisplayName()
		}
		items = append(items, types.NewArticleItem(a, name))
	}
	return items, nil
}

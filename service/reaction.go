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
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IReactionService = (*ReactionService)(nil)

type IReactionService interface {
	React(ctx context.Context, userID, articleID int64, intent uint8) (*types.ArticleSnapshot, error)
}

// ReactionState 读者对某篇文章的当前反应状态
type ReactionState uint8

const (
	StateNone ReactionState = iota
	StateLiked
	StateDisliked
)

// LedgerOp 账本操作
type LedgerOp uint8

const (
	OpCreate LedgerOp = iota + 1
	OpUpdate
	OpDelete
)

// ArticleDelta 文章冗余计数增量
type ArticleDelta struct {
	Likes    int64
	Dislikes int64
	Views    int64
}

// AuthorDelta 作者聚合计数增量
type AuthorDelta struct {
	Likes int64
	Views int64
}

// Transition 一次反应对应的账本操作与两组计数增量
type Transition struct {
	Op      LedgerOp
	Status  uint8 // create/update 时写入账本的方向
	Article ArticleDelta
	Author  AuthorDelta
}

// transition 反应状态机
// 浏览量只在首次反应（create）时 +1，撤销和翻转都不再计
// 注意：单纯撤销点赞（Liked -> None）不回退作者的获赞聚合，
// 翻转（Liked -> Disliked）才回退，线上行为如此，保持不变
func transition(state ReactionState, intent uint8) Transition {
	like := intent == models.ReactionLike

	switch state {
	case StateNone:
		if like {
			return Transition{
				Op:      OpCreate,
				Status:  models.ReactionLike,
				Article: ArticleDelta{Likes: 1, Views: 1},
				Author:  AuthorDelta{Likes: 1, Views: 1},
			}
		}
		return Transition{
			Op:      OpCreate,
			Status:  models.ReactionDislike,
			Article: ArticleDelta{Dislikes: 1, Views: 1},
			Author:  AuthorDelta{Views: 1},
		}

	case StateLiked:
		if like { // 再点一次，撤销
			return Transition{
				Op:      OpDelete,
				Article: ArticleDelta{Likes: -1},
			}
		}
		return Transition{
			Op:      OpUpdate,
			Status:  models.ReactionDislike,
			Article: ArticleDelta{Likes: -1, Dislikes: 1},
			Author:  AuthorDelta{Likes: -1},
		}

	default: // StateDisliked
		if !like { // 再踩一次，撤销
			return Transition{
				Op:      OpDelete,
				Article: ArticleDelta{Dislikes: -1},
			}
		}
		return Transition{
			Op:      OpUpdate,
			Status:  models.ReactionLike,
			Article: ArticleDelta{Likes: 1, Dislikes: -1},
			Author:  AuthorDelta{Likes: 1},
		}
	}
}

func stateOf(r *models.ArticleReaction) ReactionState {
	if r == nil {
		return StateNone
	}
	if r.Status == models.ReactionLike {
		return StateLiked
	}
	return StateDisliked
}

// 并发下另一请求已写入同一条账本记录，当前请求视为已生效
var errAlreadyApplied = errors.New("reaction already applied")

// absorbDuplicate 创建账本撞唯一键说明并发请求已先写入，
// 换成 errAlreadyApplied 中止事务，让本次的计数增量随之回滚
func absorbDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errAlreadyApplied
	}
	return err
}

// settle 事务结果归类：被吸收的并发写入对外不算错误，但增量未生效
func settle(err error) (applied bool, _ error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, errAlreadyApplied) {
		return false, nil
	}
	return false, err
}

type ReactionService struct {
	Db           *gorm.DB
	ArticleDAO   *dao.ArticleDAO
	ReactionDAO  *dao.ArticleReactionDAO
	UserStatsDAO *dao.UserStatsDAO
	Rank         *cache.RankCache
}

// React 读者点赞/点踩入口
// 账本写入与两组计数增量在同一个事务里提交
func (s *ReactionService) React(ctx context.Context, userID, articleID int64, intent uint8) (*types.ArticleSnapshot, error) {
	if intent != models.ReactionLike && intent != models.ReactionDislike {
		return nil, response.NewError(400, "不支持的反应类型")
	}

	article, err := s.ArticleDAO.FindById(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, response.NotFound("文章不存在")
	}
	// 封禁文章不接受反应
	if article.IsBlocked {
		return nil, response.Conflict("文章已被封禁")
	}

	var tr Transition
	err = s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.ReactionDAO.GetForUpdateTx(tx, articleID, userID)
		if err != nil {
			return err
		}

		tr = transition(stateOf(existing), intent)

		switch tr.Op {
		case OpCreate:
			item := &models.ArticleReaction{
				ID:        snowflake.GenID(),
				ArticleID: articleID,
				UserID:    userID,
				Status:    tr.Status,
			}
			if err := s.ReactionDAO.CreateTx(tx, item); err != nil {
				return absorbDuplicate(err)
			}
		case OpUpdate:
			if err := s.ReactionDAO.UpdateStatusTx(tx, existing.ID, tr.Status); err != nil {
				return err
			}
		case OpDelete:
			if err := s.ReactionDAO.DeleteTx(tx, existing.ID); err != nil {
				return err
			}
		}

		if err := s.ArticleDAO.IncrCountersTx(tx, articleID,
			tr.Article.Likes, tr.Article.Dislikes, tr.Article.Views); err != nil {
			return err
		}
		if tr.Author != (AuthorDelta{}) {
			if err := s.UserStatsDAO.IncrEngagementTx(tx, article.AuthorID,
				tr.Author.Likes, tr.Author.Views); err != nil {
				return err
			}
		}
		return nil
	})

	applied, err := settle(err)
	if err != nil {
		return nil, err
	}

	// 排行榜在事务外跟进，失败只记日志不影响主流程
	if applied && tr.Article.Likes != 0 {
		if rerr := s.Rank.IncrLike(ctx, articleID, tr.Article.Likes); rerr != nil {
			log.L.Warn("update like rank failed",
				zap.Int64("article_id", articleID), zap.Error(rerr))
		}
	}

	fresh, err := s.ArticleDAO.FindById(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, response.NotFound("文章不存在")
	}

	log.L.Info("reaction applied",
		zap.Int64("user_id", userID),
		zap.Int64("article_id", articleID),
		zap.Uint8("intent", intent),
	)

	return &types.ArticleSnapshot{
		ID:       fresh.ID,
		Likes:    fresh.Likes,
		Dislikes: fresh.Dislikes,
		Views:    fresh.Views,
	}, nil
}

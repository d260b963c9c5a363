package service

import (
	"Plume/models"
	"errors"
	"math/rand"
	"testing"

	"gorm.io/gorm"
)

// nextState 按账本操作推进模拟状态
func nextState(state ReactionState, tr Transition) ReactionState {
	switch tr.Op {
	case OpDelete:
		return StateNone
	case OpCreate, OpUpdate:
		if tr.Status == models.ReactionLike {
			return StateLiked
		}
		return StateDisliked
	}
	return state
}

// 状态机全表
func TestTransition_Table(t *testing.T) {
	cases := []struct {
		name   string
		state  ReactionState
		intent uint8
		want   Transition
	}{
		{
			name: "none+like", state: StateNone, intent: models.ReactionLike,
			want: Transition{
				Op: OpCreate, Status: models.ReactionLike,
				Article: ArticleDelta{Likes: 1, Views: 1},
				Author:  AuthorDelta{Likes: 1, Views: 1},
			},
		},
		{
			name: "none+dislike", state: StateNone, intent: models.ReactionDislike,
			want: Transition{
				Op: OpCreate, Status: models.ReactionDislike,
				Article: ArticleDelta{Dislikes: 1, Views: 1},
				Author:  AuthorDelta{Views: 1},
			},
		},
		{
			name: "liked+like=撤销", state: StateLiked, intent: models.ReactionLike,
			want: Transition{
				Op:      OpDelete,
				Article: ArticleDelta{Likes: -1},
			},
		},
		{
			name: "liked+dislike=翻转", state: StateLiked, intent: models.ReactionDislike,
			want: Transition{
				Op: OpUpdate, Status: models.ReactionDislike,
				Article: ArticleDelta{Likes: -1, Dislikes: 1},
				Author:  AuthorDelta{Likes: -1},
			},
		},
		{
			name: "disliked+dislike=撤销", state: StateDisliked, intent: models.ReactionDislike,
			want: Transition{
				Op:      OpDelete,
				Article: ArticleDelta{Dislikes: -1},
			},
		},
		{
			name: "disliked+like=翻转", state: StateDisliked, intent: models.ReactionLike,
			want: Transition{
				Op: OpUpdate, Status: models.ReactionLike,
				Article: ArticleDelta{Likes: 1, Dislikes: -1},
				Author:  AuthorDelta{Likes: 1},
			},
		},
	}

	for _, c := range cases {
		got := transition(c.state, c.intent)
		if got != c.want {
			t.Fatalf("%s: got %+v, want %+v", c.name, got, c.want)
		}
	}
}

// 浏览量只在首次反应时 +1
func TestTransition_ViewsOnlyOnCreate(t *testing.T) {
	for _, state := range []ReactionState{StateNone, StateLiked, StateDisliked} {
		for _, intent := range []uint8{models.ReactionLike, models.ReactionDislike} {
			tr := transition(state, intent)
			if state == StateNone {
				if tr.Article.Views != 1 || tr.Author.Views != 1 {
					t.Fatalf("state=%d intent=%d: create 应计一次浏览, got %+v", state, intent, tr)
				}
				continue
			}
			if tr.Article.Views != 0 || tr.Author.Views != 0 {
				t.Fatalf("state=%d intent=%d: 非 create 不应计浏览, got %+v", state, intent, tr)
			}
		}
	}
}

// 撤销点赞不回退作者获赞，翻转才回退
func TestTransition_RetractKeepsAuthorLikes(t *testing.T) {
	retract := transition(StateLiked, models.ReactionLike)
	if retract.Author.Likes != 0 {
		t.Fatalf("撤销点赞不应动作者获赞, got %d", retract.Author.Likes)
	}
	flip := transition(StateLiked, models.ReactionDislike)
	if flip.Author.Likes != -1 {
		t.Fatalf("翻转应回退作者获赞, got %d", flip.Author.Likes)
	}
}

// 场景：点赞 -> 点踩 -> 再点踩（撤销）
func TestTransition_LikeDislikeRetractScenario(t *testing.T) {
	var likes, dislikes, views int64
	state := StateNone

	step := func(intent uint8) Transition {
		tr := transition(state, intent)
		likes += tr.Article.Likes
		dislikes += tr.Article.Dislikes
		views += tr.Article.Views
		state = nextState(state, tr)
		return tr
	}

	step(models.ReactionLike)
	if likes != 1 || dislikes != 0 || views != 1 {
		t.Fatalf("after like: likes=%d dislikes=%d views=%d", likes, dislikes, views)
	}

	step(models.ReactionDislike)
	if likes != 0 || dislikes != 1 || views != 1 {
		t.Fatalf("after flip: likes=%d dislikes=%d views=%d", likes, dislikes, views)
	}

	tr := step(models.ReactionDislike)
	if tr.Op != OpDelete {
		t.Fatalf("再点踩应删除账本记录, got op=%d", tr.Op)
	}
	if likes != 0 || dislikes != 0 || views != 1 {
		t.Fatalf("after retract: likes=%d dislikes=%d views=%d", likes, dislikes, views)
	}
	if state != StateNone {
		t.Fatalf("撤销后应回到 None, got %d", state)
	}
}

// 随机走一万步，计数永远等于账本状态，且每个读者至多一条有效反应
func TestTransition_CountersMatchLedger(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var likes, dislikes int64
	state := StateNone

	for i := 0; i < 10000; i++ {
		intent := uint8(rng.Intn(2)) + models.ReactionLike
		tr := transition(state, intent)
		likes += tr.Article.Likes
		dislikes += tr.Article.Dislikes
		state = nextState(state, tr)

		var wantLikes, wantDislikes int64
		switch state {
		case StateLiked:
			wantLikes = 1
		case StateDisliked:
			wantDislikes = 1
		}
		if likes != wantLikes || dislikes != wantDislikes {
			t.Fatalf("step %d: likes=%d dislikes=%d, ledger state=%d", i, likes, dislikes, state)
		}
		if likes+dislikes > 1 {
			t.Fatalf("step %d: 单个读者出现多条有效反应", i)
		}
	}
}

// 并发撞唯一键：重复键换成 errAlreadyApplied 中止事务，其它错误原样透传
func TestAbsorbDuplicate(t *testing.T) {
	if err := absorbDuplicate(gorm.ErrDuplicatedKey); !errors.Is(err, errAlreadyApplied) {
		t.Fatalf("重复键应吸收为已生效, got %v", err)
	}

	boom := errors.New("boom")
	if err := absorbDuplicate(boom); !errors.Is(err, boom) {
		t.Fatalf("其它错误不应被吸收, got %v", err)
	}
	if err := absorbDuplicate(nil); err != nil {
		t.Fatalf("无错误不应被改写, got %v", err)
	}
}

// 被吸收的并发写入：事务已回滚，对外不报错，增量不算生效
func TestSettle_AbsorbedIsNotAnError(t *testing.T) {
	applied, err := settle(errAlreadyApplied)
	if err != nil {
		t.Fatalf("已生效的并发吸收不应报错, got %v", err)
	}
	if applied {
		t.Fatal("被吸收的请求增量不应生效")
	}

	applied, err = settle(nil)
	if err != nil || !applied {
		t.Fatalf("正常提交应生效, applied=%v err=%v", applied, err)
	}

	boom := errors.New("boom")
	applied, err = settle(boom)
	if !errors.Is(err, boom) || applied {
		t.Fatalf("其它事务错误应原样返回, applied=%v err=%v", applied, err)
	}
}

func TestStateOf(t *testing.T) {
	if stateOf(nil) != StateNone {
		t.Fatal("nil 记录应为 None")
	}
	if stateOf(&models.ArticleReaction{Status: models.ReactionLike}) != StateLiked {
		t.Fatal("like 记录应为 Liked")
	}
	if stateOf(&models.ArticleReaction{Status: models.ReactionDislike}) != StateDisliked {
		t.Fatal("dislike 记录应为 Disliked")
	}
}

package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const rankKey = "rank:article:likes"

// RankCache 点赞排行榜
// 分数跟随账本的点赞增减，封禁/删除的文章会被移出榜单
type RankCache struct {
	redis *redis.Client
}

func NewRankCache(redis *redis.Client) *RankCache {
	return &RankCache{redis: redis}
}

func (c *RankCache) IncrLike(ctx context.Context, articleID int64, delta int64) error {
	return c.redis.ZIncrBy(ctx, rankKey, float64(delta), strconv.FormatInt(articleID, 10)).Err()
}

// Set 直接覆盖分数，解封时按当前点赞数回填
func (c *RankCache) Set(ctx context.Context, articleID int64, likes int64) error {
	return c.redis.ZAdd(ctx, rankKey, redis.Z{
		Score:  float64(likes),
		Member: strconv.FormatInt(articleID, 10),
	}).Err()
}

func (c *RankCache) Remove(ctx context.Context, articleID int64) error {
	return c.redis.ZRem(ctx, rankKey, strconv.FormatInt(articleID, 10)).Err()
}

type RankEntry struct {
	ArticleID int64
	Likes     int64
}

// Top 取榜单前 n 名
func (c *RankCache) Top(ctx context.Context, n int64) ([]RankEntry, error) {
	zs, err := c.redis.ZRevRangeWithScores(ctx, rankKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]RankEntry, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, RankEntry{ArticleID: id, Likes: int64(z.Score)})
	}
	return entries, nil
}

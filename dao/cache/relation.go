package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const relationTTL = 30 * time.Minute

// RelationCache 收藏/购物车标记缓存
// 只做加速，未命中或出错都回源数据库，不参与唯一性约束
// 按菜谱分桶成 hash，删菜谱时才能一把清掉所有人的标记
type RelationCache struct {
	redis *redis.Client
}

func NewRelationCache(redis *redis.Client) *RelationCache {
	return &RelationCache{redis: redis}
}

func favoriteKey(recipeID int64) string {
	return fmt.Sprintf("rel:fav:%d", recipeID)
}

func cartKey(recipeID int64) string {
	return fmt.Sprintf("rel:cart:%d", recipeID)
}

// SetFavorite 写收藏标记
func (c *RelationCache) SetFavorite(ctx context.Context, userID, recipeID int64, favorited bool) {
	c.set(ctx, favoriteKey(recipeID), userID, favorited)
}

// GetFavorite 读收藏标记，第二个返回值表示是否命中
func (c *RelationCache) GetFavorite(ctx context.Context, userID, recipeID int64) (bool, bool) {
	return c.get(ctx, favoriteKey(recipeID), userID)
}

// SetInCart 写购物车标记
func (c *RelationCache) SetInCart(ctx context.Context, userID, recipeID int64, inCart bool) {
	c.set(ctx, cartKey(recipeID), userID, inCart)
}

// GetInCart 读购物车标记，第二个返回值表示是否命中
func (c *RelationCache) GetInCart(ctx context.Context, userID, recipeID int64) (bool, bool) {
	return c.get(ctx, cartKey(recipeID), userID)
}

// InvalidateRecipe 菜谱删除时清掉它名下的全部标记
func (c *RelationCache) InvalidateRecipe(ctx context.Context, recipeID int64) {
	_ = c.redis.Del(ctx, favoriteKey(recipeID), cartKey(recipeID)).Err()
}

func (c *RelationCache) set(ctx context.Context, key string, userID int64, val bool) {
	v := "0"
	if val {
		v = "1"
	}
	// 写失败不影响主流程
	pipe := c.redis.Pipeline()
	pipe.HSet(ctx, key, strconv.FormatInt(userID, 10), v)
	pipe.Expire(ctx, key, relationTTL)
	_, _ = pipe.Exec(ctx)
}

func (c *RelationCache) get(ctx context.Context, key string, userID int64) (bool, bool) {
	v, err := c.redis.HGet(ctx, key, strconv.FormatInt(userID, 10)).Result()
	if err != nil {
		return false, false
	}
	return v == "1", true
}

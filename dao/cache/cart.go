package cache

import (
	"Collabenote/types"
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// CartStorage 购物车缓存。会话级数据，不落文档库。
// key   = cart:{uid}
// field = 笔记 title（购物车以 title 为唯一键）
// value = CartItem JSON
type CartStorage struct {
	redis *redis.Client
}

func NewCartStorage(redis *redis.Client) *CartStorage {
	return &CartStorage{redis: redis}
}

func (c *CartStorage) key(uid string) string {
	return fmt.Sprintf("cart:%s", uid)
}

// Add 插入或替换同 title 条目
func (c *CartStorage) Add(ctx context.Context, uid string, item types.CartItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return c.redis.HSet(ctx, c.key(uid), item.Title, data).Err()
}

// Remove 删除条目，不存在则无事发生
func (c *CartStorage) Remove(ctx context.Context, uid, title string) error {
	return c.redis.HDel(ctx, c.key(uid), title).Err()
}

// Contains 成员判断
func (c *CartStorage) Contains(ctx context.Context, uid, title string) (bool, error) {
	return c.redis.HExists(ctx, c.key(uid), title).Result()
}

// List 取全部条目
func (c *CartStorage) List(ctx context.Context, uid string) ([]types.CartItem, error) {
	values, err := c.redis.HVals(ctx, c.key(uid)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]types.CartItem, 0, len(values))
	for _, v := range values {
		var item types.CartItem
		if err := json.Unmarshal([]byte(v), &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Clear 清空购物车（支付成功后调用）
func (c *CartStorage) Clear(ctx context.Context, uid string) error {
	return c.redis.Del(ctx, c.key(uid)).Err()
}

package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/logger"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound 键不存在
var ErrNotFound = errors.New("localstore: key not found")

// Store 客户端本地键值存储
// 对应浏览器 localStorage 的角色：仅保存令牌与少量 id 集合
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// New 根据配置创建存储实例
// Redis 未启用时退回进程内存储
func New(cfg *config.StoreConfig) Store {
	if cfg != nil && cfg.Redis.Enabled {
		store, err := NewRedisStore(&cfg.Redis)
		if err == nil {
			return store
		}
		logger.Warnw("localstore_redis_init_failed", "error", err, "fallback", "memory")
	}
	return NewMemoryStore()
}

// MemoryStore 进程内存储
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore 创建进程内存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get 读取键值
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Set 写入键值
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Del 删除键值
func (s *MemoryStore) Del(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	if cfg == nil {
		return nil, errors.New("localstore: redis config is nil")
	}
	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "sf"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", addr, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisStore{client: client, prefix: prefix}, nil
}

// Get 读取键值
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.buildKey(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set 写入键值（不设过期，客户端本地状态由远端校验失败时失效）
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.buildKey(key), value, 0).Err()
}

// Del 删除键值
func (s *RedisStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.buildKey(key)).Err()
}

// Client 返回底层 Redis 客户端，供限流等共享连接场景复用
func (s *RedisStore) Client() *redis.Client {
	return s.client
}

func (s *RedisStore) buildKey(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return s.prefix
	}
	return fmt.Sprintf("%s:%s", s.prefix, trimmed)
}

// GetJSON 读取 JSON 键值
func GetJSON(ctx context.Context, store Store, key string, dest interface{}) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return ok, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 写入 JSON 键值
func SetJSON(ctx context.Context, store Store, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(payload))
}

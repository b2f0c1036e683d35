// 本文件提供通用的 cache-aside 读取封装
// Service 层的每个读路径都重复"读缓存->反序列化->查库->异步回写"这一套流程，
// 这里抽成泛型函数统一处理，缓存不可用时自动降级为直接计算
package redis

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// WithCache cache-aside 读取
// cache 为 nil 时直接执行 compute。
// 命中且反序列化成功时不触发 compute；未命中或缓存异常时执行 compute，
// 成功后异步把结果以 JSON 回写缓存。缓存层的任何错误只记日志，不影响读取结果。
func WithCache[T any](ctx context.Context, cache AsyncCacheService, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if cache == nil {
		return compute()
	}

	// 1. 尝试从缓存获取
	cached, err := cache.Get(ctx, key)
	if err == nil && cached != "" {
		var value T
		if err := json.Unmarshal([]byte(cached), &value); err == nil {
			return value, nil
		}
		// 缓存数据脏了，打日志后降级查库
		zap.L().Warn("Unmarshal cache failed, fallback to compute", zap.String("key", key), zap.Error(err))
	} else if err != nil {
		// Redis 异常（非 Key 不存在），记录错误但不中断业务
		zap.L().Error("Cache get error", zap.String("key", key), zap.Error(err))
	}

	// 2. 缓存未命中或缓存出错 -> 执行真实计算
	value, err := compute()
	if err != nil {
		return value, err
	}

	// 3. 异步回写缓存
	cache.SubmitTask(func() {
		data, err := json.Marshal(value)
		if err != nil {
			zap.L().Error("Marshal cache value error", zap.String("key", key), zap.Error(err))
			return
		}
		if err := cache.Set(context.Background(), key, string(data), ttl); err != nil {
			zap.L().Error("Set cache error", zap.String("key", key), zap.Error(err))
		}
	})

	return value, nil
}

// Memoized 进程内记忆体，带软刷新
// 超过 RefreshAfter 后旧值继续对外服务，同时只触发一次后台重算，
// 避免过期瞬间的惊群；超过 HardTTL 后下次访问同步重算。
// 适合上游较慢、允许短暂陈旧的查询。
type Memoized[T any] struct {
	mu         sync.Mutex
	value      T
	fetchedAt  time.Time
	has        bool
	refreshing atomic.Bool

	refreshAfter time.Duration // 软过期阈值，0 表示不做后台刷新
	hardTTL      time.Duration // 硬过期阈值，0 表示永不硬过期
	compute      func() (T, error)
}

// NewMemoized 创建记忆体
// refreshAfter: 软过期阈值；hardTTL: 硬过期阈值（应不小于 refreshAfter）
func NewMemoized[T any](refreshAfter, hardTTL time.Duration, compute func() (T, error)) *Memoized[T] {
	return &Memoized[T]{
		refreshAfter: refreshAfter,
		hardTTL:      hardTTL,
		compute:      compute,
	}
}

// Get 返回记忆值
// 首次访问或硬过期后同步计算；软过期后返回旧值并触发一次后台刷新
func (m *Memoized[T]) Get() (T, error) {
	m.mu.Lock()

	age := time.Since(m.fetchedAt)
	if !m.has || (m.hardTTL > 0 && age > m.hardTTL) {
		// 首次或硬过期：同步重算，持锁期间其他调用方等待结果
		value, err := m.compute()
		if err != nil {
			m.mu.Unlock()
			return value, err
		}
		m.value = value
		m.fetchedAt = time.Now()
		m.has = true
		m.mu.Unlock()
		return value, nil
	}

	value := m.value
	needRefresh := m.refreshAfter > 0 && age > m.refreshAfter
	m.mu.Unlock()

	// 软过期：返回旧值，后台单飞刷新
	if needRefresh && m.refreshing.CompareAndSwap(false, true) {
		go func() {
			defer m.refreshing.Store(false)
			fresh, err := m.compute()
			if err != nil {
				zap.L().Warn("Memoized background refresh failed", zap.Error(err))
				return
			}
			m.mu.Lock()
			m.value = fresh
			m.fetchedAt = time.Now()
			m.mu.Unlock()
		}()
	}

	return value, nil
}

// Invalidate 作废当前值，下次访问同步重算
func (m *Memoized[T]) Invalidate() {
	m.mu.Lock()
	m.has = false
	m.mu.Unlock()
}

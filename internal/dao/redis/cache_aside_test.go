package redis

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// fakeCache 内存实现，SubmitTask 同步执行
// failGet / failSet 用来模拟 Redis 故障
type fakeCache struct {
	data    map[string]string
	failGet bool
	failSet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if f.failSet {
		return errors.New("redis: connection refused")
	}
	f.data[key] = value
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if f.failGet {
		return "", errors.New("redis: connection refused")
	}
	return f.data[key], nil
}

func (f *fakeCache) GetOrError(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", errors.New("key not found")
	}
	return v, nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeCache) DeleteByPattern(ctx context.Context, pattern string) error { return nil }

func (f *fakeCache) DeleteByPatterns(ctx context.Context, patterns []string) error { return nil }

func (f *fakeCache) SubmitTask(action func()) { action() }

type payload struct {
	Value string `json:"value"`
}

func TestWithCacheMissThenHit(t *testing.T) {
	cache := newFakeCache()
	var calls int32
	compute := func() (payload, error) {
		atomic.AddInt32(&calls, 1)
		return payload{Value: "from db"}, nil
	}

	// 未命中：执行 compute 并回填
	got, err := WithCache(context.Background(), cache, "k1", time.Minute, compute)
	if err != nil {
		t.Fatalf("WithCache: %v", err)
	}
	if got.Value != "from db" {
		t.Errorf("value = %q", got.Value)
	}
	if calls != 1 {
		t.Fatalf("compute calls = %d, want 1", calls)
	}

	// 命中：不再执行 compute
	got, err = WithCache(context.Background(), cache, "k1", time.Minute, compute)
	if err != nil {
		t.Fatalf("WithCache: %v", err)
	}
	if got.Value != "from db" {
		t.Errorf("value = %q", got.Value)
	}
	if calls != 1 {
		t.Errorf("compute calls = %d, want 仍为 1", calls)
	}
}

func TestWithCacheNilCacheComputes(t *testing.T) {
	var calls int32
	got, err := WithCache(context.Background(), nil, "k1", time.Minute, func() (int, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	})
	if err != nil || got != 42 || calls != 1 {
		t.Errorf("got=%d err=%v calls=%d", got, err, calls)
	}
}

func TestWithCacheDegradesOnCacheErrors(t *testing.T) {
	cache := newFakeCache()
	cache.failGet = true
	cache.failSet = true

	// 读写都故障时每次都落到 compute，但调用方感知不到缓存错误
	for i := 0; i < 2; i++ {
		got, err := WithCache(context.Background(), cache, "k1", time.Minute, func() (payload, error) {
			return payload{Value: "degraded"}, nil
		})
		if err != nil {
			t.Fatalf("WithCache: %v", err)
		}
		if got.Value != "degraded" {
			t.Errorf("value = %q", got.Value)
		}
	}
}

func TestWithCacheDirtyEntryFallsBack(t *testing.T) {
	cache := newFakeCache()
	cache.data["k1"] = "{not json"

	got, err := WithCache(context.Background(), cache, "k1", time.Minute, func() (payload, error) {
		return payload{Value: "recomputed"}, nil
	})
	if err != nil {
		t.Fatalf("WithCache: %v", err)
	}
	if got.Value != "recomputed" {
		t.Errorf("脏缓存应降级重算，得到 %q", got.Value)
	}
}

func TestWithCachePropagatesComputeError(t *testing.T) {
	cache := newFakeCache()
	wantErr := errors.New("db gone")
	_, err := WithCache(context.Background(), cache, "k1", time.Minute, func() (payload, error) {
		return payload{}, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	if cache.data["k1"] != "" {
		t.Errorf("compute 失败不应回填缓存")
	}
}

func TestMemoizedCachesWithinTTL(t *testing.T) {
	var calls int32
	m := NewMemoized(time.Minute, time.Hour, func() (string, error) {
		atomic.AddInt32(&calls, 1)
		return "v1", nil
	})

	for i := 0; i < 3; i++ {
		got, err := m.Get()
		if err != nil || got != "v1" {
			t.Fatalf("Get: %q %v", got, err)
		}
	}
	if calls != 1 {
		t.Errorf("compute calls = %d, want 1", calls)
	}

	// 作废后下次访问同步重算
	m.Invalidate()
	if _, err := m.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if calls != 2 {
		t.Errorf("compute calls = %d, want 2", calls)
	}
}

func TestMemoizedSoftRefreshServesStaleValue(t *testing.T) {
	var calls int32
	m := NewMemoized(time.Millisecond, time.Hour, func() (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "v1", nil
		}
		return "v2", nil
	})

	if got, _ := m.Get(); got != "v1" {
		t.Fatalf("首次 Get = %q", got)
	}

	// 软过期后：当次返回旧值，同时触发后台刷新
	time.Sleep(5 * time.Millisecond)
	if got, _ := m.Get(); got != "v1" {
		t.Errorf("软过期当次应返回旧值，得到 %q", got)
	}

	// 等后台刷新落地
	deadline := time.Now().Add(time.Second)
	for atomic.LoadInt32(&calls) < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if got, _ := m.Get(); got != "v2" {
		t.Errorf("后台刷新后 Get = %q, want v2", got)
	}
}

func TestMemoizedFirstErrorNotCached(t *testing.T) {
	var calls int32
	m := NewMemoized(time.Minute, time.Hour, func() (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", errors.New("upstream down")
		}
		return "v2", nil
	})

	if _, err := m.Get(); err == nil {
		t.Fatalf("首次失败应向调用方透出错误")
	}
	got, err := m.Get()
	if err != nil || got != "v2" {
		t.Errorf("恢复后 Get = %q %v", got, err)
	}
}

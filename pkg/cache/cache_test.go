package cache

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache.Get should always miss")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestBackends(t *testing.T) {
	ctx := context.Background()

	file, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	backends := map[string]Cache{
		"file":   file,
		"memory": NewMemoryCache(),
	}

	for name, c := range backends {
		t.Run(name, func(t *testing.T) {
			if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
				t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
			}

			if err := c.Set(ctx, "k", []byte("graph 1 2 3"), time.Hour); err != nil {
				t.Fatal(err)
			}
			got, hit, err := c.Get(ctx, "k")
			if err != nil || !hit {
				t.Fatalf("Get(k) = hit %v, err %v", hit, err)
			}
			if string(got) != "graph 1 2 3" {
				t.Errorf("Get(k) = %q", got)
			}

			if err := c.Delete(ctx, "k"); err != nil {
				t.Fatal(err)
			}
			if _, hit, _ := c.Get(ctx, "k"); hit {
				t.Error("entry survived Delete")
			}
			if err := c.Delete(ctx, "k"); err != nil {
				t.Errorf("second Delete: %v", err)
			}
		})
	}
}

func TestExpiredEntriesMiss(t *testing.T) {
	ctx := context.Background()
	file, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for name, c := range map[string]Cache{"file": file, "memory": NewMemoryCache()} {
		t.Run(name, func(t *testing.T) {
			if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
				t.Fatal(err)
			}
			time.Sleep(5 * time.Millisecond)
			if _, hit, _ := c.Get(ctx, "k"); hit {
				t.Error("expired entry reported as hit")
			}
		})
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.path("k"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit %v, err %v", hit, err)
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	file, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for name, c := range map[string]interface {
		Cache
		Clearer
	}{"file": file, "memory": NewMemoryCache()} {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"a", "b", "c"} {
				if err := c.Set(ctx, k, []byte(k), 0); err != nil {
					t.Fatal(err)
				}
			}
			if err := c.Clear(ctx); err != nil {
				t.Fatal(err)
			}
			for _, k := range []string{"a", "b", "c"} {
				if _, hit, _ := c.Get(ctx, k); hit {
					t.Errorf("%s survived Clear", k)
				}
			}
			if err := c.Set(ctx, "a", []byte("a"), 0); err != nil {
				t.Errorf("Set after Clear: %v", err)
			}
		})
	}
}

func TestMemoryCacheClosed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	_ = c.Set(ctx, "k", []byte("v"), 0)
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	c.Close()
	if _, _, err := c.Get(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after Close: %v", err)
	}
	if err := c.Set(ctx, "k", nil, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after Close: %v", err)
	}
}

func TestMemoryCacheCopiesData(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	buf := []byte("abc")
	_ = c.Set(ctx, "k", buf, 0)
	buf[0] = 'x'
	got, _, _ := c.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("stored data aliased caller buffer: %q", got)
	}
}

func TestRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Fatal("expected connection error")
	}
}

func TestRedisCacheClearNeedsPrefix(t *testing.T) {
	c := NewRedisCacheFromClient(nil, "")
	if err := c.Clear(context.Background()); err == nil {
		t.Error("Clear without prefix should fail")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	lk1 := k.LayoutKey("hash123", LayoutKeyOpts{Engine: "graphviz", Format: "plain"})
	lk2 := k.LayoutKey("hash123", LayoutKeyOpts{Engine: "dot", Format: "plain"})
	if lk1 == lk2 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(lk1, "layout:") {
		t.Errorf("LayoutKey prefix: %s", lk1)
	}
	if k.LayoutKey("hash123", LayoutKeyOpts{Engine: "graphviz", Format: "plain"}) != lk1 {
		t.Error("LayoutKey should be deterministic")
	}

	ak := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	if !strings.HasPrefix(ak, "artifact:") {
		t.Errorf("ArtifactKey prefix: %s", ak)
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "team:123:")
	key := scoped.LayoutKey("abc", LayoutKeyOpts{})
	if !strings.HasPrefix(key, "team:123:layout:") {
		t.Errorf("ScopedKeyer LayoutKey should be prefixed: %s", key)
	}

	// nil inner falls back to DefaultKeyer
	scoped = NewScopedKeyer(nil, "p:")
	if got, want := scoped.ArtifactKey("abc", ArtifactKeyOpts{Format: "svg"}),
		"p:"+NewDefaultKeyer().ArtifactKey("abc", ArtifactKeyOpts{Format: "svg"}); got != want {
		t.Errorf("ArtifactKey = %s, want %s", got, want)
	}
}

var errNetwork = errors.New("network error")

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}
	err := Retryable(errNetwork)
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if !errors.Is(err, errNetwork) {
		t.Error("wrapped error should unwrap")
	}
	if err.Error() != errNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(ErrClosed) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestBackoffRetry(t *testing.T) {
	ctx := context.Background()
	b := Backoff{Attempts: 3, Delay: time.Millisecond}

	calls := 0
	if err := b.Retry(ctx, func() error { calls++; return nil }); err != nil || calls != 1 {
		t.Errorf("success: err %v, calls %d", err, calls)
	}

	calls = 0
	errFatal := errors.New("fatal")
	if err := b.Retry(ctx, func() error { calls++; return errFatal }); err != errFatal || calls != 1 {
		t.Errorf("non-retryable: err %v, calls %d", err, calls)
	}

	calls = 0
	err := b.Retry(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(errNetwork)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry once: err %v, calls %d", err, calls)
	}

	calls = 0
	err = b.Retry(ctx, func() error { calls++; return Retryable(errNetwork) })
	if !IsRetryable(err) || calls != 3 {
		t.Errorf("exhausted: err %v, calls %d", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(errNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

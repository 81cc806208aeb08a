package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func init() {
	DefaultBackoff.Delay = time.Millisecond
}

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

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "region:abc", []byte{1, 2, 3}, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "region:abc")
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if string(data) != string([]byte{1, 2, 3}) {
		t.Errorf("Get = %v", data)
	}

	if err := c.Delete(ctx, "region:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "region:abc"); hit {
		t.Error("entry should be gone after Delete")
	}
	if err := c.Delete(ctx, "region:abc"); err != nil {
		t.Errorf("deleting a missing key should not fail: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}

	if err := c.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("ttl 0 should never expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("broken")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, hit, err := c.Get(ctx, "broken")
	if err != nil || hit {
		t.Errorf("corrupt entry should be a silent miss: hit=%v err=%v", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}
	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entries should be gone after Clear")
	}
}

func TestNewFileCacheEmptyDir(t *testing.T) {
	if _, err := NewFileCache(""); err == nil {
		t.Error("empty dir should fail")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, Options{})
	if err != nil {
		t.Fatalf("Open(none): %v", err)
	}
	if _, ok := c.(NullCache); !ok {
		t.Errorf("empty backend should be NullCache, got %T", c)
	}

	dir := t.TempDir()
	c, err = Open(ctx, Options{Backend: BackendFile, Dir: dir})
	if err != nil {
		t.Fatalf("Open(file): %v", err)
	}
	if fc, ok := c.(*FileCache); !ok || fc.Dir() != dir {
		t.Errorf("file backend = %T", c)
	}

	if _, err := Open(ctx, Options{Backend: "memcached"}); err == nil {
		t.Error("unknown backend should fail")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
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

	base := RegionKeyOpts{Chain: "biomes", X: 0, Z: 0, Width: 64, Height: 64, Format: "json"}
	r1 := k.RegionKey("world1", base)
	if !strings.HasPrefix(r1, "region:") {
		t.Errorf("RegionKey prefix: %s", r1)
	}
	if r1 != k.RegionKey("world1", base) {
		t.Error("RegionKey should be deterministic")
	}

	moved := base
	moved.X = 1
	if r1 == k.RegionKey("world1", moved) {
		t.Error("different origin should produce a different key")
	}
	if r1 == k.RegionKey("world2", base) {
		t.Error("different world should produce a different key")
	}
	png := base
	png.Format = "png"
	if r1 == k.RegionKey("world1", png) {
		t.Error("different format should produce a different key")
	}

	t1 := k.TopologyKey("world1", "dot")
	if !strings.HasPrefix(t1, "topology:") {
		t.Errorf("TopologyKey prefix: %s", t1)
	}
	if t1 == k.TopologyKey("world1", "svg") {
		t.Error("different topology format should produce a different key")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "staging:")

	opts := RegionKeyOpts{Chain: "zoomed", Width: 16, Height: 16, Format: "png"}
	if got, want := scoped.RegionKey("w", opts), "staging:"+inner.RegionKey("w", opts); got != want {
		t.Errorf("RegionKey = %s, want %s", got, want)
	}
	if got := scoped.TopologyKey("w", "dot"); !strings.HasPrefix(got, "staging:topology:") {
		t.Errorf("TopologyKey should be prefixed: %s", got)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	want := "prefix:" + NewDefaultKeyer().TopologyKey("w", "dot")
	if got := scoped.TopologyKey("w", "dot"); got != want {
		t.Errorf("Unexpected key with nil inner: %s", got)
	}
}

var errBoom = errors.New("boom")

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrBackend)
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrBackend.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if !errors.Is(err, ErrBackend) {
		t.Error("wrapped error should unwrap to ErrBackend")
	}
	if IsRetryable(errBoom) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	calls := 0
	if err := RetryWithBackoff(ctx, func() error { calls++; return nil }); err != nil || calls != 1 {
		t.Errorf("success: err=%v calls=%d", err, calls)
	}

	calls = 0
	err := RetryWithBackoff(ctx, func() error { calls++; return errBoom })
	if err != errBoom || calls != 1 {
		t.Errorf("non-retryable: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrBackend)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry once: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error { calls++; return Retryable(ErrBackend) })
	if !IsRetryable(err) || calls != 3 {
		t.Errorf("exhausted: err=%v calls=%d", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrBackend)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

func TestBackoffSingleAttempt(t *testing.T) {
	calls := 0
	b := Backoff{Attempts: 0, Delay: time.Hour}
	err := b.Do(context.Background(), func() error { calls++; return Retryable(ErrBackend) })
	if calls != 1 {
		t.Errorf("calls = %d, want 1 for a non-positive attempt count", calls)
	}
	if !errors.Is(err, ErrBackend) {
		t.Errorf("err = %v, want ErrBackend", err)
	}
}

func TestClassifyRedis(t *testing.T) {
	if classifyRedis(nil) != nil {
		t.Error("nil should stay nil")
	}
	plain := errors.New("WRONGTYPE")
	if IsRetryable(classifyRedis(plain)) {
		t.Error("server errors should not be retried")
	}
}

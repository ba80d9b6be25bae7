package driver_test

import (
	"reflect"
	"testing"

	"protogen/internal/driver"
	"protogen/internal/encoding"
	"protogen/internal/ir"
	"protogen/internal/schema"
)

func sampleDocument(t *testing.T) *ir.Document {
	t.Helper()
	strat, err := encoding.Select("sysex")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	reg := schema.NewTypeRegistry()
	reg.LoadBuiltins()
	m, err := schema.NewMessage("PING", "", nil)
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	doc, err := ir.Build(reg, []*schema.Message{m}, nil, strat, ir.Params{Protocol: "test", StringMaxLength: 32})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return doc
}

func TestCacheKeyStability(t *testing.T) {
	a := driver.CacheKey([]byte("schema"), []byte("manifest"), "sysex")
	b := driver.CacheKey([]byte("schema"), []byte("manifest"), "sysex")
	if a != b {
		t.Error("identical inputs produced different keys")
	}

	if driver.CacheKey([]byte("schema2"), []byte("manifest"), "sysex") == a {
		t.Error("schema change did not change the key")
	}
	if driver.CacheKey([]byte("schema"), []byte("manifest2"), "sysex") == a {
		t.Error("manifest change did not change the key")
	}
	if driver.CacheKey([]byte("schema"), []byte("manifest"), "serial8") == a {
		t.Error("strategy change did not change the key")
	}
	// The separator keeps boundary shifts from colliding.
	if driver.CacheKey([]byte("schemam"), []byte("anifest"), "sysex") == a {
		t.Error("boundary shift collided")
	}
}

func TestCachePutGet(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	key := driver.CacheKey([]byte("s"), []byte("m"), "sysex")

	if _, hit, err := cache.Get(key); err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	doc := sampleDocument(t)
	if err := cache.Put(key, doc); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, hit, err := cache.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected a hit after Put")
	}
	if !reflect.DeepEqual(got, doc) {
		t.Error("cached document differs from original")
	}

	other := driver.CacheKey([]byte("s2"), []byte("m"), "sysex")
	if _, hit, _ := cache.Get(other); hit {
		t.Error("hit on a different key")
	}
}

func TestCacheDropAll(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	key := driver.CacheKey([]byte("s"), []byte("m"), "sysex")
	if err := cache.Put(key, sampleDocument(t)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, hit, err := cache.Get(key); err != nil || hit {
		t.Errorf("after DropAll: hit=%v err=%v", hit, err)
	}
}

func TestNilCacheIsNoop(t *testing.T) {
	var cache *driver.DiskCache
	key := driver.CacheKey([]byte("s"), []byte("m"), "sysex")
	if err := cache.Put(key, nil); err != nil {
		t.Errorf("nil Put: %v", err)
	}
	if _, hit, err := cache.Get(key); err != nil || hit {
		t.Errorf("nil Get: hit=%v err=%v", hit, err)
	}
	if err := cache.DropAll(); err != nil {
		t.Errorf("nil DropAll: %v", err)
	}
}

package cache

import (
	"testing"
	"time"
)

func TestQueryKey_StableAndDistinct(t *testing.T) {
	a := QueryKey("serper", "photographer Delhi")
	b := QueryKey("serper", "photographer Delhi")
	c := QueryKey("serper", "caterer Mumbai")

	if a != b {
		t.Error("Expected identical keys for identical queries")
	}
	if a == c {
		t.Error("Expected distinct keys for distinct queries")
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := QueryKey("serper", "test query")
	if err := c.Set(key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, found := c.Get(key)
	if !found || string(val) != "payload" {
		t.Errorf("Expected cached payload, got %q found=%v", val, found)
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("Expected miss after delete")
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	key := QueryKey("serper", "disk query")
	if err := c.Set(key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if val, found := c.Get(key); !found || string(val) != "payload" {
		t.Errorf("Expected cached payload, got %q found=%v", val, found)
	}

	expired := QueryKey("serper", "expired query")
	if err := c.Set(expired, []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get(expired); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	key := QueryKey("serper", "layered query")
	if err := c.disk.Set(key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if val, found := c.Get(key); !found || string(val) != "payload" {
		t.Fatalf("Expected disk hit, got %q found=%v", val, found)
	}
	if _, found := c.memory.Get(key); !found {
		t.Error("Expected disk hit promoted to memory")
	}
}

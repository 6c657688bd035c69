package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestCache_PutGet(t *testing.T) {
	c := New[string](StringHasher)

	if _, ok := c.Get("👍"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	c.Put("👍", []byte("thumbs"))
	data, ok := c.Get("👍")
	if !ok {
		t.Fatal("Get missed after Put")
	}
	if string(data) != "thumbs" {
		t.Errorf("Get = %q, want %q", data, "thumbs")
	}

	// Replacement keeps a single entry.
	c.Put("👍", []byte("thumbs2"))
	data, _ = c.Get("👍")
	if string(data) != "thumbs2" {
		t.Errorf("Get after replace = %q, want %q", data, "thumbs2")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCache_NilEntry(t *testing.T) {
	c := New[string](StringHasher)

	// A nil value records a definitive miss; the hit flag must still
	// distinguish it from "never attempted".
	c.Put("missing", nil)
	data, ok := c.Get("missing")
	if !ok {
		t.Error("stored nil entry not reported as present")
	}
	if data != nil {
		t.Errorf("stored nil entry = %v, want nil", data)
	}
}

func TestCache_Uint64Keys(t *testing.T) {
	c := New[uint64](Uint64Hasher)

	for i := uint64(0); i < 100; i++ {
		c.Put(i, []byte{byte(i)})
	}
	if c.Len() != 100 {
		t.Fatalf("Len = %d, want 100", c.Len())
	}
	for i := uint64(0); i < 100; i++ {
		data, ok := c.Get(i)
		if !ok || len(data) != 1 || data[0] != byte(i) {
			t.Fatalf("Get(%d) = %v, %v", i, data, ok)
		}
	}
}

func TestCache_ReleaseAll(t *testing.T) {
	c := New[string](StringHasher)
	for i := 0; i < 64; i++ {
		c.Put(fmt.Sprintf("key-%d", i), []byte("v"))
	}
	if c.Len() != 64 {
		t.Fatalf("Len = %d, want 64", c.Len())
	}

	c.ReleaseAll()
	if c.Len() != 0 {
		t.Errorf("Len after ReleaseAll = %d, want 0", c.Len())
	}
	if _, ok := c.Get("key-0"); ok {
		t.Error("entry survived ReleaseAll")
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New[string](StringHasher)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("key-%d", i)
				c.Put(key, []byte(key))
				if data, ok := c.Get(key); ok && string(data) != key {
					t.Errorf("goroutine %d: Get(%q) = %q", g, key, data)
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() != 100 {
		t.Errorf("Len = %d, want 100", c.Len())
	}
}

// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New(time.Minute, "test")
	defer c.Close()

	c.Set("key", "value")

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("expected hit for fresh entry")
	}
	if got != "value" {
		t.Errorf("Get = %v, want value", got)
	}
}

func TestGetMissing(t *testing.T) {
	c := New(time.Minute, "test")
	defer c.Close()

	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestExpiry(t *testing.T) {
	c := New(time.Minute, "test")
	defer c.Close()

	c.SetWithTTL("short", 42, -time.Second)

	if _, ok := c.Get("short"); ok {
		t.Error("expected expired entry to miss")
	}
	if c.Stats().Entries != 0 {
		t.Errorf("expired entry should be deleted on read, have %d entries", c.Stats().Entries)
	}
}

func TestDelete(t *testing.T) {
	c := New(time.Minute, "test")
	defer c.Close()

	c.Set("key", 1)
	c.Delete("key")
	if _, ok := c.Get("key"); ok {
		t.Error("expected miss after delete")
	}

	// Deleting a missing key must not panic.
	c.Delete("absent")
}

func TestClear(t *testing.T) {
	c := New(time.Minute, "test")
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	if got := c.Stats().Entries; got != 0 {
		t.Errorf("entries after Clear = %d, want 0", got)
	}
}

func TestOverwrite(t *testing.T) {
	c := New(time.Minute, "test")
	defer c.Close()

	c.Set("key", "old")
	c.Set("key", "new")

	got, _ := c.Get("key")
	if got != "new" {
		t.Errorf("Get after overwrite = %v, want new", got)
	}
}

func TestRemoveExpired(t *testing.T) {
	c := New(time.Minute, "test")
	defer c.Close()

	c.SetWithTTL("stale", 1, -time.Second)
	c.Set("fresh", 2)

	c.removeExpired()

	if got := c.Stats().Entries; got != 1 {
		t.Errorf("entries after sweep = %d, want 1", got)
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("fresh entry should survive the sweep")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New(time.Minute, "test")
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			c.Set(fmt.Sprintf("key-%d", n), n)
		}(i)
		go func(n int) {
			defer wg.Done()
			c.Get(fmt.Sprintf("key-%d", n))
		}(i)
	}
	wg.Wait()
}

func TestCloseIdempotent(t *testing.T) {
	c := New(time.Minute, "test")
	c.Close()
	c.Close()
}

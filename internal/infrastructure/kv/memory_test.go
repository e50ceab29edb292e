package kv

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/nutresa-radar/backend/internal/domain"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		store := NewMemory()

		if err := store.Set(ctx, "radar:store-health", `{"exito":{}}`); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		value, err := store.Get(ctx, "radar:store-health")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if value != `{"exito":{}}` {
			t.Errorf("Get() = %q", value)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		store := NewMemory()

		_, err := store.Get(ctx, "nope")
		if !errors.Is(err, domain.ErrKeyNotFound) {
			t.Errorf("Get() error = %v, want ErrKeyNotFound", err)
		}
	})

	t.Run("set replaces", func(t *testing.T) {
		store := NewMemory()

		store.Set(ctx, "key", "one")
		store.Set(ctx, "key", "two")

		value, _ := store.Get(ctx, "key")
		if value != "two" {
			t.Errorf("Get() = %q, want two", value)
		}
	})

	t.Run("concurrent access", func(t *testing.T) {
		store := NewMemory()
		var wg sync.WaitGroup

		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func(n int) {
				defer wg.Done()
				store.Set(ctx, fmt.Sprintf("key-%d", n), "value")
			}(i)
			go func(n int) {
				defer wg.Done()
				store.Get(ctx, fmt.Sprintf("key-%d", n))
			}(i)
		}
		wg.Wait()
	})
}

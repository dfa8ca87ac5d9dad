package cache

import (
	"context"
	"testing"
	"time"

	"github.com/labelforge/backend/internal/domain"
)

func testProfile() *domain.ProductProfile {
	return &domain.ProductProfile{
		FdcID:       "171077",
		ProductName: "Chicken Breast",
		NutrientsPer100g: domain.NutrientMap{
			domain.NutrientKcal:     120,
			domain.NutrientProteinG: 22.5,
		},
		Confidence: 95,
		Source:     "USDA",
	}
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "profile:chicken breast:", testProfile(), time.Hour); err != nil {
		t.Fatalf("Set() error = %v, want nil", err)
	}

	got, err := cache.Get(ctx, "profile:chicken breast:")
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	if got.ProductName != "Chicken Breast" {
		t.Errorf("ProductName = %q, want Chicken Breast", got.ProductName)
	}
	if got.NutrientsPer100g[domain.NutrientKcal] != 120 {
		t.Errorf("kcal = %v, want 120", got.NutrientsPer100g[domain.NutrientKcal])
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	cache := NewMemoryCache()

	_, err := cache.Get(context.Background(), "profile:nothing:")
	if err != domain.ErrCacheMiss {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", testProfile(), 10*time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	_, err := cache.Get(ctx, "key")
	if err != domain.ErrCacheMiss {
		t.Errorf("Get() after TTL error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_RejectsNil(t *testing.T) {
	cache := NewMemoryCache()

	err := cache.Set(context.Background(), "key", nil, time.Hour)
	if err != domain.ErrInvalidRequest {
		t.Errorf("Set(nil) error = %v, want ErrInvalidRequest", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", testProfile(), time.Hour)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err := cache.Get(ctx, "key")
	if err != domain.ErrCacheMiss {
		t.Errorf("Get() after delete error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_CopiesInAndOut(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	original := testProfile()
	cache.Set(ctx, "key", original, time.Hour)

	// Mutating the stored-in value must not affect the cached copy.
	original.NutrientsPer100g[domain.NutrientKcal] = 999

	first, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if first.NutrientsPer100g[domain.NutrientKcal] != 120 {
		t.Errorf("cached kcal = %v, want 120 after caller mutation", first.NutrientsPer100g[domain.NutrientKcal])
	}

	// Mutating a returned value must not affect later reads.
	first.NutrientsPer100g[domain.NutrientKcal] = 555

	second, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if second.NutrientsPer100g[domain.NutrientKcal] != 120 {
		t.Errorf("cached kcal = %v, want 120 after reader mutation", second.NutrientsPer100g[domain.NutrientKcal])
	}
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "a", testProfile(), time.Hour)
	cache.Set(ctx, "b", testProfile(), time.Hour)

	if cache.Size() != 2 {
		t.Errorf("Size() = %d, want 2", cache.Size())
	}

	cache.Clear()
	if cache.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", cache.Size())
	}
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				cache.Set(ctx, "shared", testProfile(), time.Hour)
				cache.Get(ctx, "shared")
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	if _, err := cache.Get(ctx, "shared"); err != nil {
		t.Errorf("Get() after concurrent access error = %v", err)
	}
}

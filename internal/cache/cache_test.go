package cache

import (
	"context"
	"errors"
	"testing"
)

func TestGetFetchesOnMissAndCaches(t *testing.T) {
	s := NewStore()
	calls := 0
	fetch := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Get(context.Background(), s, "articles", fetch)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d items, want 2", len(got))
		}
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestGetRetriesExactlyOnce(t *testing.T) {
	s := NewStore()
	calls := 0
	fail := errors.New("down")
	_, err := Get(context.Background(), s, "articles", func(ctx context.Context) (int, error) {
		calls++
		return 0, fail
	})
	if !errors.Is(err, fail) {
		t.Fatalf("err = %v, want %v", err, fail)
	}
	if calls != 2 {
		t.Errorf("fetch called %d times, want 2 (one retry)", calls)
	}
}

func TestGetRecoversOnRetry(t *testing.T) {
	s := NewStore()
	calls := 0
	got, err := Get(context.Background(), s, "articles", func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "ok" || calls != 2 {
		t.Errorf("got %q after %d calls, want ok after 2", got, calls)
	}
}

func TestFailureDoesNotOverwriteSnapshot(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	ok := func(ctx context.Context) (string, error) { return "v1", nil }
	if _, err := Get(ctx, s, "articles", ok); err != nil {
		t.Fatal(err)
	}

	// the snapshot survives a later failed refetch of a different key and
	// a failed fetch never stores anything
	bad := func(ctx context.Context) (string, error) { return "", errors.New("down") }
	if _, err := Get(ctx, s, "ventes", bad); err == nil {
		t.Fatal("want error")
	}
	if _, ok := s.lookup("ventes"); ok {
		t.Error("failed fetch must not be stored")
	}
	got, err := Get(ctx, s, "articles", bad)
	if err != nil || got != "v1" {
		t.Errorf("cached read = %q, %v; want v1 from snapshot", got, err)
	}
}

func TestInvalidateDropsSubkeys(t *testing.T) {
	s := NewStore()
	s.put("panier", 1)
	s.put("panier/alice@shop.tld", 2)
	s.put("panier/bob@shop.tld", 3)
	s.put("paniers-autres", 4)

	s.Invalidate("panier")

	for _, k := range []string{"panier", "panier/alice@shop.tld", "panier/bob@shop.tld"} {
		if _, ok := s.lookup(k); ok {
			t.Errorf("%s still cached after invalidation", k)
		}
	}
	if _, ok := s.lookup("paniers-autres"); !ok {
		t.Error("sibling key dropped; prefix match must be segment-aware")
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := NewStore()
	s.put("a", 1)
	s.put("b", 2)
	s.Reset()
	if _, ok := s.lookup("a"); ok {
		t.Error("a survived reset")
	}
	if _, ok := s.lookup("b"); ok {
		t.Error("b survived reset")
	}
}

func TestTypeMismatchRefetches(t *testing.T) {
	s := NewStore()
	s.put("articles", "not-an-int")
	got, err := Get(context.Background(), s, "articles", func(ctx context.Context) (int, error) {
		return 42, nil
	})
	if err != nil || got != 42 {
		t.Errorf("got %d, %v; want refetched 42", got, err)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielhkuo/quickly-draw/draw"
	"github.com/danielhkuo/quickly-draw/models"
	"github.com/danielhkuo/quickly-draw/testutil"
)

type drawResult struct {
	status int
	item   string
}

func drawConcurrently(t *testing.T, handler *DrawHandler, names []string) []drawResult {
	t.Helper()

	results := make([]drawResult, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/draws", models.CreateDrawRequest{Name: name}, nil)
			w := httptest.NewRecorder()
			handler.CreateDraw(w, req)

			results[i].status = w.Code
			if w.Code == http.StatusOK {
				var resp models.DrawResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err == nil {
					results[i].item = resp.Item
				}
			}
		}()
	}
	wg.Wait()
	return results
}

func TestConcurrentExclusiveDraws(t *testing.T) {
	const n = 10

	engine, _ := testutil.NewTestEngine(t, draw.Exclusive{})
	handler := NewDrawHandler(engine, testutil.GetTestConfig())
	for i := 0; i < n; i++ {
		testutil.AddTestItem(t, engine, fmt.Sprintf("Item %d", i))
	}

	names := make([]string, n+1)
	for i := range names {
		names[i] = fmt.Sprintf("Person %d", i)
	}

	results := drawConcurrently(t, handler, names)

	seen := make(map[string]bool)
	exhausted := 0
	for i, r := range results {
		switch r.status {
		case http.StatusOK:
			if seen[r.item] {
				t.Errorf("item %q assigned twice", r.item)
			}
			seen[r.item] = true
		case http.StatusBadRequest:
			exhausted++
		default:
			t.Errorf("%s got status %d", names[i], r.status)
		}
	}

	if len(seen) != n {
		t.Errorf("expected all %d items drawn, got %d", n, len(seen))
	}
	if exhausted != 1 {
		t.Errorf("expected exactly 1 exhausted draw, got %d", exhausted)
	}
}

func TestConcurrentSameName(t *testing.T) {
	engine, _ := testutil.NewTestEngine(t, draw.Balanced{})
	handler := NewDrawHandler(engine, testutil.GetTestConfig())
	for _, name := range []string{"Panettone", "Chocolate", "Wine"} {
		testutil.AddTestItem(t, engine, name)
	}

	names := []string{"Alice", "alice", " ALICE ", "Alice", "aLiCe", "alice "}
	results := drawConcurrently(t, handler, names)

	for i, r := range results {
		if r.status != http.StatusOK {
			t.Fatalf("%q got status %d", names[i], r.status)
		}
		if r.item != results[0].item {
			t.Errorf("%q drew %q, first drew %q", names[i], r.item, results[0].item)
		}
	}

	draws, err := engine.ListDraws(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(draws) != 1 {
		t.Errorf("expected one ledger entry, got %d", len(draws))
	}
}

func TestConcurrentBalancedDraws(t *testing.T) {
	const items, people = 4, 14

	engine, _ := testutil.NewTestEngine(t, draw.Balanced{})
	handler := NewDrawHandler(engine, testutil.GetTestConfig())
	for i := 0; i < items; i++ {
		testutil.AddTestItem(t, engine, fmt.Sprintf("Item %d", i))
	}

	names := make([]string, people)
	for i := range names {
		names[i] = fmt.Sprintf("Person %d", i)
	}

	counts := make(map[string]int)
	for i, r := range drawConcurrently(t, handler, names) {
		if r.status != http.StatusOK {
			t.Fatalf("%s got status %d", names[i], r.status)
		}
		counts[r.item]++
	}

	// 14 draws over 4 items: every item drawn 3 or 4 times
	if len(counts) != items {
		t.Fatalf("expected every item drawn, got %v", counts)
	}
	for item, c := range counts {
		if c < people/items || c > people/items+1 {
			t.Errorf("%s drawn %d times, counts %v", item, c, counts)
		}
	}
}

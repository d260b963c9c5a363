package snowflake

import (
	"sync"
	"testing"
)

// 基础测试：能不能生成 ID
func TestGenArticleID(t *testing.T) {
	id := GenArticleID()
	if id <= 0 {
		t.Fatalf("expected id > 0, got %d", id)
	}

	t.Logf("generated article id: %d", id)
}

// 唯一性测试：单线程生成
func TestGenArticleID_Unique(t *testing.T) {
	const n = 10000
	ids := make(map[int64]struct{}, n)

	for i := 0; i < n; i++ {
		id := GenArticleID()
		if _, exists := ids[id]; exists {
			t.Fatalf("duplicate id found: %d", id)
		}
		ids[id] = struct{}{}
	}
}

// 并发测试：多 goroutine 生成
func TestGenArticleID_Concurrent(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 5000
		total      = goroutines * perRoutine
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[int64]struct{}, total)
	)

	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				id := GenArticleID()

				mu.Lock()
				if _, exists := ids[id]; exists {
					t.Errorf("duplicate id found in concurrent test: %d", id)
					mu.Unlock()
					return
				}
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
}

// 顺序性测试（非严格递增，但应该整体递增）
func TestGenArticleID_Order(t *testing.T) {
	prev := GenArticleID()

	for i := 0; i < 1000; i++ {
		curr := GenArticleID()
		if curr <= prev {
			t.Fatalf("ids not increasing: prev=%d curr=%d", prev, curr)
		}
		prev = curr
	}
}

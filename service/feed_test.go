package service

import (
	"Plume/types"
	"testing"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 7, 15},
		{-5, 10, 0},
	}

	for _, c := range cases {
		if got := totalPages(c.total, c.limit); got != c.want {
			t.Fatalf("totalPages(%d, %d) = %d, want %d", c.total, c.limit, got, c.want)
		}
	}
}

func TestNormalizePage(t *testing.T) {
	page, limit := normalizePage(0, 0)
	if page != types.DefaultPage || limit != types.DefaultLimit {
		t.Fatalf("零值应回退默认, got page=%d limit=%d", page, limit)
	}

	page, limit = normalizePage(-3, -1)
	if page != types.DefaultPage || limit != types.DefaultLimit {
		t.Fatalf("负值应回退默认, got page=%d limit=%d", page, limit)
	}

	page, limit = normalizePage(5, 1000)
	if page != 5 || limit != types.MaxLimit {
		t.Fatalf("超限 limit 应截断, got page=%d limit=%d", page, limit)
	}

	page, limit = normalizePage(2, 30)
	if page != 2 || limit != 30 {
		t.Fatalf("合法参数不应改写, got page=%d limit=%d", page, limit)
	}
}

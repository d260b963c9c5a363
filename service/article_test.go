package service

import (
	"strings"
	"testing"
)

func TestReadTime(t *testing.T) {
	if got := readTime(""); got != 1 {
		t.Fatalf("空正文至少 1 分钟, got %d", got)
	}
	if got := readTime("short body"); got != 1 {
		t.Fatalf("短文至少 1 分钟, got %d", got)
	}

	words := strings.Repeat("word ", 400)
	if got := readTime(words); got != 2 {
		t.Fatalf("400 词应为 2 分钟, got %d", got)
	}

	words = strings.Repeat("word ", 1000)
	if got := readTime(words); got != 5 {
		t.Fatalf("1000 词应为 5 分钟, got %d", got)
	}
}

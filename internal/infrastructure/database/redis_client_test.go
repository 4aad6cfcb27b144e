package database

import (
	"context"
	"testing"
)

func TestNewRedisClient_InvalidURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "not-a-url://"); err == nil {
		t.Fatalf("expected parse error")
	}
}

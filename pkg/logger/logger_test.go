package logger

import (
	"context"
	"testing"
)

func TestInitAndContextLogging(t *testing.T) {
	Init("development")
	if GetLogger() == nil {
		t.Fatal("expected logger initialized")
	}

	ctx := context.WithValue(context.Background(), "request_id", "req-1")
	if WithContext(ctx) == nil {
		t.Fatal("expected contextual logger")
	}
	if WithContext(nil) == nil {
		t.Fatal("expected base logger for nil context")
	}

	// Should not panic
	Info(ctx, "info")
	Debug(ctx, "debug")
	Warn(ctx, "warn")
	Error(ctx, "error")
	LogRequest(ctx, "GET", "/admin/system_users", 200, 0, "127.0.0.1")
}

func TestWithTypedKey(t *testing.T) {
	Init("development")
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-2")
	if WithContext(ctx) == nil {
		t.Fatal("expected contextual logger")
	}
}

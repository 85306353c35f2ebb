package net_test

import (
	"context"
	"testing"

	"tallybook/internal/platform/logger"
	pnet "tallybook/internal/platform/net"
)

func TestWithRequest(t *testing.T) {
	ctx := pnet.WithRequest(context.Background(), "req-7")
	if got := pnet.RequestID(ctx); got != "req-7" {
		t.Fatalf("RequestID = %q", got)
	}
	if got := logger.RequestID(ctx); got != "req-7" {
		t.Fatalf("logger did not see the id: %q", got)
	}
}

func TestWithRequest_Empty(t *testing.T) {
	base := context.Background()
	if pnet.WithRequest(base, "") != base {
		t.Fatalf("empty id should return ctx unchanged")
	}
	if pnet.RequestID(base) != "" {
		t.Fatalf("background has no id")
	}
}

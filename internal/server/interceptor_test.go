package server

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/paperbase/paperbase/internal/common"
)

func TestUnaryLoggingStampsRequestID(t *testing.T) {
	interceptor := UnaryLogging(nil)

	var gotRequestID, gotUserID string
	handler := func(ctx context.Context, req any) (any, error) {
		gotRequestID = common.RequestIDFromContext(ctx)
		gotUserID = common.UserIDFromContext(ctx)
		return "ok", nil
	}

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("x-user-id", "user-123"))
	resp, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/docs.v1.DocumentsService/GetDocument"}, handler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "ok" {
		t.Errorf("resp = %v", resp)
	}
	if gotRequestID == "" {
		t.Error("handler saw no request id")
	}
	if gotUserID != "user-123" {
		t.Errorf("user id = %q, want user-123", gotUserID)
	}
}

func TestParseIDPtr(t *testing.T) {
	if got := parseIDPtr(""); got != nil {
		t.Errorf("empty input = %v, want nil", got)
	}
	if got := parseIDPtr("not-a-uuid"); got != nil {
		t.Errorf("malformed input = %v, want nil", got)
	}
	if got := parseIDPtr("  2f0c9a39-9c6b-4a37-90f1-6a1c1f6f30f2  "); got == nil {
		t.Error("valid uuid with whitespace rejected")
	}
}

func TestParseYMDPtr(t *testing.T) {
	p, err := parseYMDPtr("2026-03-14")
	if err != nil || p == nil {
		t.Fatalf("parseYMDPtr: %v %v", p, err)
	}
	if p.Year() != 2026 || p.Month() != 3 || p.Day() != 14 {
		t.Errorf("parsed %v", p)
	}
	if p2, err := parseYMDPtr(""); err != nil || p2 != nil {
		t.Errorf("empty date = %v, %v, want nil, nil", p2, err)
	}
	if _, err := parseYMDPtr("14/03/2026"); err == nil {
		t.Error("malformed date accepted")
	}
}

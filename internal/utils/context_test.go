// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "sessionID", SessionIDCtxKey.String())
}

func TestUserID_RoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{name: "missing", ctx: context.Background()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserIDCtxKey, "42")},
		{name: "different key", ctx: context.WithValue(context.Background(), contextKey("other"), int64(99))},
		{name: "zero value", ctx: WithUserID(context.Background(), 0), wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, userID)
		})
	}
}

func TestSessionID(t *testing.T) {
	_, ok := GetSessionIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetSessionIDFromContext(WithSessionID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := GetSessionIDFromContext(WithSessionID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	// version nibble of a UUIDv7
	assert.Equal(t, byte('7'), a[14])
}

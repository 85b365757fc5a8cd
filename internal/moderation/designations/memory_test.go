package designations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modbot/internal/moderation"
	"modbot/internal/moderation/designations"
)

func TestMemoryDesignateAndRemove(t *testing.T) {
	ctx := context.Background()
	mem := designations.NewMemory()

	has, err := mem.HasDesignation(ctx, 100, 42, moderation.DesignationUnmoderated)
	require.NoError(t, err)
	assert.False(t, has)

	mem.Designate(100, 42, moderation.DesignationUnmoderated)

	has, err = mem.HasDesignation(ctx, 100, 42, moderation.DesignationUnmoderated)
	require.NoError(t, err)
	assert.True(t, has)

	mem.Remove(100, 42, moderation.DesignationUnmoderated)

	has, err = mem.HasDesignation(ctx, 100, 42, moderation.DesignationUnmoderated)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMemoryScopesDesignationsByChannel(t *testing.T) {
	ctx := context.Background()
	mem := designations.NewMemory()

	mem.Designate(100, 42, moderation.DesignationUnmoderated)

	has, err := mem.HasDesignation(ctx, 100, 43, moderation.DesignationUnmoderated)
	require.NoError(t, err)
	assert.False(t, has)

	has, err = mem.HasDesignation(ctx, 101, 42, moderation.DesignationUnmoderated)
	require.NoError(t, err)
	assert.False(t, has)
}

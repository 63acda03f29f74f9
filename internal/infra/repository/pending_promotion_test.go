//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/docstore"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/repository"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/tests/common/builder"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/tests/common/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingPromotionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	lisbon := time.FixedZone("WEST", 1*60*60)

	utc := builder.NewPromotionBuilder().BuildPending()
	zoned := builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) {
		b.ID = "promo-002"
		b.PendingID = "pending-002"
		b.GeneratedAt = time.Date(2025, 6, 1, 18, 45, 0, 0, lisbon)
	}).BuildPending()
	require.NoError(t, zoned.Decide(true))
	want := []promotion.PendingAIPromotion{utc, zoned}

	require.NoError(t, repository.NewPendingPromotionRepository(store, testutil.DiscardLogger()).Append(ctx, want...))

	// a fresh repository only sees what went through the store
	got := repository.NewPendingPromotionRepository(store, testutil.DiscardLogger()).List(ctx)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, got[1].GeneratedAt.Equal(zoned.GeneratedAt))
	_, offset := got[1].GeneratedAt.Zone()
	assert.Equal(t, 3600, offset)
}

func TestPendingPromotionUpdate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPendingPromotionRepository(docstore.NewMemoryStore(), testutil.DiscardLogger())
	require.NoError(t, repo.Append(ctx, builder.NewPromotionBuilder().BuildPending()))

	err := repo.Update(ctx, func(cur []promotion.PendingAIPromotion) ([]promotion.PendingAIPromotion, error) {
		return cur[:0], nil
	})
	require.NoError(t, err)
	assert.Empty(t, repo.List(ctx))
}

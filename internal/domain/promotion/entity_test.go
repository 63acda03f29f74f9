//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/gap"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*promotion.Promotion)
	errIs  error
}

func TestPromotionValidate(t *testing.T) {
	runCases(t, []testCase{
		{name: "generated draft is valid", mutate: func(*promotion.Promotion) {}},
		{
			name:   "percentage above 100",
			mutate: func(p *promotion.Promotion) { p.DiscountValue = 101 },
			errIs:  promotion.ErrInvalidDiscountPercent,
		},
		{
			name:   "negative fixed amount",
			mutate: func(p *promotion.Promotion) { p.DiscountType = promotion.DiscountFixed; p.DiscountValue = -1 },
			errIs:  promotion.ErrInvalidDiscountAmount,
		},
		{
			name:   "large fixed amount",
			mutate: func(p *promotion.Promotion) { p.DiscountType = promotion.DiscountFixed; p.DiscountValue = 250 },
		},
		{
			name:   "unknown discount type",
			mutate: func(p *promotion.Promotion) { p.DiscountType = "bogo" },
			errIs:  promotion.ErrUnsupportedDiscountType,
		},
		{
			name:   "end before start",
			mutate: func(p *promotion.Promotion) { p.EndDate = p.StartDate.Add(-time.Hour) },
			errIs:  promotion.ErrInvalidPromotionWindow,
		},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := builder.NewPromotionBuilder().BuildDomain()
			tc.mutate(&p)
			err := p.Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewPendingAIPromotion(t *testing.T) {
	b := builder.NewPromotionBuilder()
	p := b.BuildPending()

	assert.Equal(t, promotion.ApprovalPending, p.Status)
	assert.Equal(t, b.GeneratedAt.Add(7*24*time.Hour), p.ExpiresAt)
	assert.Equal(t, 70, p.OccupancyGap)
	assert.Equal(t, gap.UrgencyCritical, p.Urgency)
	assert.Equal(t, []string{"stay-001"}, p.Promotion.ApplicableListings)
	assert.Equal(t, "stay-001", p.ListingID)
}

func TestDecide(t *testing.T) {
	t.Run("approve schedules the promotion", func(t *testing.T) {
		p := builder.NewPromotionBuilder().BuildPending()
		require.NoError(t, p.Decide(true))
		assert.Equal(t, promotion.ApprovalApproved, p.Status)
		assert.Equal(t, promotion.StatusScheduled, p.Promotion.Status)
	})

	t.Run("reject keeps the draft status", func(t *testing.T) {
		p := builder.NewPromotionBuilder().BuildPending()
		require.NoError(t, p.Decide(false))
		assert.Equal(t, promotion.ApprovalRejected, p.Status)
		assert.Equal(t, promotion.StatusDraft, p.Promotion.Status)
	})

	t.Run("decisions are final", func(t *testing.T) {
		p := builder.NewPromotionBuilder().BuildPending()
		require.NoError(t, p.Decide(false))
		assert.ErrorIs(t, p.Decide(true), promotion.ErrAlreadyDecided)
		assert.Equal(t, promotion.ApprovalRejected, p.Status)
	})
}

func TestIsExpired(t *testing.T) {
	p := builder.NewPromotionBuilder().BuildPending()

	assert.False(t, p.IsExpired(p.ExpiresAt.Add(-time.Second)))
	assert.False(t, p.IsExpired(p.ExpiresAt))
	assert.True(t, p.IsExpired(p.ExpiresAt.Add(time.Nanosecond)))
}

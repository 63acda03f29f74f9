//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/ptr"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/tests/common/builder"
	commandsmock "github.com/Jacob-ai2ai/travelconnectai-sub001/tests/mock/commands"
	sharedmock "github.com/Jacob-ai2ai/travelconnectai-sub001/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateNotification(t *testing.T) {
	ctx := context.Background()
	draft := builder.NewNotificationBuilder().BuildDraft()

	t.Run("email is sent when enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := sharedmock.NewMockNotifier(ctrl)
		f := newFixture(t, fixtureOpts{notifier: mailer})

		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e notification.Event) error {
				assert.Equal(t, notification.TypeOccupancyAlert, e.Type)
				return nil
			})

		ev, err := f.notifications.Create(ctx, draft)
		require.NoError(t, err)
		assert.Equal(t, fixedNow, ev.CreatedAt)
		assert.NotEmpty(t, ev.ID)
	})

	t.Run("email failure does not fail the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := sharedmock.NewMockNotifier(ctrl)
		f := newFixture(t, fixtureOpts{notifier: mailer})

		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errs.New("smtp down"))

		_, err := f.notifications.Create(ctx, draft)
		require.NoError(t, err)
		assert.Len(t, f.events.List(ctx), 1)
	})

	t.Run("no email when disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := sharedmock.NewMockNotifier(ctrl)
		f := newFixture(t, fixtureOpts{notifier: mailer})

		prefs := notification.DefaultPreferences()
		prefs.EmailNotifications = false
		require.NoError(t, f.prefs.Save(ctx, prefs))

		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.notifications.Create(ctx, draft)
		require.NoError(t, err)
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		bad := draft
		bad.Type = "price_drop"

		_, err := f.notifications.Create(ctx, bad)
		assert.ErrorIs(t, err, notification.ErrInvalidType)
		assert.Empty(t, f.events.List(ctx))
	})
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOpts{})

	var ids []string
	for range 3 {
		ev, err := f.notifications.Create(ctx, builder.NewNotificationBuilder().BuildDraft())
		require.NoError(t, err)
		ids = append(ids, ev.ID)
	}

	require.NoError(t, f.notifications.MarkRead(ctx, ids[1]))
	assert.Equal(t, 2, notification.UnreadCount(f.events.List(ctx)))

	// marking twice is harmless
	require.NoError(t, f.notifications.MarkRead(ctx, ids[1]))
	assert.Equal(t, 2, notification.UnreadCount(f.events.List(ctx)))

	err := f.notifications.MarkRead(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrNotificationNotFound)
	assert.Len(t, f.events.List(ctx), 3)
}

func TestUpdatePreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields and notifies the observer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		observer := commandsmock.NewMockPreferencesObserver(ctrl)
		f := newFixture(t, fixtureOpts{observer: observer})

		observer.EXPECT().PreferencesChanged(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, p notification.Preferences) {
				assert.Equal(t, "18:30", p.DailyScanTime)
			})

		got, err := f.notifications.UpdatePreferences(ctx, commands.UpdatePreferencesRequest{
			DailyScanTime:        ptr.To("18:30"),
			AutoApproveThreshold: ptr.To(15),
		})
		require.NoError(t, err)

		want := notification.DefaultPreferences()
		want.DailyScanTime = "18:30"
		want.AutoApproveThreshold = ptr.To(15)
		assert.Equal(t, want, *got)
		assert.Equal(t, want, f.prefs.Get(ctx))
	})

	t.Run("clearing auto-approve wins", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		_, err := f.notifications.UpdatePreferences(ctx, commands.UpdatePreferencesRequest{AutoApproveThreshold: ptr.To(15)})
		require.NoError(t, err)

		got, err := f.notifications.UpdatePreferences(ctx, commands.UpdatePreferencesRequest{
			AutoApproveThreshold: ptr.To(30),
			ClearAutoApprove:     true,
		})
		require.NoError(t, err)
		assert.Nil(t, got.AutoApproveThreshold)
	})

	t.Run("invalid values are not saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		observer := commandsmock.NewMockPreferencesObserver(ctrl)
		f := newFixture(t, fixtureOpts{observer: observer})

		observer.EXPECT().PreferencesChanged(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.notifications.UpdatePreferences(ctx, commands.UpdatePreferencesRequest{DailyScanTime: ptr.To("7pm")})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
		assert.ErrorIs(t, err, notification.ErrInvalidScanTime)

		_, err = f.notifications.UpdatePreferences(ctx, commands.UpdatePreferencesRequest{AutoApproveThreshold: ptr.To(-5)})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)

		assert.Equal(t, notification.DefaultPreferences(), f.prefs.Get(ctx))
	})
}

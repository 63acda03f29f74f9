//go:build unit

package docstore_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/docstore"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"`
}

func defaultSettings() settings {
	return settings{Enabled: true, Time: "09:00"}
}

func newDoc(store docstore.Store) *docstore.Document[settings] {
	return docstore.NewDocument(store, "settings", testutil.DiscardLogger(), defaultSettings)
}

func TestDocumentLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key yields default", func(t *testing.T) {
		assert.Equal(t, defaultSettings(), newDoc(docstore.NewMemoryStore()).Load(ctx))
	})

	t.Run("malformed body yields default", func(t *testing.T) {
		store := docstore.NewMemoryStore()
		require.NoError(t, store.Put(ctx, "settings", []byte("{not json")))
		assert.Equal(t, defaultSettings(), newDoc(store).Load(ctx))
	})

	t.Run("absent fields keep their default", func(t *testing.T) {
		store := docstore.NewMemoryStore()
		require.NoError(t, store.Put(ctx, "settings", []byte(`{"enabled":false}`)))
		assert.Equal(t, settings{Enabled: false, Time: "09:00"}, newDoc(store).Load(ctx))
	})

	t.Run("save then load", func(t *testing.T) {
		doc := newDoc(docstore.NewMemoryStore())
		want := settings{Enabled: false, Time: "18:30"}
		require.NoError(t, doc.Save(ctx, want))
		assert.Equal(t, want, doc.Load(ctx))
	})
}

func TestDocumentUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("failed update writes nothing", func(t *testing.T) {
		store := docstore.NewMemoryStore()
		doc := newDoc(store)
		boom := errs.New("boom")

		_, err := doc.Update(ctx, func(s settings) (settings, error) {
			s.Time = "23:00"
			return s, boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = store.Get(ctx, "settings")
		assert.ErrorIs(t, err, docstore.ErrNotFound)
	})

	t.Run("concurrent updates are serialized", func(t *testing.T) {
		doc := docstore.NewDocument(docstore.NewMemoryStore(), "counter", testutil.DiscardLogger(), func() []int { return []int{} })

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := doc.Update(ctx, func(cur []int) ([]int, error) {
					return append(cur, i), nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Len(t, doc.Load(ctx), 50)
	})
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	body := []byte(`{"enabled":true}`)
	require.NoError(t, store.Put(ctx, "k", body))
	body[0] = 'x'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"enabled":true}`, string(got))
}

type readOnlyStore struct{ docstore.Store }

func (readOnlyStore) Put(context.Context, string, []byte) error {
	return errs.New("read-only")
}

func TestDocumentSaveMarksStoreFailure(t *testing.T) {
	doc := newDoc(readOnlyStore{docstore.NewMemoryStore()})

	err := doc.Save(context.Background(), defaultSettings())
	require.Error(t, err)
	assert.True(t, errs.Is(err, infra.ErrStoreFailure))
	assert.False(t, errs.Is(err, infra.ErrCorruptData))
}

type requestKey struct{}

// ctxHandler records the request id carried by each record's context.
type ctxHandler struct {
	mu   sync.Mutex
	seen []any
}

func (h *ctxHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *ctxHandler) Handle(ctx context.Context, _ slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, ctx.Value(requestKey{}))
	return nil
}

func (h *ctxHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *ctxHandler) WithGroup(string) slog.Handler      { return h }

type brokenStore struct{ docstore.Store }

func (brokenStore) Get(context.Context, string) ([]byte, error) {
	return nil, errs.New("connection reset")
}

func TestDocumentLoadLogsWithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), requestKey{}, "req-42")

	malformed := docstore.NewMemoryStore()
	require.NoError(t, malformed.Put(ctx, "settings", []byte("{not json")))

	for name, store := range map[string]docstore.Store{
		"read failure": brokenStore{docstore.NewMemoryStore()},
		"malformed":    malformed,
	} {
		t.Run(name, func(t *testing.T) {
			h := &ctxHandler{}
			doc := docstore.NewDocument(store, "settings", slog.New(h), defaultSettings)

			assert.Equal(t, defaultSettings(), doc.Load(ctx))
			assert.Equal(t, []any{"req-42"}, h.seen)
		})
	}
}

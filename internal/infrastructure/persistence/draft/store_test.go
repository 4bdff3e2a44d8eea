package draft

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
)

func TestStore_SaveLoad(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoDraft)

	doc := page.DefaultDocument()
	doc.SiteTitle = "Draft title"
	require.NoError(t, store.Save(doc))

	back, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Draft title", back.SiteTitle)
	assert.Len(t, back.Sections, len(doc.Sections))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestAutosaver_Coalesces(t *testing.T) {
	store := NewStore(t.TempDir())
	a := NewAutosaver(store, 20*time.Millisecond, logging.NewDiscardLogger())

	for i := 0; i < 5; i++ {
		doc := page.DefaultDocument()
		doc.SiteTitle = string(rune('a' + i))
		a.Schedule(doc)
	}
	require.Eventually(t, func() bool { return a.Saves() == 1 }, time.Second, 5*time.Millisecond)

	back, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "e", back.SiteTitle)
}

func TestAutosaver_RunFlushesOnCancel(t *testing.T) {
	store := NewStore(t.TempDir())
	a := NewAutosaver(store, time.Hour, logging.NewDiscardLogger())
	a.Schedule(page.DefaultDocument())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, a.Run(ctx))
	assert.Equal(t, 1, a.Saves())
	assert.FileExists(t, store.Path())
}

func TestAutosaver_ConcurrentFlushKeepsNewest(t *testing.T) {
	store := NewStore(t.TempDir())
	a := NewAutosaver(store, time.Millisecond, logging.NewDiscardLogger())

	const n = 50
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				a.Flush()
			}
		}()
	}
	for i := 0; i < n; i++ {
		doc := page.DefaultDocument()
		doc.SiteTitle = strconv.Itoa(i)
		a.Schedule(doc)
	}
	wg.Wait()
	a.Flush()

	back, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(n-1), back.SiteTitle)
}

package audit

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/hbnb/internal/testutil"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Log(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcher_DeliversBeforeClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: "place_created", Entity: "place"})
	}
	d.Close()
	d.Close()

	assert.Len(t, sink.events, 10)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "x"})
		d.Close()
	})
}

func TestLogger_PersistsAndListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	l := New(testutil.NewDB(t))

	require.NoError(t, l.Log(ctx, Event{
		ActorID: "u-1", Action: "amenity_created", Entity: "amenity", EntityID: "a-1",
	}))
	require.NoError(t, l.Log(ctx, Event{
		ActorID:  "u-1",
		Action:   "place_updated",
		Entity:   "place",
		EntityID: "p-1",
		Metadata: map[string]any{"fields": []string{"title"}},
	}))

	logs, err := l.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "place_updated", logs[0].Action)
	assert.Equal(t, "amenity_created", logs[1].Action)
	assert.Empty(t, logs[1].Metadata)

	var meta map[string][]string
	require.NoError(t, json.Unmarshal([]byte(logs[0].Metadata), &meta))
	assert.Equal(t, []string{"title"}, meta["fields"])

	logs, err = l.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

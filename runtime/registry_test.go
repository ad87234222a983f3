package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"chat-hub/domain/event"
)

type stubSink struct{ name string }

func (s stubSink) Consume(ctx context.Context, e event.Event) error {
	return nil
}

func TestRegistry_OnlineEdges(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given nobody connected
	req.False(registry.IsOnline("alice"))

	// When the first session registers, the offline-to-online edge fires
	first := registry.Register("alice", "sess-1", stubSink{name: "a1"})
	req.True(first)
	req.True(registry.IsOnline("alice"))

	// A second device is silent
	first = registry.Register("alice", "sess-2", stubSink{name: "a2"})
	req.False(first)
	req.Len(registry.SessionsOf("alice"), 2)

	// Dropping one of two sessions does not mark the user offline
	last := registry.Unregister("alice", "sess-1")
	req.False(last)
	req.True(registry.IsOnline("alice"))

	// Dropping the final session is the online-to-offline edge
	last = registry.Unregister("alice", "sess-2")
	req.True(last)
	req.False(registry.IsOnline("alice"))
	req.Empty(registry.SessionsOf("alice"))
}

func TestRegistry_UnregisterUnknownSession(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.False(registry.Unregister("ghost", "sess-1"))

	registry.Register("alice", "sess-1", stubSink{})
	req.False(registry.Unregister("alice", "other-session"))
	req.True(registry.IsOnline("alice"))
}

func TestRegistry_SinksFor(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	registry.Register("alice", "a-1", stubSink{name: "a1"})
	registry.Register("alice", "a-2", stubSink{name: "a2"})
	registry.Register("bob", "b-1", stubSink{name: "b1"})

	// Every session of every requested user
	sinks := registry.SinksFor([]string{"alice", "bob"}, "")
	req.Len(sinks, 3)

	// Exclusion removes all of the excluded user's sessions
	sinks = registry.SinksFor([]string{"alice", "bob"}, "alice")
	req.Len(sinks, 1)
	req.Contains(sinks, stubSink{name: "b1"})

	// Offline users contribute nothing
	sinks = registry.SinksFor([]string{"carol"}, "")
	req.Empty(sinks)
}

func TestRegistry_AllSinks(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.Empty(registry.AllSinks())

	registry.Register("alice", "a-1", stubSink{name: "a1"})
	registry.Register("bob", "b-1", stubSink{name: "b1"})

	req.Len(registry.AllSinks(), 2)
}

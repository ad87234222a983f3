//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"chat-hub/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself.
// Can be silly, focused.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// initialization or lifecycle events, avoiding the need for manual
// naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one delivery target: a live connection's outbound buffer
// or a permanent in-process consumer (metrics, logs).
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// IRegistry is the process-wide map from user identity to live sessions.
// It is the source of truth for "is user online" and never touches the
// store: its state is rebuilt from nothing on restart.
type IRegistry interface {
	Register(userID, sessionID string, sink EventSink) (first bool)
	Unregister(userID, sessionID string) (last bool)
	IsOnline(userID string) bool
	SessionsOf(userID string) []string
	SinksFor(userIDs []string, excludeUserID string) []EventSink
	AllSinks() []EventSink
}

// IDispatcher hands a produced event to the fan-out pipeline.
type IDispatcher interface {
	Dispatch(e event.Event)
}

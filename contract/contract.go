//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"campus-chat/domain"
	"campus-chat/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
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

// EventSink is one live client connection from the fan-out's point of view.
// Consume must never block the gateway loop; implementations drop when full.
type EventSink interface {
	Consume(e event.Event) error
	Close()
}

type IPresence interface {
	SetOnline(userID string, sink EventSink)
	RemoveBySink(sink EventSink) (string, bool)
	ListOnlineIDs() []string
}

type ITyping interface {
	StartTyping(chatID domain.ChatID, userID string)
	StopTyping(chatID domain.ChatID, userID string)
	TypingUsers(chatID domain.ChatID) []string
	ConversationsFor(userID string) []domain.ChatID
}

type IRoster interface {
	Join(chatID domain.ChatID, sink EventSink)
	Leave(sink EventSink)
	Broadcast(chatID domain.ChatID, e event.Event, exclude EventSink)
}

package watcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ChangeStreamer is satisfied by repository.TaskRepo.
type ChangeStreamer interface {
	Watch(ctx context.Context) (*mongo.ChangeStream, error)
}

// Watcher consumes the task collection's change stream and logs every event.
// It runs for the life of the process, independent of the request path, and
// stops when its context is cancelled.
type Watcher struct {
	tasks ChangeStreamer
}

func New(tasks ChangeStreamer) *Watcher {
	return &Watcher{tasks: tasks}
}

type changeEvent struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID bson.ObjectID `bson:"_id"`
	} `bson:"documentKey"`
}

func (w *Watcher) Run(ctx context.Context) error {
	stream, err := w.tasks.Watch(ctx)
	if err != nil {
		return fmt.Errorf("open change stream: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = stream.Close(closeCtx)
	}()

	for stream.Next(ctx) {
		var event changeEvent
		if err := stream.Decode(&event); err != nil {
			log.Printf("⚠️  Failed to decode change event: %v", err)
			continue
		}
		log.Printf("🔔 Task collection changed: %s", describe(event))
	}

	if err := stream.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("change stream: %w", err)
	}
	return nil
}

func describe(event changeEvent) string {
	op := event.OperationType
	if op == "" {
		op = "unknown"
	}
	if event.DocumentKey.ID.IsZero() {
		return op
	}
	return fmt.Sprintf("%s _id=%s", op, event.DocumentKey.ID.Hex())
}

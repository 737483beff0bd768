package simulation

import (
	"context"
	"testing"

	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/store"
)

func TestHandlerRegistry_RegisterAndLookup(t *testing.T) {
	r := NewHandlerRegistry()
	called := false
	r.Register(models.EventGame, HandlerFunc(func(ctx context.Context, txn *store.Txn, e *models.Event) (models.ExecutionRecord, error) {
		called = true
		return models.ExecutionRecord{Success: true}, nil
	}))

	h, ok := r.lookup(models.EventGame)
	if !ok {
		t.Fatalf("lookup(EventGame) ok = false, want true")
	}
	if _, err := h.Handle(context.Background(), nil, &models.Event{}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !called {
		t.Fatalf("registered handler was not invoked")
	}

	if _, ok := r.lookup(models.EventDeadline); ok {
		t.Fatalf("lookup(EventDeadline) ok = true, want false for unregistered type")
	}
}

func TestHandlerRegistry_RegisterReplacesExisting(t *testing.T) {
	r := NewHandlerRegistry()
	first := 0
	second := 0
	r.Register(models.EventWindow, HandlerFunc(func(ctx context.Context, txn *store.Txn, e *models.Event) (models.ExecutionRecord, error) {
		first++
		return models.ExecutionRecord{}, nil
	}))
	r.Register(models.EventWindow, HandlerFunc(func(ctx context.Context, txn *store.Txn, e *models.Event) (models.ExecutionRecord, error) {
		second++
		return models.ExecutionRecord{}, nil
	}))

	h, _ := r.lookup(models.EventWindow)
	h.Handle(context.Background(), nil, &models.Event{})

	if first != 0 || second != 1 {
		t.Fatalf("first=%d second=%d, want first=0 second=1 (second registration wins)", first, second)
	}
}

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"voicetask/internal/capture"
	"voicetask/internal/capture/usecase"
	"voicetask/pkg/datemath"
	"voicetask/pkg/textrules"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func newUseCase(t *testing.T) capture.UseCase {
	t.Helper()

	resolver, err := datemath.NewResolver("UTC")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	parser := textrules.New(resolver)

	return usecase.New(&mockLogger{}, parser, resolver, usecase.Config{})
}

// Monday, May 6, 2024.
var referenceNow = time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)

func TestParseRejectsEmptyText(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Parse(context.Background(), capture.ParseInput{Text: "   "})
	if !errors.Is(err, capture.ErrEmptyInput) {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}

func TestParseReturnsActions(t *testing.T) {
	uc := newUseCase(t)

	out, err := uc.Parse(context.Background(), capture.ParseInput{
		Text:         "recordar comprar leche mañana a las 3 urgente",
		ReferenceNow: referenceNow,
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(out.Actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(out.Actions))
	}
	if out.Actions[0].Title != "Comprar leche" {
		t.Errorf("title = %q, want %q", out.Actions[0].Title, "Comprar leche")
	}
}

func TestCaptureNoisyInput(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Capture(context.Background(), capture.CaptureInput{Text: "ok. si"})
	if !errors.Is(err, capture.ErrNoActionsParsed) {
		t.Errorf("err = %v, want ErrNoActionsParsed", err)
	}
}

func TestCaptureCreatesRecords(t *testing.T) {
	uc := newUseCase(t)

	out, err := uc.Capture(context.Background(), capture.CaptureInput{
		Text:         "reunión con Juan el lunes importante. Y también comprar pan",
		ReferenceNow: referenceNow,
	})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if out.ActionCount != 2 {
		t.Fatalf("got %d records, want 2", out.ActionCount)
	}

	first, second := out.Records[0], out.Records[1]
	if first.ID == "" || second.ID == "" || first.ID == second.ID {
		t.Errorf("record IDs must be unique and non-empty: %q %q", first.ID, second.ID)
	}
	if first.Action.Category != textrules.CategoryEvent {
		t.Errorf("first category = %s, want event", first.Action.Category)
	}
	// No calendar configured, so no export links.
	if first.CalendarLink != "" {
		t.Errorf("calendar link = %q, want empty", first.CalendarLink)
	}
	if first.SourceText == "" {
		t.Error("source text should be preserved on the record")
	}
}

func TestRecentNewestFirst(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	if _, err := uc.Capture(ctx, capture.CaptureInput{Text: "comprar pan", ReferenceNow: referenceNow}); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if _, err := uc.Capture(ctx, capture.CaptureInput{Text: "llamar al banco", ReferenceNow: referenceNow}); err != nil {
		t.Fatalf("Capture: %v", err)
	}

	out, err := uc.Recent(ctx)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(out.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(out.Records))
	}
	if out.Records[0].Action.Title != "Llamar al banco" {
		t.Errorf("newest record first, got %q", out.Records[0].Action.Title)
	}
	if out.Records[1].Action.Title != "Comprar pan" {
		t.Errorf("oldest record last, got %q", out.Records[1].Action.Title)
	}
}

package datemath_test

import (
	"testing"
	"time"

	"voicetask/pkg/datemath"
)

func TestNewResolver(t *testing.T) {
	_, err := datemath.NewResolver("Europe/Madrid")
	if err != nil {
		t.Fatalf("unexpected error creating valid resolver: %v", err)
	}

	_, err = datemath.NewResolver("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestExtractDates(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	// Monday, May 6, 2024 at 10:15.
	ref := time.Date(2024, 5, 6, 10, 15, 0, 0, time.UTC)
	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		sentence string
		want     time.Time
	}{
		{"today english", "finish the report today", day},
		{"today spanish", "terminar el informe hoy", day},
		{"tomorrow english", "buy groceries tomorrow", day.AddDate(0, 0, 1)},
		{"tomorrow spanish", "comprar leche mañana", day.AddDate(0, 0, 1)},
		{"day after tomorrow", "dentist day after tomorrow", day.AddDate(0, 0, 2)},
		{"pasado manana beats manana", "ir al banco pasado mañana", day.AddDate(0, 0, 2)},
		{"same weekday rolls a full week", "reunión el lunes", day.AddDate(0, 0, 7)},
		{"weekday later this week", "llamar el viernes", day.AddDate(0, 0, 4)},
		{"weekday english", "call juan on wednesday", day.AddDate(0, 0, 2)},
		{"next week", "revisar el contrato la próxima semana", day.AddDate(0, 0, 7)},
		{"next month", "renovar el seguro el próximo mes", day.AddDate(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Extract(tt.sentence, ref)
			if got.Date == nil {
				t.Fatalf("Extract(%q) date is nil, want %v", tt.sentence, tt.want)
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("Extract(%q) date = %v, want %v", tt.sentence, *got.Date, tt.want)
			}
		})
	}
}

func TestExtractNoCue(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	ref := time.Date(2024, 5, 6, 10, 15, 0, 0, time.UTC)

	got := resolver.Extract("comprar pan", ref)
	if got.Date != nil {
		t.Errorf("expected nil date, got %v", *got.Date)
	}
	if got.Time != nil {
		t.Errorf("expected nil time, got %v", *got.Time)
	}
	if len(got.Matched) != 0 {
		t.Errorf("expected no matched phrases, got %v", got.Matched)
	}
}

func TestExtractTimes(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	ref := time.Date(2024, 5, 6, 10, 15, 0, 0, time.UTC)
	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		sentence string
		want     datemath.TimeOfDay
	}{
		// Short hours 1-7 mean the afternoon by convention.
		{"a las 3 is 15:00", "llamar al médico a las 3", datemath.TimeOfDay{Hour: 15}},
		{"a las 14 stays as-is", "reunión a las 14", datemath.TimeOfDay{Hour: 14}},
		{"at 9 stays as-is", "standup at 9", datemath.TimeOfDay{Hour: 9}},
		{"at 5 is 17:00", "call the bank at 5", datemath.TimeOfDay{Hour: 17}},
		{"phrase hour with minutes", "tren a las 6:45", datemath.TimeOfDay{Hour: 18, Minute: 45}},
		{"bare clock time", "cita 19:30", datemath.TimeOfDay{Hour: 19, Minute: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Extract(tt.sentence, ref)
			if got.Time == nil {
				t.Fatalf("Extract(%q) time is nil, want %v", tt.sentence, tt.want)
			}
			if *got.Time != tt.want {
				t.Errorf("Extract(%q) time = %v, want %v", tt.sentence, *got.Time, tt.want)
			}
			if got.Date == nil || !got.Date.Equal(day) {
				t.Errorf("Extract(%q) should default the date to the reference day", tt.sentence)
			}
		})
	}
}

func TestExtractTimeWithExplicitDate(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	ref := time.Date(2024, 5, 6, 10, 15, 0, 0, time.UTC)
	wantDate := time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)

	got := resolver.Extract("recordar comprar leche mañana a las 3", ref)
	if got.Date == nil || !got.Date.Equal(wantDate) {
		t.Fatalf("date = %v, want %v", got.Date, wantDate)
	}
	if got.Time == nil || (*got.Time != datemath.TimeOfDay{Hour: 15}) {
		t.Fatalf("time = %v, want 15:00", got.Time)
	}
}

func TestExtractOutOfRangeTime(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	ref := time.Date(2024, 5, 6, 10, 15, 0, 0, time.UTC)

	got := resolver.Extract("código de error 99:99 en el servidor", ref)
	if got.Time != nil {
		t.Errorf("expected nil time for out-of-range clock, got %v", *got.Time)
	}
}

func TestExtractMatchedPhrases(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	ref := time.Date(2024, 5, 6, 10, 15, 0, 0, time.UTC)

	got := resolver.Extract("Reunión con Juan el lunes a las 3", ref)
	if len(got.Matched) != 2 {
		t.Fatalf("matched = %v, want 2 phrases", got.Matched)
	}
	if got.Matched[0] != "el lunes" {
		t.Errorf("matched[0] = %q, want %q", got.Matched[0], "el lunes")
	}
	if got.Matched[1] != "a las 3" {
		t.Errorf("matched[1] = %q, want %q", got.Matched[1], "a las 3")
	}
}

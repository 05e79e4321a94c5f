package textrules

import "testing"

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		cues     []string
		want     string
	}{
		{
			name:     "capitalizes plain sentence",
			sentence: "comprar pan",
			want:     "Comprar pan",
		},
		{
			name:     "strips spanish filler",
			sentence: "recordar comprar leche",
			want:     "Comprar leche",
		},
		{
			name:     "strips english filler",
			sentence: "remind me to pay rent",
			want:     "Pay rent",
		},
		{
			name:     "longer filler wins over its prefix",
			sentence: "i need to call the bank",
			want:     "Call the bank",
		},
		{
			name:     "only one filler stripped",
			sentence: "recordar recordar comprar pan",
			want:     "Recordar comprar pan",
		},
		{
			name:     "cue phrases removed case-insensitively",
			sentence: "Reunión con Juan el lunes importante",
			cues:     []string{"el lunes", "importante"},
			want:     "Reunión con Juan",
		},
		{
			name:     "cues and filler together",
			sentence: "recordar comprar leche mañana a las 3 urgente",
			cues:     []string{"mañana", "a las 3", "urgente"},
			want:     "Comprar leche",
		},
		{
			name:     "preserves inner casing",
			sentence: "añadir revisar el PR de María",
			want:     "Revisar el PR de María",
		},
		{
			name:     "all cues leaves empty title",
			sentence: "mañana a las 3",
			cues:     []string{"mañana", "a las 3"},
			want:     "",
		},
		{
			// İ U+0130 shrinks when lowercased; the cue after it must still
			// be removed on its real byte range.
			name:     "cue after case-contracting rune",
			sentence: "İr al mercado mañana",
			cues:     []string{"mañana"},
			want:     "İr al mercado",
		},
		{
			// Ⱥ U+023A grows when lowercased.
			name:     "cue after case-expanding rune",
			sentence: "Ⱥ comprar leche urgente",
			cues:     []string{"urgente"},
			want:     "Ⱥ comprar leche",
		},
		{
			name:     "filler with case-contracting first rune",
			sentence: "İ need to call the bank",
			want:     "Call the bank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanTitle(tt.sentence, tt.cues); got != tt.want {
				t.Errorf("cleanTitle(%q, %v) = %q, want %q", tt.sentence, tt.cues, got, tt.want)
			}
		})
	}
}

func TestCleanTitleIdempotent(t *testing.T) {
	inputs := []struct {
		sentence string
		cues     []string
	}{
		{"recordar comprar leche mañana a las 3 urgente", []string{"mañana", "a las 3", "urgente"}},
		{"remind me to pay rent", nil},
		{"comprar pan", nil},
		{"Reunión con Juan el lunes importante", []string{"el lunes", "importante"}},
	}

	for _, in := range inputs {
		once := cleanTitle(in.sentence, in.cues)
		twice := cleanTitle(once, in.cues)
		if once != twice {
			t.Errorf("cleanTitle not idempotent for %q: %q -> %q", in.sentence, once, twice)
		}
	}
}

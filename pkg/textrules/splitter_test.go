package textrules

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "lone period",
			text: ".",
			want: []string{},
		},
		{
			name: "single sentence",
			text: "comprar leche",
			want: []string{"comprar leche"},
		},
		{
			name: "period boundary",
			text: "comprar leche. llamar a mamá",
			want: []string{"comprar leche", "llamar a mamá"},
		},
		{
			name: "newline boundary",
			text: "first thing\nsecond thing",
			want: []string{"first thing", "second thing"},
		},
		{
			name: "connective y también case-insensitive",
			text: "reunión con Juan. Y también comprar pan",
			want: []string{"reunión con Juan", "comprar pan"},
		},
		{
			name: "connective además",
			text: "terminar informe además revisar correo",
			want: []string{"terminar informe", "revisar correo"},
		},
		{
			name: "connective luego",
			text: "ir al banco luego pasar por la farmacia",
			want: []string{"ir al banco", "pasar por la farmacia"},
		},
		{
			name: "short fragments dropped",
			text: "ok. comprar leche. si",
			want: []string{"comprar leche"},
		},
		{
			name: "original order preserved",
			text: "uno dos. tres cuatro. cinco seis",
			want: []string{"uno dos", "tres cuatro", "cinco seis"},
		},
		{
			// Ⱥ U+023A grows from 2 to 3 bytes when lowercased.
			name: "case-expanding rune before boundary",
			text: "abcȺ. comprar pan",
			want: []string{"abcȺ", "comprar pan"},
		},
		{
			// İ U+0130 shrinks from 2 bytes to a 1-byte i when lowercased.
			name: "case-contracting rune before boundary",
			text: "aaaİ. comprar pan",
			want: []string{"aaaİ", "comprar pan"},
		},
		{
			name: "connective after length-changing rune",
			text: "ver İstanbul y también comprar pan",
			want: []string{"ver İstanbul", "comprar pan"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitSentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

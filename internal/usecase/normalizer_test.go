package usecase

import "testing"

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips accents",
			input: "Café con Leche",
			want:  "cafe con leche",
		},
		{
			name:  "handles enye and dieresis",
			input: "Árbol cigüeña",
			want:  "arbol ciguena",
		},
		{
			name:  "replaces punctuation with spaces",
			input: "Chocolatina JET-Leche, 12x12g!",
			want:  "chocolatina jet leche 12x12g",
		},
		{
			name:  "collapses whitespace",
			input: "  cafe   sello \t rojo  ",
			want:  "cafe sello rojo",
		},
		{
			name:  "keeps digits",
			input: "D1 Avena 500",
			want:  "d1 avena 500",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "¡¿?!...",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Café con Leche",
		"Árbol cigüeña",
		"NUTRESA  Chocolisto® 300g",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestStripAccents(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"Éxito", "exito"},
		{"Olímpica", "olimpica"},
		{"SUPER MERCADO S.A.", "super mercado s.a."}, // punctuation preserved
		{"cigüeña", "ciguena"},
	}

	for _, tc := range testCases {
		got := StripAccents(tc.input)
		if got != tc.want {
			t.Errorf("StripAccents(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

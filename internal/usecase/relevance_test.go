package usecase

import "testing"

func TestRelevanceScorer_Score(t *testing.T) {
	scorer := NewRelevanceScorer(false)

	t.Run("exact match scores 100", func(t *testing.T) {
		got := scorer.Score("cafe sello rojo", "Café Sello Rojo")
		if got != 100 {
			t.Errorf("Score = %v, want 100", got)
		}
	})

	t.Run("full query coverage beats partial", func(t *testing.T) {
		full := scorer.Score("cafe sello rojo", "Café Sello Rojo 500g Tradicional")
		partial := scorer.Score("cafe sello rojo", "Café Matiz 500g")
		if full <= partial {
			t.Errorf("full coverage %v should outrank partial %v", full, partial)
		}
	})

	t.Run("unrelated product scores low", func(t *testing.T) {
		related := scorer.Score("chocolate", "Chocolatina Jet Leche")
		unrelated := scorer.Score("chocolate", "Detergente Ariel 2kg")
		if unrelated != 0 {
			t.Errorf("unrelated Score = %v, want 0", unrelated)
		}
		if related <= unrelated {
			t.Errorf("related %v should outrank unrelated %v", related, unrelated)
		}
	})

	t.Run("accents and case do not matter", func(t *testing.T) {
		a := scorer.Score("café", "CAFE AGUILA ROJA")
		b := scorer.Score("cafe", "Café Aguila Roja")
		if a != b {
			t.Errorf("accented %v != plain %v", a, b)
		}
	})

	t.Run("numbers are ignored as tokens", func(t *testing.T) {
		a := scorer.Score("arroz diana", "Arroz Diana 500")
		b := scorer.Score("arroz diana", "Arroz Diana")
		if a != b {
			t.Errorf("bare number changed the score: %v != %v", a, b)
		}
	})

	t.Run("empty inputs score zero", func(t *testing.T) {
		if got := scorer.Score("", "Arroz Diana"); got != 0 {
			t.Errorf("Score with empty query = %v, want 0", got)
		}
		if got := scorer.Score("arroz", ""); got != 0 {
			t.Errorf("Score with empty product = %v, want 0", got)
		}
	})

	t.Run("score stays within bounds", func(t *testing.T) {
		inputs := [][2]string{
			{"cafe", "cafe"},
			{"cafe sello rojo 500g", "Café Sello Rojo 500g"},
			{"nutresa chocolisto", "Chocolisto Nutresa Vaso 300g"},
		}
		for _, pair := range inputs {
			got := scorer.Score(pair[0], pair[1])
			if got < 0 || got > 100 {
				t.Errorf("Score(%q, %q) = %v, out of [0,100]", pair[0], pair[1], got)
			}
		}
	})
}

func TestRelevanceScorer_Fuzzy(t *testing.T) {
	strict := NewRelevanceScorer(false)
	fuzzy := NewRelevanceScorer(true)

	t.Run("tolerates single-letter typos", func(t *testing.T) {
		strictScore := strict.Score("chocolisto", "Chocolisto Vaso 300g")
		typoStrict := strict.Score("chocolsito", "Chocolisto Vaso 300g")
		typoFuzzy := fuzzy.Score("chocolisto", "Chocolizto Vaso 300g")

		if typoFuzzy <= typoStrict {
			t.Errorf("fuzzy typo score %v should beat strict %v", typoFuzzy, typoStrict)
		}
		if typoFuzzy >= strictScore {
			t.Errorf("fuzzy hit %v should stay below exact %v", typoFuzzy, strictScore)
		}
	})

	t.Run("tolerates plural drift", func(t *testing.T) {
		got := fuzzy.Score("galletas ducales", "Galleta Ducales Taco")
		if got == 0 {
			t.Error("plural drift scored 0, want a fuzzy match")
		}
	})

	t.Run("short tokens never fuzzy match", func(t *testing.T) {
		strictScore := strict.Score("pan", "Paz del Rio")
		fuzzyScore := fuzzy.Score("pan", "Paz del Rio")
		if fuzzyScore != strictScore {
			t.Errorf("short token fuzzy %v != strict %v", fuzzyScore, strictScore)
		}
	})
}

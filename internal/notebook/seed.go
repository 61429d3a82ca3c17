package notebook

import "time"

// Seed returns the starter notebook shown to a first-time user: one
// constitutional-law card so every screen has real content to render.
func Seed() []Notebook {
	return []Notebook{
		{
			ID:   "seed-nb-1",
			Name: "Direito Constitucional",
			Flashcards: []Flashcard{
				{
					ID:         "seed-1",
					NotebookID: "seed-nb-1",
					Question:   "<b>Quais são os fundamentos da República Federativa do Brasil?</b>",
					Answer:     "I - a soberania; II - a cidadania; III - a dignidade da pessoa humana; IV - os valores sociais do trabalho e da livre iniciativa; V - o pluralismo político.",
					CreatedAt:  time.Now().UTC(),
					Mastery:    MasteryNew,
				},
			},
		},
	}
}

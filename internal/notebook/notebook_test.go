package notebook

import (
	"testing"
	"time"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold markup stripped", "<b>Quais são os fundamentos?</b>", "Quais são os fundamentos?"},
		{"entities decoded", "a &amp; b", "a & b"},
		{"plain passes through", "texto simples", "texto simples"},
		{"nested tags", "<div><i>um</i> <u>dois</u></div>", "um dois"},
		{"surrounding space trimmed", "  <p>x</p>  ", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSeed(t *testing.T) {
	nbs := Seed()
	if len(nbs) != 1 {
		t.Fatalf("got %d notebooks, want 1", len(nbs))
	}
	nb := nbs[0]
	if nb.Name != "Direito Constitucional" {
		t.Errorf("name = %q", nb.Name)
	}
	if len(nb.Flashcards) != 1 {
		t.Fatalf("got %d flashcards, want 1", len(nb.Flashcards))
	}
	card := nb.Flashcards[0]
	if card.NotebookID != nb.ID {
		t.Errorf("card notebook id = %q, want %q", card.NotebookID, nb.ID)
	}
	if card.Mastery != MasteryNew {
		t.Errorf("mastery = %q, want %q", card.Mastery, MasteryNew)
	}
	if card.CreatedAt.Location() != time.UTC {
		t.Errorf("created at location = %v, want UTC", card.CreatedAt.Location())
	}
}

func TestNewFlashcard(t *testing.T) {
	card := NewFlashcard("nb-1", "q", "a")
	if card.ID == "" {
		t.Error("no id assigned")
	}
	if card.Mastery != MasteryNew {
		t.Errorf("mastery = %q, want new", card.Mastery)
	}
	if card.CreatedAt.Location() != time.UTC {
		t.Errorf("created at location = %v, want UTC", card.CreatedAt.Location())
	}
}

func TestCardAndDocLookup(t *testing.T) {
	nb := NewNotebook("Test")
	nb.Flashcards = append(nb.Flashcards, NewFlashcard(nb.ID, "q", "a"))
	nb.Documents = append(nb.Documents, Document{ID: "d1", Name: "doc", Kind: KindPDF})

	if _, ok := nb.Card(nb.Flashcards[0].ID); !ok {
		t.Error("Card lookup failed")
	}
	if _, ok := nb.Card("missing"); ok {
		t.Error("Card found missing id")
	}
	if doc, ok := nb.Doc("d1"); !ok || doc.Kind != KindPDF {
		t.Error("Doc lookup failed")
	}
}

func TestAddFlashcard(t *testing.T) {
	nb := NewNotebook("Português")
	card := nb.AddFlashcard("O que é crase?", "Fusão da preposição 'a' com o artigo 'a'.")

	if len(nb.Flashcards) != 1 {
		t.Fatalf("got %d flashcards, want 1", len(nb.Flashcards))
	}
	if card.NotebookID != nb.ID {
		t.Errorf("card notebook id = %q, want %q", card.NotebookID, nb.ID)
	}
	if got, ok := nb.Card(card.ID); !ok || got.Question != "O que é crase?" {
		t.Errorf("added card not found via lookup")
	}
}

func TestFind(t *testing.T) {
	nbs := []Notebook{
		{ID: "nb-1", Name: "Direito Constitucional"},
		{ID: "nb-2", Name: "Português"},
	}

	if nb, ok := Find(nbs, "nb-2"); !ok || nb.Name != "Português" {
		t.Errorf("find by id failed")
	}
	if nb, ok := Find(nbs, "direito constitucional"); !ok || nb.ID != "nb-1" {
		t.Errorf("find by case-insensitive name failed")
	}
	if _, ok := Find(nbs, "nb-3"); ok {
		t.Errorf("expected no match for unknown key")
	}
}

package match

import (
	"strings"
	"testing"

	"github.com/ppiankov/toneguard/internal/extract"
	"github.com/ppiankov/toneguard/internal/lexicon"
	"github.com/ppiankov/toneguard/internal/model"
)

func TestMatcher_Match(t *testing.T) {
	m := New(lexicon.Default())

	tests := []struct {
		desc        string
		token       string
		text        string
		matched     bool
		word        string
		category    model.Category
		subcategory string
	}{
		{
			desc:        "Phrase wins for stoplisted constituent",
			token:       "all",
			text:        "all immigrants are terrorists",
			matched:     true,
			word:        "all immigrants",
			category:    model.CategoryHate,
			subcategory: "ethnicity",
		},
		{
			desc:        "Second constituent reports the whole phrase",
			token:       "immigrants",
			text:        "all immigrants are terrorists",
			matched:     true,
			word:        "all immigrants",
			category:    model.CategoryHate,
			subcategory: "ethnicity",
		},
		{
			desc:    "Stoplisted token without phrase",
			token:   "are",
			text:    "all immigrants are terrorists",
			matched: false,
		},
		{
			desc:    "Plural is not the lexicon word",
			token:   "terrorists",
			text:    "all immigrants are terrorists",
			matched: false,
		},
		{
			desc:        "Single word in moderate",
			token:       "stupid",
			text:        "you are stupid",
			matched:     true,
			word:        "stupid",
			category:    model.CategoryModerate,
			subcategory: "offensive",
		},
		{
			desc:        "Hate scanned before safe",
			token:       "hate",
			text:        "i love everyone but i hate muslim people",
			matched:     true,
			word:        "hate",
			category:    model.CategoryHate,
			subcategory: "hate_verbs",
		},
		{
			desc:        "Safe single word",
			token:       "love",
			text:        "i love everyone but i hate muslim people",
			matched:     true,
			word:        "love",
			category:    model.CategorySafe,
			subcategory: "love",
		},
		{
			desc:        "Phrase far from the token still attributed",
			token:       "them",
			text:        "shoot them now. i said them again",
			matched:     true,
			word:        "shoot them",
			category:    model.CategoryHate,
			subcategory: "violence",
		},
		{
			desc:    "Lexicon word inside a longer token is not a constituent",
			token:   "scared",
			text:    "nobody is scared",
			matched: false,
		},
		{
			desc:    "Pure stoplist",
			token:   "the",
			text:    "i am the",
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, ok := m.Match(tt.token, 3, tt.text)
			if ok != tt.matched {
				t.Fatalf("expected matched=%v, got %v (%+v)", tt.matched, ok, got)
			}
			if !ok {
				return
			}
			if got.Word != tt.word {
				t.Errorf("expected word %q, got %q", tt.word, got.Word)
			}
			if got.Category != tt.category || got.Subcategory != tt.subcategory {
				t.Errorf("expected %s/%s, got %s/%s", tt.category, tt.subcategory, got.Category, got.Subcategory)
			}
			if got.Position != 3 {
				t.Errorf("expected position 3, got %d", got.Position)
			}
			if got.Emotion != tt.category.Emotion() {
				t.Errorf("expected emotion %s, got %s", tt.category.Emotion(), got.Emotion)
			}
		})
	}
}

func TestMatcher_FlatIndexFallback(t *testing.T) {
	m := New(lexicon.Default())

	// The text does not contain the token, so only the flat index can match
	got, ok := m.Match("stupid", 0, "")
	if !ok {
		t.Fatal("expected flat index match")
	}
	if got.Category != model.CategoryModerate || got.Weight != 0.4 {
		t.Errorf("unexpected match: %+v", got)
	}

	if _, ok := m.Match("the", 0, ""); ok {
		t.Error("stoplist must be applied before the flat index")
	}
}

func TestMatcher_PhraseOrderAcrossCategories(t *testing.T) {
	def := lexicon.Definition{Categories: []lexicon.CategoryDefinition{
		{Name: model.CategorySafe, Subcategories: []lexicon.SubcategoryDefinition{
			{Name: "inclusion", Terms: []string{"welcome them"}},
		}},
		{Name: model.CategoryModerate, Subcategories: []lexicon.SubcategoryDefinition{
			{Name: "rude", Terms: []string{"them again"}},
		}},
	}}
	lex, err := lexicon.New(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := New(lex).Match("them", 1, "welcome them again")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Word != "them again" || got.Category != model.CategoryModerate {
		t.Errorf("expected moderate 'them again' to win over safe, got %+v", got)
	}
}

func TestContext_EquivalentToMatch(t *testing.T) {
	m := New(lexicon.Default())

	texts := []string{
		"I love everyone but I hate Muslim people",
		"All immigrants are terrorists and should be deported",
		"I believe in peace, equality and respect for all people",
		"You are stupid but I still love you",
		"All Muslims should die, they are disgusting",
		"Those people are not like us, they are inferior",
		"I support equality and kindness but all immigrants should go back",
		"Go back to your country, nobody cares about whatever you say",
		"I am the",
	}

	for _, text := range texts {
		lower := strings.ToLower(text)
		ctx := m.Prepare(lower)
		for i, tok := range extract.Tokenize(text) {
			want, wantOK := m.Match(tok, i, lower)
			got, gotOK := ctx.Match(tok, i)
			if wantOK != gotOK || want != got {
				t.Errorf("%q token %d (%s): Match=%+v,%v Context=%+v,%v", text, i, tok, want, wantOK, got, gotOK)
			}
		}
	}
}

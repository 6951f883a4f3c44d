package lexicon

import "github.com/ppiankov/toneguard/internal/model"

func weight(w float64) *float64 { return &w }

// DefaultDefinition returns the built-in lexicon. Each call returns a fresh copy.
func DefaultDefinition() Definition {
	return Definition{
		Categories: []CategoryDefinition{
			{
				Name: model.CategoryHate,
				Subcategories: []SubcategoryDefinition{
					{Name: "religion", Weight: weight(0.8), Terms: []string{
						"muslim terrorist", "hindu terrorist", "christian fanatic", "jewish conspiracy",
						"all muslims are", "all hindus are", "all christians are", "all jews are",
						"islam is evil", "hinduism is evil", "christianity is evil",
						"religious extremist", "infidel", "kafir", "heathen",
					}},
					{Name: "race", Weight: weight(0.8), Terms: []string{
						"black people are", "white people are", "asian people are",
						"all blacks", "all whites", "all asians",
						"inferior race", "superior race", "racial purity",
						"mongrel", "savage", "primitive people",
					}},
					{Name: "ethnicity", Weight: weight(0.75), Terms: []string{
						"all immigrants", "all mexicans", "all indians", "all pakistanis",
						"all chinese", "all arabs", "foreigners are",
						"go back to your country", "illegal aliens",
						"border jumpers", "outsiders",
					}},
					{Name: "gender", Weight: weight(0.7), Terms: []string{
						"all women are", "all men are", "females are",
						"women belong in", "men are superior", "feminist trash",
						"masculinity is toxic", "weak women", "stupid men",
					}},
					{Name: "lgbtq", Weight: weight(0.7), Terms: []string{
						"gay people are", "trans people are", "homosexual agenda",
						"unnatural lifestyle", "mentally ill lgbt", "perverts",
						"abomination", "sin against nature",
					}},
					{Name: "violence", Weight: weight(1.0), Terms: []string{
						"should die", "must die", "deserve death", "should be killed",
						"need to be eliminated", "should burn", "deserve to suffer",
						"shoot them", "hang them", "exterminate", "genocide",
						"mass killing", "cleanse", "purge", "destroy them all",
					}},
					{Name: "dehumanizing", Weight: weight(0.9), Terms: []string{
						"subhuman", "animals", "vermin", "parasites", "plague",
						"disease", "cancer", "filth", "scum", "trash", "garbage",
						"cockroaches", "rats", "pigs", "dogs", "inferior", "not like us",
					}},
					{Name: "slurs", Weight: weight(0.85), Terms: []string{
						"terrorist", "extremist", "fanatic", "radical",
						"savage", "barbarian", "primitive", "backward",
					}},
					{Name: "hate_verbs", Weight: weight(0.6), Terms: []string{
						"hate", "despise", "detest", "loathe", "abhor",
						"disgust", "repulse", "revolt",
					}},
					{Name: "extreme_negative", Weight: weight(0.5), Terms: []string{
						"disgusting", "repulsive", "vile", "evil", "wicked",
						"worthless", "pathetic", "miserable", "deplorable",
					}},
				},
			},
			{
				Name: model.CategoryModerate,
				Subcategories: []SubcategoryDefinition{
					{Name: "offensive", Weight: weight(0.4), Terms: []string{
						"stupid", "idiot", "dumb", "moron", "fool", "ignorant",
						"crazy", "insane", "ridiculous", "absurd", "nonsense",
					}},
					{Name: "rude", Weight: weight(0.35), Terms: []string{
						"shut up", "get lost", "go away", "leave me alone",
						"mind your business", "who cares", "whatever",
					}},
					{Name: "stereotypes", Weight: weight(0.3), Terms: []string{
						"typical", "as expected", "not surprising", "obviously",
						"what do you expect from",
					}},
					{Name: "dismissive", Weight: weight(0.25), Terms: []string{
						"irrelevant", "meaningless", "pointless", "useless",
						"waste of time", "nobody cares",
					}},
					{Name: "mocking", Weight: weight(0.3), Terms: []string{
						"laugh at", "make fun of", "mock", "ridicule",
						"joke about", "amusing",
					}},
				},
			},
			{
				Name: model.CategorySafe,
				Subcategories: []SubcategoryDefinition{
					{Name: "love", Weight: weight(-0.8), Terms: []string{
						"love", "adore", "cherish", "appreciate", "value",
						"treasure", "admire", "respect", "honor",
					}},
					{Name: "positive_emotions", Weight: weight(-0.6), Terms: []string{
						"happy", "joy", "peace", "harmony", "unity",
						"compassion", "kindness", "empathy", "care",
						"understanding", "tolerance", "acceptance",
					}},
					{Name: "support", Weight: weight(-0.5), Terms: []string{
						"support", "help", "assist", "encourage", "motivate",
						"inspire", "uplift", "empower", "strengthen",
					}},
					{Name: "equality", Weight: weight(-0.7), Terms: []string{
						"equal", "equality", "fair", "fairness", "justice",
						"rights", "freedom", "liberty", "democracy",
					}},
					{Name: "inclusion", Weight: weight(-0.6), Terms: []string{
						"include", "welcome", "embrace", "accept", "integrate",
						"diverse", "diversity", "multicultural", "together",
					}},
					{Name: "positive_adjectives", Weight: weight(-0.4), Terms: []string{
						"good", "great", "excellent", "wonderful", "amazing",
						"beautiful", "lovely", "nice", "pleasant", "fantastic",
						"brilliant", "awesome", "magnificent", "superb",
					}},
				},
			},
		},
	}
}

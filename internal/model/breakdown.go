package model

// CategoryWords lists the matches of one category
type CategoryWords struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

// HateWords lists the hate matches and their distinct subcategories
type HateWords struct {
	Count         int      `json:"count"`
	Words         []string `json:"words"`
	Subcategories []string `json:"subcategories"` // First-occurrence order
}

// ShiftDetail describes a detected tone shift in the breakdown
type ShiftDetail struct {
	Detected    bool      `json:"detected"`
	Type        ShiftType `json:"type"`
	Description string    `json:"description"`
}

// Breakdown is the structured part of the explanation
type Breakdown struct {
	HateWords     HateWords     `json:"hate_words"`
	ModerateWords CategoryWords `json:"moderate_words"`
	SafeWords     CategoryWords `json:"safe_words"`
	ToneShift     *ShiftDetail  `json:"tone_shift,omitempty"`
}

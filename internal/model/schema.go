package model

import (
	"github.com/invopop/jsonschema"
)

// ReportSchema returns the JSON schema of Report, with enumerations inlined
func ReportSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&Report{})
	schema.Title = "toneguard report"
	schema.Description = "Deterministic, lexicon-based verdict for one text"
	return schema
}

func enumSchema(description string, values ...string) *jsonschema.Schema {
	enum := make([]interface{}, len(values))
	for i, v := range values {
		enum[i] = v
	}
	return &jsonschema.Schema{
		Type:        "string",
		Description: description,
		Enum:        enum,
	}
}

// JSONSchema describes the allowed categories
func (Category) JSONSchema() *jsonschema.Schema {
	return enumSchema("Lexicon category", string(CategoryHate), string(CategoryModerate), string(CategorySafe))
}

// JSONSchema describes the allowed emotions
func (Emotion) JSONSchema() *jsonschema.Schema {
	return enumSchema("Emotion label", string(EmotionHateful), string(EmotionOffensive), string(EmotionPositive), string(EmotionNeutral))
}

// JSONSchema describes the allowed shift types
func (ShiftType) JSONSchema() *jsonschema.Schema {
	return enumSchema("Tone shift direction", string(ShiftPositiveToHate), string(ShiftHateToPositive))
}

// JSONSchema describes the allowed labels
func (Label) JSONSchema() *jsonschema.Schema {
	return enumSchema("Banded classification",
		string(LabelHateSpeech), string(LabelModerateHate), string(LabelBorderline), string(LabelNotHate))
}

package gemini

import (
	"github.com/fadedpez/aetheria/pkg/entities"
	"google.golang.org/genai"
)

func stringField(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

var tarotSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"cards": {
			Type:     genai.TypeArray,
			MinItems: genai.Ptr[int64](entities.SpreadSize),
			MaxItems: genai.Ptr[int64](entities.SpreadSize),
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":      stringField("Name of the tarot card, e.g., The Fool"),
					"position":  stringField("Past, Present, or Future"),
					"meaning":   stringField("Interpretation of the card in this position"),
					"visualCue": stringField("A short visual description of the card art"),
				},
				Required: []string{"name", "position", "meaning", "visualCue"},
			},
		},
		"summary": stringField("A holistic summary of the reading connecting all three cards."),
	},
	Required: []string{"cards", "summary"},
}

var dreamSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"interpretation": stringField("Detailed interpretation of the dream"),
		"themes": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "List of key themes, e.g., Anxiety, Growth",
		},
		"psychologicalNote": stringField("A note on the psychological state derived from the dream"),
		"luckyNumbers": {
			Type:        genai.TypeArray,
			MinItems:    genai.Ptr[int64](entities.LuckyNumberCount),
			MaxItems:    genai.Ptr[int64](entities.LuckyNumberCount),
			Items:       &genai.Schema{Type: genai.TypeNumber},
			Description: "3 lucky numbers associated with this dream",
		},
	},
	Required: []string{"interpretation", "themes", "psychologicalNote", "luckyNumbers"},
}

var astralSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"guidance":  stringField("Direct answer or guidance to the user's question"),
		"technique": stringField("A specific visualization or breathing technique to try"),
		"safetyTip": stringField("Important safety or grounding advice"),
		"plane":     stringField("The specific plane of existence relevant to this advice (e.g. Etheric, Astral)"),
	},
	Required: []string{"guidance", "technique", "safetyTip", "plane"},
}

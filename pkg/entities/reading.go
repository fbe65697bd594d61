package entities

import "encoding/base64"

// CardPosition is the slot a tarot card occupies in a three-card spread
type CardPosition string

const (
	PositionPast    CardPosition = "Past"
	PositionPresent CardPosition = "Present"
	PositionFuture  CardPosition = "Future"
)

// SpreadSize is the number of cards in a reading
const SpreadSize = 3

// LuckyNumberCount is the number of lucky numbers in a dream reading
const LuckyNumberCount = 3

// TarotCard is one card of a reading
type TarotCard struct {
	Name      string       `json:"name"`
	Position  CardPosition `json:"position"`
	Meaning   string       `json:"meaning"`
	VisualCue string       `json:"visualCue"`
}

// TarotReading is the generator's answer to a tarot question
type TarotReading struct {
	Cards   []TarotCard `json:"cards"`
	Summary string      `json:"summary"`
}

// DreamReading is the generator's answer to a dream description
type DreamReading struct {
	Interpretation    string    `json:"interpretation"`
	Themes            []string  `json:"themes"`
	PsychologicalNote string    `json:"psychologicalNote"`
	LuckyNumbers      []float64 `json:"luckyNumbers"`
}

// AstralReading is the generator's answer to an astral projection question
type AstralReading struct {
	Guidance  string `json:"guidance"`
	Technique string `json:"technique"`
	SafetyTip string `json:"safetyTip"`
	Plane     string `json:"plane"`
}

// Illustration is a generated card image
type Illustration struct {
	MIMEType string
	Data     []byte
}

// DataURL renders the image as an inline data URL
func (i *Illustration) DataURL() string {
	if i == nil || len(i.Data) == 0 {
		return ""
	}
	return "data:" + i.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

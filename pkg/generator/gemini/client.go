// Package gemini implements the content generator on Google's Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/generator"
	"google.golang.org/genai"
)

const (
	DefaultModel      = "gemini-2.5-flash"
	DefaultImageModel = "gemini-2.5-flash-image"
)

// modelsAPI is the slice of *genai.Models the client uses
type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config holds the Gemini connection settings
type Config struct {
	APIKey     string
	Model      string
	ImageModel string
}

// Client talks to Gemini
type Client struct {
	models     modelsAPI
	model      string
	imageModel string
}

var _ generator.Generator = (*Client)(nil)

// New creates a Gemini client
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	return newWithModels(c.Models, cfg), nil
}

func newWithModels(models modelsAPI, cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	return &Client{models: models, model: cfg.Model, imageModel: cfg.ImageModel}
}

// Tarot performs a three-card spread
func (c *Client) Tarot(ctx context.Context, question string) (*entities.TarotReading, error) {
	if question == "" {
		question = "General guidance"
	}
	prompt := fmt.Sprintf(`Perform a 3-card Tarot spread (Past, Present, Future) for the user.
The user's specific intent/question is: %q.
Be mystical, insightful, and empathetic.`, question)

	var reading entities.TarotReading
	err := c.generateJSON(ctx, prompt,
		"You are Aetheria, an ancient digital mystic. You provide deep, psychological, and spiritual insights.",
		tarotSchema, &reading)
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

// Dream interprets a dream
func (c *Client) Dream(ctx context.Context, text string) (*entities.DreamReading, error) {
	prompt := fmt.Sprintf("Interpret this dream: %q. Analyze the symbols, emotional undertone, and potential psychological meaning.", text)

	var reading entities.DreamReading
	err := c.generateJSON(ctx, prompt,
		"You are an expert dream analyst combining Jungian psychology with mystical symbolism.",
		dreamSchema, &reading)
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

// Astral gives projection guidance
func (c *Client) Astral(ctx context.Context, question string) (*entities.AstralReading, error) {
	if question == "" {
		question = "How to start"
	}
	prompt := fmt.Sprintf(`Provide guidance on astral projection or out-of-body experiences regarding: %q.
Provide a specific visualization technique and a safety tip.`, question)

	var reading entities.AstralReading
	err := c.generateJSON(ctx, prompt,
		"You are a guide to the Astral Plane. You provide esoteric knowledge, visualization techniques, and safety advice for travelers of the consciousness.",
		astralSchema, &reading)
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

// Illustration renders card art from a visual cue
func (c *Client) Illustration(ctx context.Context, visualCue string) (*entities.Illustration, error) {
	prompt := fmt.Sprintf("A mystical tarot card illustration: %s. Ethereal, luminous, ornate border, deep indigo and gold palette, no text.", visualCue)

	resp, err := c.models.GenerateContent(ctx, c.imageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return nil, fmt.Errorf("illustration request failed: %w", err)
	}

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &entities.Illustration{
					MIMEType: part.InlineData.MIMEType,
					Data:     part.InlineData.Data,
				}, nil
			}
		}
	}

	return nil, generator.ErrEmptyResponse
}

// Symbol explains a dream symbol
func (c *Client) Symbol(ctx context.Context, word string) (string, error) {
	prompt := fmt.Sprintf("Explain the mystical and psychological symbolism of %q in dreams. Keep it concise (max 2 sentences).", word)

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText("You are an expert dream symbol interpreter.", genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("symbol request failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", generator.ErrEmptyResponse
	}
	return text, nil
}

func (c *Client) generateJSON(ctx context.Context, prompt, instruction string, schema *genai.Schema, out any) error {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	})
	if err != nil {
		return fmt.Errorf("generation request failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return generator.ErrEmptyResponse
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("malformed generator response: %w", err)
	}
	return nil
}

// Package generator is the outbound gateway to the model that turns chat
// instructions into complete HTML documents.
package generator

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/siteweaver/weaver/src/weaver/entity"
	"github.com/siteweaver/weaver/src/weaver/internal/errors"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _configKeyGenerator = "generator"

// A document shorter than this is treated as absent when building the
// context-aware prompt.
const _minRealDocumentLen = 50

const _systemInstruction = `You are SiteWeaver, an expert frontend engineer working in HTML and Tailwind CSS.
Your goal is to generate COMPLETE, STANDALONE HTML files based on user requests.

Rules:
1. Return a FULL HTML5 document (<!DOCTYPE html>...</html>).
2. You MUST include the Tailwind CSS CDN in the <head>: <script src="https://cdn.tailwindcss.com"></script>
3. Use Google Fonts (Inter, Space Grotesk) if it makes the design look better.
4. The design must be modern, responsive, and production-ready.
5. Use "https://picsum.photos/800/600" or similar for placeholder images.
6. Return ONLY the HTML code. No markdown formatting.
7. If the user asks for a change, return the COMPLETE updated HTML file, not just the snippet.
8. Ensure high contrast and accessibility best practices.`

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Gateway produces a complete HTML document for an instruction, in the
// context of the current document and the prior conversation.
type Gateway interface {
	Generate(ctx context.Context, instruction string, currentDocument string, history []entity.ChatTurn) (string, error)
}

// Config holds the settings read from the generator config key.
type Config struct {
	Model   string `yaml:"model"`
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseURL"`
}

// Params define values to be used by the generator gateway.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
}

type gateway struct {
	model  string
	opts   []option.RequestOption
	logger *zap.SugaredLogger
}

// New creates the gateway from config. The api key is required; baseURL is
// optional and exists to point at compatible endpoints.
func New(p Params) (Gateway, error) {
	var cfg Config
	if err := p.Config.Get(_configKeyGenerator).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyGenerator, err)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("missing field %q in config", _configKeyGenerator+".model")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing field %q in config", _configKeyGenerator+".apiKey")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &gateway{
		model:  cfg.Model,
		opts:   opts,
		logger: p.Logger,
	}, nil
}

// Generate replays the conversation and asks for a full document. The reply
// is cleaned of markdown fences; an empty cleaned reply is a generation
// failure.
func (g *gateway) Generate(ctx context.Context, instruction string, currentDocument string, history []entity.ChatTurn) (string, error) {
	client := openai.NewClient(g.opts...)

	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(_systemInstruction),
	}
	for _, turn := range history {
		switch turn.Speaker {
		case entity.SpeakerAssistant:
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(turn.Text))
		default:
			msgs = append(msgs, openai.UserMessage(turn.Text))
		}
	}
	msgs = append(msgs, openai.UserMessage(buildPrompt(instruction, currentDocument)))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(g.model),
		Messages: msgs,
	})
	if err != nil {
		g.logger.Errorw("generation request failed", zap.Error(err))
		return "", &errors.GenerationError{Cause: err}
	}
	if len(resp.Choices) == 0 {
		return "", &errors.GenerationError{Cause: errors.New("no choices in reply")}
	}

	cleaned := stripFences(resp.Choices[0].Message.Content)
	if cleaned == "" {
		return "", &errors.GenerationError{Cause: errors.New("empty document in reply")}
	}
	return cleaned, nil
}

// buildPrompt mirrors the studio's context-aware prompt: when a real
// document already exists the instruction becomes a change request against
// it, otherwise it is a fresh design request.
func buildPrompt(instruction string, currentDocument string) string {
	if len(currentDocument) > _minRealDocumentLen {
		return fmt.Sprintf(
			"This is the current code of the website:\n%s\n\nUser Request for updates:\n%s\n\nPlease regenerate the FULL HTML code incorporating these changes.",
			currentDocument, instruction)
	}
	return "Create a website based on this description: " + instruction
}

func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```html", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"nexus_recycle/internal/config"
	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase/interfaces"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	ErrEmptyAnalysis     = errors.New("vision model returned no text")
	ErrMalformedAnalysis = errors.New("vision model returned malformed analysis")
)

const systemPrompt = "You are a recycling assistant. Reply with a single JSON object and nothing else."

const analysisPrompt = `Analyze this image of waste. Identify the specific materials present and estimate the weight of EACH material individually in KG. Also provide 3 upcycling ideas for the collection as a whole.

Use short material names such as Plastic, Paper, Glass, Metal, Copper, Aluminium, Electronic or Organic.
Respond with JSON of the form:
{"components":[{"name":"Plastic","weight_kg":0.4}],"upcycling_ideas":["idea one","idea two","idea three"]}`

// AnthropicAnalyzer identifies materials in a photo with the Claude Messages API.
type AnthropicAnalyzer struct {
	client    sdk.Client
	model     string
	maxTokens int64
	limiter   *rate.Limiter
}

var _ interfaces.IVisionAnalyzer = (*AnthropicAnalyzer)(nil)

func NewAnthropicAnalyzer(cfg config.AnthropicConfig) *AnthropicAnalyzer {
	opts := []option.RequestOption{option.WithAPIKey(cfg.Key)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	return &AnthropicAnalyzer{
		client:    sdk.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: maxTokens,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

func (a *AnthropicAnalyzer) Analyze(ctx context.Context, image []byte, mimeType string) (entities.ScanResult, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return entities.ScanResult{}, eris.Wrap(err, "anthropic: rate limit wait")
	}

	start := time.Now()
	msg, err := a.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(a.model),
		MaxTokens: a.maxTokens,
		System:    []sdk.TextBlockParam{{Text: systemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(
				sdk.NewImageBlockBase64(mimeType, base64.StdEncoding.EncodeToString(image)),
				sdk.NewTextBlock(analysisPrompt),
			),
		},
	})
	if err != nil {
		return entities.ScanResult{}, eris.Wrap(err, "anthropic: create message")
	}

	zap.L().Info("[vision][anthropic] analysis done",
		zap.String("model", string(msg.Model)),
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens),
		zap.Duration("elapsed", time.Since(start)),
	)

	var text strings.Builder
	for _, b := range msg.Content {
		if b.Type == "text" {
			text.WriteString(b.Text)
		}
	}
	return ParseAnalysis(text.String())
}

// ParseAnalysis decodes the model reply. Markdown code fences and prose
// around the JSON object are tolerated.
func ParseAnalysis(text string) (entities.ScanResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.ScanResult{}, ErrEmptyAnalysis
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return entities.ScanResult{}, fmt.Errorf("%w: no JSON object in reply", ErrMalformedAnalysis)
	}

	var res entities.ScanResult
	if err := json.Unmarshal([]byte(text[start:end+1]), &res); err != nil {
		return entities.ScanResult{}, fmt.Errorf("%w: decode: %v", ErrMalformedAnalysis, err)
	}
	for i := range res.Components {
		res.Components[i].Name = strings.TrimSpace(res.Components[i].Name)
	}
	if err := res.Validate(); err != nil {
		return entities.ScanResult{}, fmt.Errorf("%w: validate: %v", ErrMalformedAnalysis, err)
	}
	return res, nil
}

package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/Shanmugavel701/SNS-QA-Agent/internal/config"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/llm"
	"github.com/Shanmugavel701/SNS-QA-Agent/internal/metrics"
)

// ErrMissingAPIKey 는 Gemini API 키가 없을 때 반환된다.
// 키가 없으면 업스트림 호출 자체를 시도하지 않는다.
var ErrMissingAPIKey = errors.New("missing gemini api key")

// UpstreamError 는 Gemini 호출 실패를 감싼다.
type UpstreamError struct {
	Err error
}

// Error 는 오류 메시지를 반환한다.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini upstream: %v", e.Err)
}

// Unwrap 는 원인 오류를 반환한다.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Request 는 Gemini 요청 데이터다.
type Request struct {
	Prompt       string
	SystemPrompt string
	Model        string
}

// Client 는 Gemini 호출을 담당한다.
type Client struct {
	cfg       *config.Config
	metrics   *metrics.Store
	mu        sync.Mutex
	clients   map[string]*genai.Client
	apiKeys   []string
	apiKeyIdx int
}

// NewClient 는 Gemini 클라이언트를 생성한다.
// 키가 없어도 생성은 성공한다. 호출 시점에 ErrMissingAPIKey 를 반환한다.
func NewClient(cfg *config.Config, metricsStore *metrics.Store) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if metricsStore == nil {
		return nil, errors.New("metrics store is nil")
	}
	return &Client{
		cfg:     cfg,
		metrics: metricsStore,
		clients: make(map[string]*genai.Client),
		apiKeys: cfg.Gemini.APIKeys,
	}, nil
}

// Generate 는 프롬프트를 전송하고 모델의 원문 텍스트를 반환한다.
// 반환 텍스트는 구조가 보장되지 않는 비신뢰 문자열이다.
func (c *Client) Generate(ctx context.Context, req Request) (string, string, error) {
	start := time.Now()
	response, model, err := c.generate(ctx, req)
	if err != nil {
		c.metrics.RecordError(time.Since(start))
		return "", model, err
	}

	usage := extractUsage(response)
	c.metrics.RecordSuccess(time.Since(start), usage)
	return response.Text(), model, nil
}

func (c *Client) generate(ctx context.Context, req Request) (*genai.GenerateContentResponse, string, error) {
	client, err := c.selectClient(ctx)
	if err != nil {
		return nil, "", err
	}

	model := c.resolveModel(req.Model)
	generateConfig := c.buildGenerateConfig(req.SystemPrompt)
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}

	response, err := client.Models.GenerateContent(ctx, model, contents, generateConfig)
	if err != nil {
		return nil, model, &UpstreamError{Err: err}
	}
	return response, model, nil
}

func (c *Client) selectClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.apiKeys) == 0 {
		return nil, ErrMissingAPIKey
	}

	key := c.apiKeys[c.apiKeyIdx%len(c.apiKeys)]
	c.apiKeyIdx++
	if client, ok := c.clients[key]; ok {
		return client, nil
	}

	timeout := time.Duration(c.cfg.Gemini.TimeoutSeconds) * time.Second
	client, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Timeout: genai.Ptr(timeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	c.clients[key] = client
	return client, nil
}

func (c *Client) resolveModel(modelOverride string) string {
	if strings.TrimSpace(modelOverride) != "" {
		return modelOverride
	}
	return c.cfg.Gemini.Model
}

func (c *Client) buildGenerateConfig(systemPrompt string) *genai.GenerateContentConfig {
	generateConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(c.cfg.Gemini.Temperature)),
		MaxOutputTokens: int32(c.cfg.Gemini.MaxOutputTokens),
	}

	if systemPrompt != "" {
		generateConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	return generateConfig
}

func extractUsage(response *genai.GenerateContentResponse) llm.Usage {
	if response == nil || response.UsageMetadata == nil {
		return llm.Usage{}
	}
	usage := response.UsageMetadata
	return llm.Usage{
		InputTokens:  int(usage.PromptTokenCount),
		OutputTokens: int(usage.CandidatesTokenCount),
		TotalTokens:  int(usage.TotalTokenCount),
	}
}

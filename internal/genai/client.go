// Package genai is the quiz-generation boundary: a single-shot, asynchronous
// call to an OpenAI-compatible chat completion endpoint that returns a
// validated quiz or a generation failure. No partial quiz is ever installed.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rohitkumarvora/examprep/internal/quiz"
)

// ErrGeneration marks any failure of the external call or of parsing and
// validating its result. Recoverable: the caller informs the user and may
// retry; no state was touched.
var ErrGeneration = errors.New("quiz generation failed")

const (
	MinQuestions = 3
	MaxQuestions = 15
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	log        *zap.SugaredLogger
}

func NewClient(baseURL, apiKey, model string, log *zap.SugaredLogger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		log:        log,
	}
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// genQuestion is the schema the model is asked to emit. It keeps the two
// legacy booleans on the wire; they collapse into quiz.Kind on the way in.
type genQuestion struct {
	Question         string          `json:"question"`
	Options          []string        `json:"options"`
	Answer           json.RawMessage `json:"answer"`
	Explanation      string          `json:"explanation"`
	IsMultipleChoice bool            `json:"isMultipleChoice"`
	IsMatching       bool            `json:"isMatching"`
}

const systemPrompt = `You are a quiz author for an exam preparation app.
Respond with a JSON array only, no prose and no markdown fences. Each element:
{"question": string, "options": [string], "answer": string | [string] | {string: string},
 "explanation": string, "isMultipleChoice": bool, "isMatching": bool}
Rules: single-choice answers are one option string; multiple-choice answers are
an array of option strings with isMultipleChoice true; matching answers map every
option to a term with isMatching true. Never set both booleans.`

// GenerateQuiz produces a validated quiz for the topic, or ErrGeneration.
// Topic must be non-empty after trimming; count must be within [3,15].
func (c *Client) GenerateQuiz(ctx context.Context, topic string, count int) (quiz.Quiz, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return quiz.Quiz{}, errors.New("topic required")
	}
	if count < MinQuestions || count > MaxQuestions {
		return quiz.Quiz{}, fmt.Errorf("question count must be between %d and %d", MinQuestions, MaxQuestions)
	}

	user := fmt.Sprintf("Create a practice quiz with exactly %d questions on the topic: %s. "+
		"Mix single-choice, multiple-choice and matching questions where the topic allows.", count, topic)

	raw, err := c.complete(ctx, user)
	if err != nil {
		c.log.Warnw("generation call failed", "topic", topic, "err", err)
		return quiz.Quiz{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	questions, err := parseQuestions(raw)
	if err != nil {
		c.log.Warnw("generation response unparsable", "topic", topic, "err", err)
		return quiz.Quiz{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	q := quiz.Quiz{
		ID:          "gen-" + uuid.NewString(),
		Title:       topic + " Practice Quiz",
		Description: fmt.Sprintf("AI-generated quiz on %q (%d questions).", topic, len(questions)),
		Questions:   questions,
	}
	if err := quiz.Validate(q); err != nil {
		c.log.Warnw("generated quiz failed validation", "topic", topic, "err", err)
		return quiz.Quiz{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	c.log.Infow("quiz generated", "quiz_id", q.ID, "topic", topic, "questions", len(questions))
	return q, nil
}

func (c *Client) complete(ctx context.Context, userMessage string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: 0.7,
	}
	buf, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm returned status %d: %.200s", resp.StatusCode, body)
	}
	var cc chatCompletionResponse
	if err := json.Unmarshal(body, &cc); err != nil {
		return "", fmt.Errorf("decode completion: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", errors.New("completion has no choices")
	}
	return cc.Choices[0].Message.Content, nil
}

// parseQuestions decodes the model output into questions, tolerating
// markdown fences some models wrap around JSON despite instructions.
func parseQuestions(raw string) ([]quiz.Question, error) {
	raw = stripFences(raw)
	var gen []genQuestion
	if err := json.Unmarshal([]byte(raw), &gen); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	out := make([]quiz.Question, 0, len(gen))
	for i, g := range gen {
		kind, err := kindOf(g)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		var ans quiz.Answer
		if len(g.Answer) > 0 {
			if err := json.Unmarshal(g.Answer, &ans); err != nil {
				return nil, fmt.Errorf("question %d: %w", i, err)
			}
		}
		out = append(out, quiz.Question{
			Prompt:      g.Question,
			Options:     g.Options,
			Kind:        kind,
			Answer:      ans,
			Explanation: g.Explanation,
		})
	}
	return out, nil
}

func kindOf(g genQuestion) (quiz.Kind, error) {
	switch {
	case g.IsMultipleChoice && g.IsMatching:
		return "", errors.New("both isMultipleChoice and isMatching set")
	case g.IsMatching:
		return quiz.KindMatching, nil
	case g.IsMultipleChoice:
		return quiz.KindMultipleChoice, nil
	default:
		return quiz.KindSingleChoice, nil
	}
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

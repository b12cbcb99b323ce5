package symptoms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"medi-assist/internal/llm"
)

const (
	MinSymptomsLength = 10
	MaxSymptomsLength = 2000
)

var (
	ErrSymptomsTooShort    = errors.New("symptoms too short")
	ErrSymptomsTooLong     = errors.New("symptoms too long")
	ErrLanguageRequired    = errors.New("language required")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

var userMessages = map[error]string{
	ErrSymptomsTooShort:    fmt.Sprintf("Please describe your symptoms in at least %d characters.", MinSymptomsLength),
	ErrSymptomsTooLong:     fmt.Sprintf("Please keep your description under %d characters.", MaxSymptomsLength),
	ErrLanguageRequired:    "Please select a language.",
	ErrUnsupportedLanguage: "Please select a supported language.",
}

// UserMessage returns the text shown to the user for a validation error.
// ok is false when err is not caused by bad user input.
func UserMessage(err error) (msg string, ok bool) {
	for sentinel, text := range userMessages {
		if errors.Is(err, sentinel) {
			return text, true
		}
	}
	return "", false
}

// ErrSuggestion wraps any failure of the language model
var ErrSuggestion = errors.New("symptom suggestion failed")

// IsValidationError reports whether err is caused by bad user input
func IsValidationError(err error) bool {
	_, ok := UserMessage(err)
	return ok
}

// Request is a free-text symptom description
type Request struct {
	Symptoms string `json:"symptoms" example:"I have had a headache and mild fever since yesterday"`
	Language string `json:"language" example:"english"`
}

// Analysis is the assistant's reply
type Analysis struct {
	PossibleConditions string `json:"possibleConditions" example:"Common cold or viral fever"`
	Remedies           string `json:"remedies" example:"Rest, drink fluids, paracetamol for fever"`
	Disclaimer         string `json:"disclaimer"`
	Language           string `json:"language" example:"english"`
}

// Service analyzes symptom descriptions
type Service interface {
	Analyze(ctx context.Context, req Request) (*Analysis, error)
}

type symptomService struct {
	client llm.Client
	logger *slog.Logger
}

func NewService(client llm.Client, logger *slog.Logger) Service {
	return &symptomService{
		client: client,
		logger: logger.With("component", "symptoms"),
	}
}

func (s *symptomService) Analyze(ctx context.Context, req Request) (*Analysis, error) {
	symptoms, lang, err := validate(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	reply, err := s.client.Chat(ctx, []llm.Message{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: buildUserPrompt(lang, symptoms)},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSuggestion, err)
	}

	conditions, remedies := parseReply(reply)
	s.logger.Info("analyzed symptoms",
		"language", lang.Key,
		"symptom_chars", utf8.RuneCountInString(symptoms),
		"duration", time.Since(start),
	)

	return &Analysis{
		PossibleConditions: conditions,
		Remedies:           remedies,
		Disclaimer:         Disclaimer,
		Language:           lang.Key,
	}, nil
}

func validate(req Request) (string, Language, error) {
	symptoms := strings.TrimSpace(req.Symptoms)
	switch n := utf8.RuneCountInString(symptoms); {
	case n < MinSymptomsLength:
		return "", Language{}, ErrSymptomsTooShort
	case n > MaxSymptomsLength:
		return "", Language{}, ErrSymptomsTooLong
	}

	lang, err := ParseLanguage(req.Language)
	if err != nil {
		return "", Language{}, err
	}
	return symptoms, lang, nil
}

type modelReply struct {
	PossibleConditions string `json:"possibleConditions"`
	Remedies           string `json:"remedies"`
}

// parseReply reads the JSON object the model was asked for. Plain text is
// taken as the conditions.
func parseReply(reply string) (conditions, remedies string) {
	text := stripCodeFence(strings.TrimSpace(reply))

	var parsed modelReply
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		conditions, remedies = parsed.PossibleConditions, parsed.Remedies
	} else {
		conditions = text
	}

	conditions = trimDisclaimer(conditions)
	remedies = trimDisclaimer(remedies)
	if conditions == "" {
		conditions = FallbackConditions
	}
	return conditions, remedies
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// trimDisclaimer drops a trailing copy of the English disclaimer, with or
// without the warning sign
func trimDisclaimer(s string) string {
	s = strings.TrimSpace(s)
	plain := strings.TrimSpace(strings.TrimPrefix(Disclaimer, "⚠️"))
	for _, suffix := range []string{Disclaimer, plain} {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			s = strings.TrimSpace(strings.TrimSuffix(s, "⚠️"))
			break
		}
	}
	return s
}

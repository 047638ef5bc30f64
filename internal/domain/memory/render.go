package memory

import (
	"fmt"

	"github.com/recollect-ai/recollect/internal/domain"
)

// Actor labels used when rendering conversation payloads.
const (
	userLabel      = "User"
	assistantLabel = "Assistant"
)

// Render turns a payload into prompt-ready text.
// Conversations become a two-line exchange, facts surface key and content,
// summaries pass through verbatim. A payload outside the union fails with
// ErrUnknownPayloadKind.
func Render(p Payload) (string, error) {
	switch v := p.(type) {
	case Conversation:
		return fmt.Sprintf("%s: %s\n%s: %s",
			userLabel, v.UserMessage, assistantLabel, v.AssistantMessage), nil
	case Fact:
		return fmt.Sprintf("%s: %s", v.Key, v.Content), nil
	case Summary:
		return v.Content, nil
	default:
		return "", fmt.Errorf("%w: %T", domain.ErrUnknownPayloadKind, p)
	}
}

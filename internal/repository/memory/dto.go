package memory

import (
	"fmt"

	"github.com/recollect-ai/recollect/internal/domain"
	dommem "github.com/recollect-ai/recollect/internal/domain/memory"
)

// decodePayload converts flat hash fields into a domain payload.
// The "type" field discriminates the variant; "timestamp" is RFC 3339.
func decodePayload(fields map[string]string) (dommem.Payload, error) {
	ts, err := dommem.ParseTimestamp(fields["timestamp"])
	if err != nil {
		return nil, err
	}

	switch dommem.Kind(fields["type"]) {
	case dommem.KindConversation:
		return dommem.Conversation{
			Chan:             fields["channel"],
			UserMessage:      fields["user_message"],
			AssistantMessage: fields["assistant_message"],
			At:               ts,
		}, nil
	case dommem.KindFact:
		return dommem.Fact{
			Key:     fields["key"],
			Content: fields["content"],
			At:      ts,
		}, nil
	case dommem.KindSummary:
		return dommem.Summary{
			Content: fields["content"],
			Chan:    fields["channel"],
			At:      ts,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPayloadKind, fields["type"])
	}
}

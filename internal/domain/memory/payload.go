// Package memory holds the long-term memory value objects: the payload
// union stored alongside each vector, the recency formatter, and the
// renderer that turns payloads into prompt-ready text.
package memory

import "time"

// Kind discriminates the payload union.
type Kind string

const (
	// KindConversation is a stored user/assistant exchange.
	KindConversation Kind = "conversation"
	// KindFact is a stored key/value fact about the user.
	KindFact Kind = "fact"
	// KindSummary is a condensed summary of an earlier conversation window.
	KindSummary Kind = "summary"
)

// Payload is the sealed union of memory record payloads. Adding a variant
// requires a new case in Render, which the compiler cannot miss because the
// marker method keeps external types out.
type Payload interface {
	Kind() Kind
	Channel() string
	Timestamp() time.Time

	isPayload()
}

// Conversation is one stored user/assistant exchange.
type Conversation struct {
	Chan             string
	UserMessage      string
	AssistantMessage string
	At               time.Time
}

// Kind returns KindConversation.
func (Conversation) Kind() Kind { return KindConversation }

// Channel returns the channel the exchange happened on.
func (c Conversation) Channel() string { return c.Chan }

// Timestamp returns when the exchange happened.
func (c Conversation) Timestamp() time.Time { return c.At }

func (Conversation) isPayload() {}

// Fact is a stored key/value fact.
type Fact struct {
	Key     string
	Content string
	At      time.Time
}

// Kind returns KindFact.
func (Fact) Kind() Kind { return KindFact }

// Channel returns "" — facts are not channel-scoped.
func (Fact) Channel() string { return "" }

// Timestamp returns when the fact was recorded.
func (f Fact) Timestamp() time.Time { return f.At }

func (Fact) isPayload() {}

// Summary is a condensed summary of an earlier conversation window.
type Summary struct {
	Content string
	Chan    string
	At      time.Time
}

// Kind returns KindSummary.
func (Summary) Kind() Kind { return KindSummary }

// Channel returns the channel the summarized window belongs to.
func (s Summary) Channel() string { return s.Chan }

// Timestamp returns when the summary was produced.
func (s Summary) Timestamp() time.Time { return s.At }

func (Summary) isPayload() {}

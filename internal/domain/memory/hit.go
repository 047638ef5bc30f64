package memory

// ScoredHit is one raw vector store hit: a similarity score in [0,1] and the
// decoded payload. The store returns hits in descending score order.
type ScoredHit struct {
	Score   float64
	Payload Payload
}

// Entry is a normalized memory entry ready for prompt rendering: rendered
// content, recency label, and carried-through score/channel/timestamp.
type Entry struct {
	Content   string
	Score     float64
	Channel   string
	Timestamp string
	TimeAgo   string
	Type      Kind
}

package report

// AuthorSentiment aggregates one author's sentiment profile, message volume
// and average response latency.
type AuthorSentiment struct {
	Author             string  `json:"author"`
	AverageSentiment   float64 `json:"average_sentiment"`
	TotalMessages      int     `json:"total_messages"`
	AvgMessageLength   float64 `json:"avg_message_length"`
	Positive           int     `json:"positive"`
	Neutral            int     `json:"neutral"`
	Negative           int     `json:"negative"`
	PositivePct        float64 `json:"positive_pct"`
	NeutralPct         float64 `json:"neutral_pct"`
	NegativePct        float64 `json:"negative_pct"`
	AvgResponseMinutes float64 `json:"avg_response_time_minutes"`
}

// HourlyRow is one pivoted activity row: an "hour" key plus one count per
// author. Flat on purpose so the frontend can treat author names as columns.
type HourlyRow map[string]int

// Initiation counts how often one author broke a long silence.
type Initiation struct {
	Author               string  `json:"author"`
	ConversationsStarted int     `json:"conversations_started"`
	InitiationPercentage float64 `json:"initiation_percentage"`
}

// EmojiCount pairs a single emoji with its usage count.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// AuthorEmojis lists an author's most used emoji.
type AuthorEmojis struct {
	Author    string       `json:"author"`
	TopEmojis []EmojiCount `json:"top_emojis"`
}

// EmojiStats groups emoji aggregates by author.
type EmojiStats struct {
	ByPerson []AuthorEmojis `json:"by_person"`
}

// WordCount pairs a token with its frequency.
type WordCount struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// AuthorWords is one author's word-cloud input.
type AuthorWords struct {
	Author string      `json:"author"`
	Words  []WordCount `json:"words"`
}

// DomainCount pairs a shared-link domain with its frequency.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// AuthorDomains lists an author's most shared domains.
type AuthorDomains struct {
	Author  string        `json:"author"`
	Domains []DomainCount `json:"domains"`
}

// Report is the full analysis payload returned to the client.
type Report struct {
	SentimentByPerson      []AuthorSentiment `json:"sentiment_by_person"`
	HourlyActivity         []HourlyRow       `json:"hourly_activity"`
	ConversationInitiation []Initiation      `json:"conversation_initiation"`
	EmojiStats             EmojiStats        `json:"emoji_stats"`
	WordClouds             []AuthorWords     `json:"word_clouds"`
	DomainStats            []AuthorDomains   `json:"domain_stats"`
	TotalMessages          int               `json:"total_messages"`
	Participants           []string          `json:"participants"`
	TotalDuration          string            `json:"total_duration"`
	AvgMessagesPerDay      float64           `json:"avg_messages_per_day"`
}

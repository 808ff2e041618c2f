package insights

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mholloway/chat-pulse/backend/internal/analysis/emoji"
	"github.com/mholloway/chat-pulse/backend/internal/analysis/sentiment"
	model "github.com/mholloway/chat-pulse/backend/internal/model/transcript"
	"github.com/mholloway/chat-pulse/backend/internal/model/report"
)

// ErrNoRecords signals that the table holds nothing to analyze.
var ErrNoRecords = errors.New("no records to analyze")

// Service computes the full analytics report from a parsed record table. The
// sentiment scorer and emoji classifier are injected so tests can run
// deterministic stubs.
type Service struct {
	scorer sentiment.Scorer
	emojis emoji.Classifier
}

// NewService wires the analytics pipeline to its classifiers.
func NewService(scorer sentiment.Scorer, emojis emoji.Classifier) *Service {
	return &Service{scorer: scorer, emojis: emojis}
}

// Analyze derives per-record columns once, then computes every report section
// from the enriched table. The table is local to one request and is not
// retained.
func (s *Service) Analyze(_ context.Context, table *model.Table) (*report.Report, error) {
	if table.Empty() {
		return nil, ErrNoRecords
	}

	s.enrich(table)

	gaps := timeOrderedGaps(table.Records)
	responses := averageResponseMinutes(gaps)

	return &report.Report{
		SentimentByPerson:      sentimentByPerson(table, responses),
		HourlyActivity:         hourlyActivity(table),
		ConversationInitiation: conversationInitiation(gaps),
		EmojiStats:             s.emojiStats(table),
		WordClouds:             wordClouds(table),
		DomainStats:            domainStats(table),
		TotalMessages:          len(table.Records),
		Participants:           table.Participants(),
		TotalDuration:          totalDuration(table.Records),
		AvgMessagesPerDay:      avgMessagesPerDay(table.Records),
	}, nil
}

// enrich fills the derived columns: sentiment score and category, whitespace
// word count and hour of day.
func (s *Service) enrich(table *model.Table) {
	for i := range table.Records {
		rec := &table.Records[i]
		rec.SentimentScore = s.scorer.Score(rec.Message)
		rec.SentimentCategory = sentiment.Categorize(rec.SentimentScore)
		rec.WordCount = len(strings.Fields(rec.Message))
		rec.Hour = rec.At.Hour()
	}
}

// totalDuration reports the span between first and last message at a single
// granularity: years and months when either is nonzero, otherwise whole days,
// otherwise "Less than a day".
func totalDuration(records []model.Record) string {
	first, last := timeBounds(records)
	years, months, days := calendarDiff(first, last)

	var parts []string
	if years > 0 {
		parts = append(parts, pluralize(years, "year"))
	}
	if months > 0 {
		parts = append(parts, pluralize(months, "month"))
	}
	if len(parts) == 0 {
		if days > 0 {
			parts = append(parts, pluralize(days, "day"))
		} else {
			parts = append(parts, "Less than a day")
		}
	}
	return strings.Join(parts, ", ")
}

// avgMessagesPerDay divides the message count by the day span, floored to a
// minimum of one day so single-day exports do not divide by zero.
func avgMessagesPerDay(records []model.Record) float64 {
	first, last := timeBounds(records)
	days := int(last.Sub(first).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return round1(float64(len(records)) / float64(days))
}

func timeBounds(records []model.Record) (first, last time.Time) {
	first, last = records[0].At, records[0].At
	for _, rec := range records[1:] {
		if rec.At.Before(first) {
			first = rec.At
		}
		if rec.At.After(last) {
			last = rec.At
		}
	}
	return first, last
}

// calendarDiff breaks the span into calendar years, months and days, borrowing
// a day when the closing clock is earlier in the day than the opening one.
func calendarDiff(from, to time.Time) (years, months, days int) {
	years = to.Year() - from.Year()
	months = int(to.Month()) - int(from.Month())
	days = to.Day() - from.Day()

	if clockSeconds(to) < clockSeconds(from) {
		days--
	}
	if days < 0 {
		months--
		endOfPrevMonth := to.AddDate(0, 0, -to.Day())
		days += endOfPrevMonth.Day()
	}
	if months < 0 {
		years--
		months += 12
	}
	return years, months, days
}

func clockSeconds(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

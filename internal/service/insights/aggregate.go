package insights

import (
	"sort"

	"github.com/mholloway/chat-pulse/backend/internal/analysis/sentiment"
	model "github.com/mholloway/chat-pulse/backend/internal/model/transcript"
	"github.com/mholloway/chat-pulse/backend/internal/model/report"
)

// Gaps larger than the response window are treated as a new conversation, not
// a slow reply. The initiation threshold is an independent constant; the two
// are deliberately not unified into a session concept.
const (
	responseWindowMinutes = 720
	initiationGapMinutes  = 180
)

// gap is one step of the time-ordered message sequence.
type gap struct {
	author     string
	prevAuthor string
	minutes    float64
	hasPrev    bool
}

// timeOrderedGaps sorts records by timestamp (stable, so source order breaks
// ties) and pairs each one with the distance to its predecessor.
func timeOrderedGaps(records []model.Record) []gap {
	ordered := make([]model.Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].At.Before(ordered[j].At)
	})

	gaps := make([]gap, len(ordered))
	for i, rec := range ordered {
		g := gap{author: rec.Author}
		if i > 0 {
			g.prevAuthor = ordered[i-1].Author
			g.minutes = rec.At.Sub(ordered[i-1].At).Minutes()
			g.hasPrev = true
		}
		gaps[i] = g
	}
	return gaps
}

// averageResponseMinutes averages qualifying gaps per author. A gap qualifies
// only when a predecessor exists, the author changed, and the gap fits the
// response window.
func averageResponseMinutes(gaps []gap) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, g := range gaps {
		if !g.hasPrev || g.author == g.prevAuthor || g.minutes > responseWindowMinutes {
			continue
		}
		sums[g.author] += g.minutes
		counts[g.author]++
	}

	avg := make(map[string]float64, len(sums))
	for author, sum := range sums {
		avg[author] = sum / float64(counts[author])
	}
	return avg
}

// sentimentByPerson groups records by author into sentiment, volume and
// response-time aggregates, sorted by average sentiment descending. Authors
// without a qualifying response gap report 0, not a missing value.
func sentimentByPerson(table *model.Table, responses map[string]float64) []report.AuthorSentiment {
	type acc struct {
		scoreSum   float64
		count      int
		wordSum    int
		categories map[string]int
	}

	accs := make(map[string]*acc)
	for _, rec := range table.Records {
		a := accs[rec.Author]
		if a == nil {
			a = &acc{categories: make(map[string]int, 3)}
			accs[rec.Author] = a
		}
		a.scoreSum += rec.SentimentScore
		a.count++
		a.wordSum += rec.WordCount
		a.categories[rec.SentimentCategory]++
	}

	participants := table.Participants()
	rows := make([]report.AuthorSentiment, 0, len(participants))
	for _, author := range participants {
		a := accs[author]
		total := float64(a.count)
		row := report.AuthorSentiment{
			Author:             author,
			AverageSentiment:   a.scoreSum / total,
			TotalMessages:      a.count,
			AvgMessageLength:   float64(a.wordSum) / total,
			Positive:           a.categories[sentiment.Positive],
			Neutral:            a.categories[sentiment.Neutral],
			Negative:           a.categories[sentiment.Negative],
			AvgResponseMinutes: responses[author],
		}
		row.PositivePct = float64(row.Positive) / total * 100
		row.NeutralPct = float64(row.Neutral) / total * 100
		row.NegativePct = float64(row.Negative) / total * 100
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AverageSentiment > rows[j].AverageSentiment
	})
	return rows
}

// hourlyActivity pivots (hour, author) counts into exactly 24 rows, zero
// filled for every participant so no hour or author is ever omitted.
func hourlyActivity(table *model.Table) []report.HourlyRow {
	counts := make(map[int]map[string]int, 24)
	for _, rec := range table.Records {
		byAuthor := counts[rec.Hour]
		if byAuthor == nil {
			byAuthor = make(map[string]int)
			counts[rec.Hour] = byAuthor
		}
		byAuthor[rec.Author]++
	}

	participants := table.Participants()
	rows := make([]report.HourlyRow, 0, 24)
	for hour := 0; hour < 24; hour++ {
		row := report.HourlyRow{"hour": hour}
		for _, author := range participants {
			row[author] = counts[hour][author]
		}
		rows = append(rows, row)
	}
	return rows
}

// conversationInitiation counts messages that broke a silence longer than the
// initiation gap, regardless of author change, sorted by count descending.
func conversationInitiation(gaps []gap) []report.Initiation {
	starts := newCounter()
	for _, g := range gaps {
		if g.hasPrev && g.minutes > initiationGapMinutes {
			starts.add(g.author)
		}
	}

	total := starts.total()
	rows := make([]report.Initiation, 0, len(starts.order))
	for _, e := range starts.top(-1) {
		pct := 0.0
		if total > 0 {
			pct = round1(float64(e.count) / float64(total) * 100)
		}
		rows = append(rows, report.Initiation{
			Author:               e.key,
			ConversationsStarted: e.count,
			InitiationPercentage: pct,
		})
	}
	return rows
}

package insights

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mholloway/chat-pulse/backend/internal/model/report"
)

func TestEmojiStatsPerAuthor(t *testing.T) {
	result := analyze(t,
		rec("Bob", "party time 😀😀🎉", at(1, 9, 0)),
		rec("Bob", "again 😀", at(1, 9, 5)),
		rec("Alice", "no emoji here", at(1, 9, 10)),
	)

	require.Len(t, result.EmojiStats.ByPerson, 1)
	bob := result.EmojiStats.ByPerson[0]
	require.Equal(t, "Bob", bob.Author)
	require.Equal(t, []report.EmojiCount{
		{Emoji: "😀", Count: 3},
		{Emoji: "🎉", Count: 1},
	}, bob.TopEmojis)
}

func TestEmojiTopFiveTiesKeepFirstEncounterOrder(t *testing.T) {
	result := analyze(t,
		rec("Bob", "🎉✨", at(1, 9, 0)),
	)

	require.Len(t, result.EmojiStats.ByPerson, 1)
	require.Equal(t, []report.EmojiCount{
		{Emoji: "🎉", Count: 1},
		{Emoji: "✨", Count: 1},
	}, result.EmojiStats.ByPerson[0].TopEmojis)
}

func TestWordCloudFiltersTokens(t *testing.T) {
	result := analyze(t,
		rec("Alice", "The quick-quick brown fox, the FOX! im ok", at(1, 9, 0)),
	)

	require.Len(t, result.WordClouds, 1)
	words := result.WordClouds[0].Words

	byText := make(map[string]int, len(words))
	for _, w := range words {
		byText[w.Text] = w.Value
	}

	// "the" is a stopword, "im" a bare contraction, "ok" too short; the
	// hyphen is stripped so "quick-quick" collapses into one token.
	require.Equal(t, 2, byText["fox"])
	require.Equal(t, 1, byText["quickquick"])
	require.Equal(t, 1, byText["brown"])
	require.NotContains(t, byText, "the")
	require.NotContains(t, byText, "im")
	require.NotContains(t, byText, "ok")
}

func TestWordCloudRowPresentEvenWhenEmpty(t *testing.T) {
	result := analyze(t,
		rec("Alice", "the and a", at(1, 9, 0)),
	)

	require.Len(t, result.WordClouds, 1)
	require.Equal(t, "Alice", result.WordClouds[0].Author)
	require.Empty(t, result.WordClouds[0].Words)
}

func TestDomainNormalizationCollapsesYoutubeHosts(t *testing.T) {
	result := analyze(t,
		rec("Alice", "watch https://youtu.be/x", at(1, 9, 0)),
		rec("Alice", "or https://youtube.com/x", at(1, 9, 5)),
		rec("Alice", "or https://www.youtube.com/x", at(1, 9, 10)),
	)

	require.Len(t, result.DomainStats, 1)
	require.Equal(t, []report.DomainCount{
		{Domain: "youtube.com", Count: 3},
	}, result.DomainStats[0].Domains)
}

func TestDomainExtractionNormalizesHosts(t *testing.T) {
	domains := extractDomains("see http://www.Example.com/page and https://news.site.org/a")
	require.Equal(t, []string{"example.com", "news.site.org"}, domains)
}

func TestDomainStatsOmitsAuthorsWithoutLinks(t *testing.T) {
	result := analyze(t,
		rec("Alice", "no links at all", at(1, 9, 0)),
	)

	require.Empty(t, result.DomainStats)
}

func TestCounterTopTieBreakIsFirstEncounter(t *testing.T) {
	c := newCounter()
	for _, key := range []string{"b", "a", "b", "c", "a", "z"} {
		c.add(key)
	}

	top := c.top(2)
	require.Equal(t, []entry{{key: "b", count: 2}, {key: "a", count: 2}}, top)
}

package insights

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHourlyActivityAlwaysHas24Rows(t *testing.T) {
	result := analyze(t,
		rec("Alice", "morning", at(1, 9, 0)),
		rec("Bob", "evening", at(1, 21, 30)),
	)

	require.Len(t, result.HourlyActivity, 24)
	for hour, row := range result.HourlyActivity {
		require.Equal(t, hour, row["hour"])
		require.Contains(t, row, "Alice")
		require.Contains(t, row, "Bob")
	}
	require.Equal(t, 1, result.HourlyActivity[9]["Alice"])
	require.Equal(t, 0, result.HourlyActivity[9]["Bob"])
	require.Equal(t, 1, result.HourlyActivity[21]["Bob"])
	require.Equal(t, 0, result.HourlyActivity[3]["Alice"])
}

func TestResponseTimeOnlyCountsQualifyingGaps(t *testing.T) {
	result := analyze(t,
		rec("Alice", "opener", at(1, 9, 0)),
		// 10 minutes, author change: qualifies for Bob.
		rec("Bob", "quick reply", at(1, 9, 10)),
		// Same author: never a response.
		rec("Bob", "follow-up", at(1, 9, 20)),
		// Author change but beyond the 12-hour window: excluded.
		rec("Alice", "next day", at(2, 10, 0)),
	)

	require.InDelta(t, 10.0, sentimentRow(t, result, "Bob").AvgResponseMinutes, 1e-9)
	require.InDelta(t, 0.0, sentimentRow(t, result, "Alice").AvgResponseMinutes, 1e-9)
}

func TestResponseTimeAveragesMultipleGaps(t *testing.T) {
	result := analyze(t,
		rec("Alice", "one", at(1, 9, 0)),
		rec("Bob", "two", at(1, 9, 4)),
		rec("Alice", "three", at(1, 9, 10)),
		rec("Bob", "four", at(1, 9, 18)),
	)

	// Bob replied after 4 and 8 minutes.
	require.InDelta(t, 6.0, sentimentRow(t, result, "Bob").AvgResponseMinutes, 1e-9)
	require.InDelta(t, 6.0, sentimentRow(t, result, "Alice").AvgResponseMinutes, 1e-9)
}

func TestConversationInitiationCountsLongSilences(t *testing.T) {
	result := analyze(t,
		rec("Alice", "morning", at(1, 9, 0)),
		rec("Bob", "reply", at(1, 9, 10)),
		// 230 minutes of silence: Alice starts a new conversation.
		rec("Alice", "afternoon", at(1, 13, 0)),
	)

	require.Len(t, result.ConversationInitiation, 1)
	row := result.ConversationInitiation[0]
	require.Equal(t, "Alice", row.Author)
	require.Equal(t, 1, row.ConversationsStarted)
	require.InDelta(t, 100.0, row.InitiationPercentage, 1e-9)
}

func TestConversationInitiationDoesNotRequireAuthorChange(t *testing.T) {
	result := analyze(t,
		rec("Alice", "morning", at(1, 9, 0)),
		// Four hours later, same author.
		rec("Alice", "afternoon", at(1, 13, 0)),
	)

	require.Len(t, result.ConversationInitiation, 1)
	require.Equal(t, 1, result.ConversationInitiation[0].ConversationsStarted)
}

func TestConversationInitiationSortedByCountDescending(t *testing.T) {
	result := analyze(t,
		rec("Alice", "one", at(1, 0, 0)),
		rec("Bob", "two", at(1, 4, 0)),
		rec("Alice", "three", at(1, 8, 0)),
		rec("Alice", "four", at(1, 12, 0)),
	)

	require.Len(t, result.ConversationInitiation, 2)
	require.Equal(t, "Alice", result.ConversationInitiation[0].Author)
	require.Equal(t, 2, result.ConversationInitiation[0].ConversationsStarted)
	require.Equal(t, "Bob", result.ConversationInitiation[1].Author)
	require.InDelta(t, 66.7, result.ConversationInitiation[0].InitiationPercentage, 1e-9)
	require.InDelta(t, 33.3, result.ConversationInitiation[1].InitiationPercentage, 1e-9)
}

func TestShortGapsProduceNoInitiations(t *testing.T) {
	result := analyze(t,
		rec("Alice", "one", at(1, 9, 0)),
		rec("Bob", "two", at(1, 9, 5)),
	)

	require.Empty(t, result.ConversationInitiation)
}

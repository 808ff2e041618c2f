package transcript

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	model "github.com/mholloway/chat-pulse/backend/internal/model/transcript"
)

// The two export dialects WhatsApp emits, matched against a whole stripped
// line. Bracketed timestamps may carry seconds; hyphenated ones never do.
var (
	bracketLine = regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),\s(\d{1,2}:\d{2}(?::\d{2})?)\]\s(.*?):\s(.*)$`)
	hyphenLine  = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),\s(\d{1,2}:\d{2})\s-\s(.*?):\s(.*)$`)
)

// encryptionNotice flags the system identity for a given export: whoever
// "sent" this line is not a human participant.
const encryptionNotice = "messages and calls are end-to-end encrypted"

// dropPhrases are matched case-insensitively against the whole line before
// dialect matching. The double left-to-right mark shows up on media
// placeholder lines.
var dropPhrases = []string{
	"image omitted",
	"gif omitted",
	"\u200e\u200e",
	"you started a video call",
}

// systemActions appear inside the author field when a structural group notice
// happens to share a normal message's line shape.
var systemActions = []string{
	" changed the subject to",
	" changed the group icon",
	" added ",
	" left",
	" removed ",
	" joined using this group's invite link",
	" security code changed",
}

// Day-first layouts, widest year form first so "1/1/2024" never half-matches
// the two-digit layout.
var timestampLayouts = []string{
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/06 15:04:05",
	"2/1/06 15:04",
}

// Parse turns a raw transcript into an ordered record table. Lines that match
// neither dialect are appended to the previous record as continuations; lines
// before the first record are dropped. The exclusion set starts with the
// viewing account ("you") and grows whenever an encryption notice reveals a
// system identity. Exclusion applies from that point forward only; records
// already emitted stay.
func Parse(text string) *model.Table {
	exclude := map[string]struct{}{"you": {}}

	var records []model.Record
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		if containsAny(lower, dropPhrases) {
			continue
		}

		date, clock, author, message, ok := classify(line)
		if !ok {
			if len(records) > 0 {
				records[len(records)-1].Message += " " + line
			}
			continue
		}

		clean := normalizeAuthor(author)
		if strings.Contains(strings.ToLower(message), encryptionNotice) {
			exclude[clean] = struct{}{}
			continue
		}
		if _, drop := exclude[clean]; drop {
			continue
		}

		records = append(records, model.Record{
			Date:    date,
			Time:    clock,
			Author:  strings.TrimSpace(author),
			Message: message,
		})
	}

	kept := records[:0]
	for _, rec := range records {
		at, err := parseTimestamp(rec.Date + " " + rec.Time)
		if err != nil {
			continue
		}
		if containsAny(strings.ToLower(rec.Author), systemActions) {
			continue
		}
		rec.At = at
		kept = append(kept, rec)
	}

	return &model.Table{Records: kept}
}

// classify matches one line against the two dialects. At most one can match.
func classify(line string) (date, clock, author, message string, ok bool) {
	if m := bracketLine.FindStringSubmatch(line); m != nil {
		return m[1], m[2], m[3], m[4], true
	}
	if m := hyphenLine.FindStringSubmatch(line); m != nil {
		return m[1], m[2], m[3], m[4], true
	}
	return "", "", "", "", false
}

// normalizeAuthor strips every Unicode control/format character (category
// group C), trims and lowercases. Used only for exclusion matching, never for
// display.
func normalizeAuthor(author string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.C, r) {
			return -1
		}
		return r
	}, author)
	return strings.ToLower(strings.TrimSpace(stripped))
}

// parseTimestamp resolves ambiguous numeric dates day-before-month.
func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		at, err := time.Parse(layout, value)
		if err == nil {
			return at, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

package insights

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	model "github.com/mholloway/chat-pulse/backend/internal/model/transcript"
	"github.com/mholloway/chat-pulse/backend/internal/model/report"
)

const (
	topEmojiCount  = 5
	topWordCount   = 30
	topDomainCount = 5
	minTokenRunes  = 3
)

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// tokenPunctuation is stripped from message text before tokenizing: ASCII
// punctuation plus curly double quotes.
const tokenPunctuation = asciiPunctuation + "“”"

// urlPattern is deliberately permissive; anything it overmatches is dropped
// later when the host fails to parse.
var urlPattern = regexp.MustCompile(`https?://(?:[-\w.]|(?:%[\da-fA-F]{2}))+`)

// canonicalHosts collapses equivalent hosts to one reporting domain.
var canonicalHosts = map[string]string{
	"youtu.be":        "youtube.com",
	"www.youtube.com": "youtube.com",
}

// counter tallies keys while remembering first-encounter order so top-N
// selection has a stable tie-break.
type counter struct {
	counts map[string]int
	order  []string
}

type entry struct {
	key   string
	count int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) empty() bool {
	return len(c.order) == 0
}

func (c *counter) total() int {
	sum := 0
	for _, n := range c.counts {
		sum += n
	}
	return sum
}

// top returns up to n entries by count descending, ties in first-seen order.
// A negative n returns everything.
func (c *counter) top(n int) []entry {
	entries := make([]entry, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, entry{key: key, count: c.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// emojiStats extracts every emoji character per message, order preserved and
// duplicates kept, and reports each author's top five. Authors without any
// emoji are omitted.
func (s *Service) emojiStats(table *model.Table) report.EmojiStats {
	perAuthor := make(map[string]*counter)
	for _, rec := range table.Records {
		for _, r := range rec.Message {
			if !s.emojis.IsEmoji(r) {
				continue
			}
			c := perAuthor[rec.Author]
			if c == nil {
				c = newCounter()
				perAuthor[rec.Author] = c
			}
			c.add(string(r))
		}
	}

	var byPerson []report.AuthorEmojis
	for _, author := range table.Participants() {
		c := perAuthor[author]
		if c == nil || c.empty() {
			continue
		}
		top := c.top(topEmojiCount)
		emojis := make([]report.EmojiCount, 0, len(top))
		for _, e := range top {
			emojis = append(emojis, report.EmojiCount{Emoji: e.key, Count: e.count})
		}
		byPerson = append(byPerson, report.AuthorEmojis{Author: author, TopEmojis: emojis})
	}
	return report.EmojiStats{ByPerson: byPerson}
}

// wordClouds reports each author's top tokens after punctuation stripping,
// lowercasing and stopword/short-token filtering. Every participant gets a
// row, even when nothing survives filtering.
func wordClouds(table *model.Table) []report.AuthorWords {
	messages := make(map[string][]string)
	for _, rec := range table.Records {
		messages[rec.Author] = append(messages[rec.Author], rec.Message)
	}

	participants := table.Participants()
	rows := make([]report.AuthorWords, 0, len(participants))
	for _, author := range participants {
		c := newCounter()
		for _, token := range tokenize(strings.Join(messages[author], " ")) {
			c.add(token)
		}

		top := c.top(topWordCount)
		words := make([]report.WordCount, 0, len(top))
		for _, e := range top {
			words = append(words, report.WordCount{Text: e.key, Value: e.count})
		}
		rows = append(rows, report.AuthorWords{Author: author, Words: words})
	}
	return rows
}

// domainStats reports each author's top shared-link domains. Malformed URLs
// are skipped silently. Authors without any link are omitted.
func domainStats(table *model.Table) []report.AuthorDomains {
	perAuthor := make(map[string]*counter)
	for _, rec := range table.Records {
		for _, domain := range extractDomains(rec.Message) {
			c := perAuthor[rec.Author]
			if c == nil {
				c = newCounter()
				perAuthor[rec.Author] = c
			}
			c.add(domain)
		}
	}

	var rows []report.AuthorDomains
	for _, author := range table.Participants() {
		c := perAuthor[author]
		if c == nil || c.empty() {
			continue
		}
		top := c.top(topDomainCount)
		domains := make([]report.DomainCount, 0, len(top))
		for _, e := range top {
			domains = append(domains, report.DomainCount{Domain: e.key, Count: e.count})
		}
		rows = append(rows, report.AuthorDomains{Author: author, Domains: domains})
	}
	return rows
}

func tokenize(text string) []string {
	cleaned := strings.ToLower(stripRunes(text, tokenPunctuation))
	var tokens []string
	for _, token := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(token) < minTokenRunes {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func extractDomains(text string) []string {
	var domains []string
	for _, raw := range urlPattern.FindAllString(text, -1) {
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		host := strings.ToLower(u.Hostname())
		host = strings.TrimPrefix(host, "www.")
		if canonical, ok := canonicalHosts[host]; ok {
			host = canonical
		}
		if host == "" {
			continue
		}
		domains = append(domains, host)
	}
	return domains
}

func stripRunes(s, cutset string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(cutset, r) {
			return -1
		}
		return r
	}, s)
}

package insights

import "strings"

// stopwordPunctuation is stripped when normalizing denylist entries: ASCII
// punctuation plus curly quotes, so "don't", "don’t" and "dont" all collapse.
const stopwordPunctuation = asciiPunctuation + "’‘“”"

// rawStopwords holds general English stopwords, contraction variants, chat
// noise (media placeholders) and corpus-specific high-frequency filler words.
// Entries are normalized once at init.
var rawStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he",
	"him", "his", "himself", "she", "she's", "her", "hers", "herself", "it",
	"it's", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "that'll", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being", "have", "has",
	"had", "having", "do", "does", "did", "doing", "a", "an", "the", "and",
	"but", "if", "or", "because", "as", "until", "while", "of", "at", "by",
	"for", "with", "about", "against", "between", "into", "through", "during",
	"before", "after", "above", "below", "to", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both",
	"each", "few", "more", "most", "other", "some", "such", "no", "nor", "not",
	"only", "own", "same", "so", "than", "too", "very", "s", "t", "can",
	"will", "just", "don", "don't", "should", "should've", "now", "d", "ll",
	"m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't",
	"didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't",
	"haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn",
	"mustn't", "needn", "needn't", "shan", "shan't", "shouldn", "shouldn't",
	"wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",

	// Chat noise: export placeholders for stripped media.
	"omitted", "media", "image", "video", "sticker", "gif",

	// Corpus-specific filler.
	"laura", "sean", "mark", "like", "yeah", "would", "got", "also",
	"actually", "get", "yes", "well", "really", "know", "dont", "bit",
	"thats", "could", "going", "one", "mark's", "see", "lot", "say", "said",
	"thought", "time", "much", "back", "i'm", "hes", "quite", "sure",
	"didnt", "want", "people", "thank", "still", "probably", "great",
	"thanks", "maybe", "make", "you're", "that's", "she's", "even", "need",
	"new", "looks", "he's", "first", "last", "ive", "i'll", "though",
	"think", "right", "come",
}

// Common contractions with the apostrophe already missing in the source text.
var bareContractions = []string{
	"im", "hes", "she", "shes", "its", "dont", "wont", "cant", "youre",
	"theyre", "weve", "youve",
}

var stopwords = buildStopwords()

func buildStopwords() map[string]struct{} {
	set := make(map[string]struct{}, len(rawStopwords)+len(bareContractions))
	for _, word := range rawStopwords {
		normalized := strings.ToLower(stripRunes(word, stopwordPunctuation))
		set[normalized] = struct{}{}
	}
	for _, word := range bareContractions {
		set[word] = struct{}{}
	}
	return set
}

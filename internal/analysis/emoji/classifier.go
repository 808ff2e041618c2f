package emoji

import "github.com/forPelevin/gomoji"

// Classifier reports whether a single rune is an emoji. Injected into the
// analytics pipeline so tests can run against a fixed character set.
type Classifier interface {
	IsEmoji(r rune) bool
}

// GomojiClassifier backs membership tests with the gomoji dataset.
type GomojiClassifier struct{}

// NewClassifier returns the dataset-backed classifier.
func NewClassifier() GomojiClassifier {
	return GomojiClassifier{}
}

// IsEmoji reports whether r is a known emoji character.
func (GomojiClassifier) IsEmoji(r rune) bool {
	_, err := gomoji.GetInfo(string(r))
	return err == nil
}

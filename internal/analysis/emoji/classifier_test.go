package emoji

import "testing"

func TestIsEmoji(t *testing.T) {
	c := NewClassifier()

	if !c.IsEmoji('😀') {
		t.Fatal("expected 😀 to be classified as emoji")
	}
	if !c.IsEmoji('🎉') {
		t.Fatal("expected 🎉 to be classified as emoji")
	}
	if c.IsEmoji('a') {
		t.Fatal("letter classified as emoji")
	}
	if c.IsEmoji('?') {
		t.Fatal("punctuation classified as emoji")
	}
}

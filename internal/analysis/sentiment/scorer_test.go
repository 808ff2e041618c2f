package sentiment

import "testing"

func TestCategorizeBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.05, Positive},
		{0.8, Positive},
		{0.049, Neutral},
		{0, Neutral},
		{-0.049, Neutral},
		{-0.05, Negative},
		{-0.8, Negative},
	}

	for _, tc := range cases {
		if got := Categorize(tc.score); got != tc.want {
			t.Fatalf("Categorize(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestVaderScorerOrdersPolarities(t *testing.T) {
	scorer := NewVaderScorer()

	happy := scorer.Score("this is wonderful, I love it")
	sad := scorer.Score("this is horrible, I hate it")

	if happy <= 0 {
		t.Fatalf("expected positive score, got %f", happy)
	}
	if sad >= 0 {
		t.Fatalf("expected negative score, got %f", sad)
	}
	if happy <= sad {
		t.Fatalf("expected %f > %f", happy, sad)
	}
}

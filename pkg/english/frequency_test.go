package english

import (
	"math"
	"testing"
)

func TestLetterFrequency(t *testing.T) {
	testCases := []struct {
		c    byte
		want float64
		ok   bool
	}{
		{'e', 0.127, true},
		{'E', 0.127, true},
		{'z', 0.00074, true},
		{'Q', 0.0012, true},
		{' ', 0, false},
		{'0', 0, false},
		{0xe9, 0, false},
	}

	for _, tc := range testCases {
		got, ok := LetterFrequency(tc.c)
		if got != tc.want || ok != tc.ok {
			t.Errorf("LetterFrequency(%q) = (%v, %v), want (%v, %v)", tc.c, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLetterFrequencySum(t *testing.T) {
	var sum float64
	for c := byte('a'); c <= 'z'; c++ {
		f, ok := LetterFrequency(c)
		if !ok {
			t.Fatalf("LetterFrequency(%q) not found", c)
		}
		sum += f
	}
	if math.Abs(sum-1.0) > 0.02 {
		t.Errorf("letter frequencies sum to %v, want about 1.0", sum)
	}
}

func TestFittingQuotient(t *testing.T) {
	got := FittingQuotient([]byte("Cooking MC's like a pound of bacon"))
	if math.Abs(got-0.027448823) > 1e-6 {
		t.Errorf("FittingQuotient = %v, want 0.027448823", got)
	}
}

func TestFittingQuotientCaseInsensitive(t *testing.T) {
	lower := FittingQuotient([]byte("the quick brown fox"))
	upper := FittingQuotient([]byte("THE QUICK BROWN FOX"))
	if lower != upper {
		t.Errorf("FittingQuotient differs by case: %v vs %v", lower, upper)
	}
}

func TestFittingQuotientOrdering(t *testing.T) {
	english := FittingQuotient([]byte("it was the best of times it was the worst of times"))
	noise := FittingQuotient([]byte{0x01, 0x8f, 0x13, 0x7f, 0x00, 0xfe, 0x22, 0x90, 0x04, 0x05})
	if english >= noise {
		t.Errorf("English text scored %v, noise scored %v; want English lower", english, noise)
	}
	if english < 0 || noise < 0 {
		t.Errorf("scores must be non-negative, got %v and %v", english, noise)
	}
}

func TestFittingQuotientEmpty(t *testing.T) {
	var sum float64
	for _, f := range letterFrequencies {
		sum += f
	}
	if got := FittingQuotient(nil); got != sum/alphabetSize {
		t.Errorf("FittingQuotient(nil) = %v, want %v", got, sum/alphabetSize)
	}
}

func TestPlausibleRatio(t *testing.T) {
	testCases := []struct {
		name      string
		in        string
		want      float64
		plausible bool
	}{
		{name: "letters and spaces", in: "Hello World", want: 1.0, plausible: true},
		{name: "apostrophe", in: "Cooking MC's like a pound of bacon", want: 33.0 / 34.0, plausible: true},
		{name: "digits", in: "ab12", want: 0.5, plausible: false},
		{name: "empty", in: "", want: 0, plausible: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PlausibleRatio([]byte(tc.in)); got != tc.want {
				t.Errorf("PlausibleRatio(%q) = %v, want %v", tc.in, got, tc.want)
			}
			if got := IsPlausible([]byte(tc.in), 0.95); got != tc.plausible {
				t.Errorf("IsPlausible(%q) = %v, want %v", tc.in, got, tc.plausible)
			}
		})
	}
}

package imageedit

import "testing"

func TestNormalizeAge(t *testing.T) {
	cases := []struct {
		name     string
		input    int
		expected int
	}{
		{"unset defaults", 0, 3},
		{"negative defaults", -2, 3},
		{"exact bucket 2", 2, 2},
		{"exact bucket 3", 3, 3},
		{"exact bucket 4", 4, 4},
		{"exact bucket 6", 6, 6},
		{"below range clamps up", 1, 2},
		{"midpoint rounds down", 5, 4},
		{"above range clamps down", 12, 6},
	}

	for _, tc := range cases {
		if got := NormalizeAge(tc.input); got != tc.expected {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.expected, got)
		}
	}
}

func TestBuildPromptWithBreed(t *testing.T) {
	got := BuildPrompt(3, "Labrador")
	want := "A cute 3-month-old Labrador puppy with big eyes, soft features, small size, playful appearance, fluffy fur, maintaining the same coat color and breed characteristics"
	if got != want {
		t.Fatalf("unexpected prompt:\n got %q\nwant %q", got, want)
	}
}

func TestBuildPromptWithoutBreed(t *testing.T) {
	got := BuildPrompt(2, "")
	want := "A cute 2-month-old puppy with big eyes, soft features, small size, playful appearance, fluffy fur, maintaining the same coat color and breed characteristics"
	if got != want {
		t.Fatalf("unexpected prompt:\n got %q\nwant %q", got, want)
	}
}

func TestSizeForQuality(t *testing.T) {
	if got := SizeForQuality("high"); got != SizeHigh {
		t.Fatalf("expected %s for high quality, got %s", SizeHigh, got)
	}
	if got := SizeForQuality("standard"); got != SizeStandard {
		t.Fatalf("expected %s for standard quality, got %s", SizeStandard, got)
	}
	if got := SizeForQuality(""); got != SizeStandard {
		t.Fatalf("expected %s for unknown quality, got %s", SizeStandard, got)
	}
}

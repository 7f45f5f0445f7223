package imageedit

import "fmt"

// DefaultAgeMonths is applied when a run starts without an explicit age.
const DefaultAgeMonths = 3

// ageBuckets are the supported target ages, ascending. Other inputs clamp
// to the nearest bucket; midpoints round down.
var ageBuckets = []int{2, 3, 4, 6}

// Size presets for the generated image.
const (
	SizeStandard = "512x512"
	SizeHigh     = "1024x1024"
)

// NormalizeAge maps any age in months onto the nearest supported bucket.
func NormalizeAge(months int) int {
	if months <= 0 {
		return DefaultAgeMonths
	}
	best := ageBuckets[0]
	bestDist := months - best
	if bestDist < 0 {
		bestDist = -bestDist
	}
	for _, b := range ageBuckets[1:] {
		dist := months - b
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best = b
			bestDist = dist
		}
	}
	return best
}

// BuildPrompt renders the generation prompt for the given age bucket and
// optional breed hint.
func BuildPrompt(ageMonths int, breed string) string {
	ageText := fmt.Sprintf("%d-month-old", NormalizeAge(ageMonths))
	breedText := ""
	if breed != "" {
		breedText = " " + breed
	}
	return fmt.Sprintf(
		"A cute %s%s puppy with big eyes, soft features, small size, playful appearance, fluffy fur, maintaining the same coat color and breed characteristics",
		ageText, breedText,
	)
}

// SizeForQuality maps the user's image quality preference to a canvas size.
func SizeForQuality(quality string) string {
	if quality == "high" {
		return SizeHigh
	}
	return SizeStandard
}

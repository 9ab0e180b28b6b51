// Package pricing implements the deterministic listing-assistant
// heuristics: a suggested price range from category, condition and
// brand, and canned description variants. There is no model behind
// these; they are fixed rules.
package pricing

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// premiumBrands get a price bump.
var premiumBrands = regexp.MustCompile(`(?i)(nike|adidas|apple|samsung|ray-ban)`)

// Suggestion is a suggested price range with a recommended value.
type Suggestion struct {
	Min         int     `json:"min"`
	Max         int     `json:"max"`
	Recommended float64 `json:"recommended"`
}

// SuggestPrice derives a price range from category, condition and brand.
func SuggestPrice(category, condition, brand string) Suggestion {
	base := 30.0
	switch category {
	case "Électronique":
		base = 150
	case "Chaussures":
		base = 50
	case "Accessoires":
		base = 25
	}

	switch condition {
	case "Neuf":
		base *= 1.5
	case "Très bon état":
		base *= 1.2
	case "Acceptable":
		base *= 0.7
	}

	if brand != "" && premiumBrands.MatchString(brand) {
		base *= 1.3
	}

	return Suggestion{
		Min:         int(math.Floor(base * 0.8)),
		Max:         int(math.Ceil(base * 1.2)),
		Recommended: math.Floor(base),
	}
}

// SuggestDescriptions returns canned description variants for a listing.
func SuggestDescriptions(title string) []string {
	return []string{
		fmt.Sprintf("%s en excellent état. Article de qualité parfait pour compléter votre garde-robe. Très confortable et élégant, idéal pour toutes les occasions.", title),
		fmt.Sprintf("Magnifique %s à vendre! Porté avec soin et en très bon état. Un incontournable pour les amateurs de mode qui recherchent qualité et style.", strings.ToLower(title)),
		fmt.Sprintf("%s comme neuf! Article tendance et intemporel qui saura vous séduire. Profitez de cette belle opportunité pour acquérir cet article à prix réduit.", title),
	}
}

package engine

import (
	"github.com/minaorangina/splendor/deck"
)

func parseColors(codes []string) ([]deck.Color, error) {
	colors := make([]deck.Color, 0, len(codes))
	for _, code := range codes {
		color, err := deck.ColorFromCode(code)
		if err != nil {
			return nil, err
		}
		colors = append(colors, color)
	}
	return colors, nil
}

func charsUnique(s string) bool {
	seen := map[rune]bool{}
	for _, c := range s {
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"frontdesk/dto"
)

// MinCategoryScore là điểm tối thiểu để một loại phòng được coi là khớp
const MinCategoryScore = 0.5

// Hàm chuẩn hóa chuỗi: bỏ dấu, chữ thường
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if n := len([]rune(b)); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// ResolveCategory ranks categories by how well their id or name matches the
// operator's free text ("phong doi", "Deluxe", "suite huong bien").
func ResolveCategory(query string, categories []dto.RoomCategoryResponse, limit int) []dto.CategoryMatch {
	q := normalizeInput(query)
	if q == "" || len(categories) == 0 {
		return nil
	}

	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, normalizeInput(cat.Name))
	}
	closest := closestmatch.New(names, []int{2, 3}).Closest(q)

	var matches []dto.CategoryMatch
	for i, cat := range categories {
		name := names[i]
		id := normalizeInput(cat.ID)

		score := calculateSimilarity(q, name)
		if s := calculateSimilarity(q, id); s > score {
			score = s
		}
		if name != "" && (strings.Contains(name, q) || strings.Contains(q, name)) {
			score += 0.3
		}
		if closest != "" && closest == name {
			score += 0.2
		}
		if id == q {
			score = 2
		}
		if score < MinCategoryScore {
			continue
		}
		matches = append(matches, dto.CategoryMatch{Category: cat, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Category.Name < matches[j].Category.Name
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

package compute

import (
	"sort"
	"strings"
)

// Параметры ранжирования
const (
	maxSearchResults = 50
	minSearchScore   = 0.1

	weightTitle       = 3.0
	weightDescription = 2.0
	weightCategory    = 1.5
)

// SearchFilters представляет собой фасетные фильтры поиска.
// Отсутствующее поле (nil) не накладывает ограничений.
type SearchFilters struct {
	Category *string  `json:"category,omitempty"`
	PriceMin *float64 `json:"priceMin,omitempty"`
	PriceMax *float64 `json:"priceMax,omitempty"`
	InStock  *bool    `json:"inStock,omitempty"`
}

// SearchPayload представляет собой полезную нагрузку задачи SEARCH_PRODUCTS
type SearchPayload struct {
	Products []Product     `json:"products"`
	Query    string        `json:"query"`
	Filters  SearchFilters `json:"filters"`
}

// SearchResult представляет собой товар с оценкой релевантности
type SearchResult struct {
	Product
	SearchScore float64 `json:"searchScore"`
}

// fuzzyMatch считает оценку жадного поиска подпоследовательности.
// Текст сканируется один раз слева направо; каждый символ текста,
// совпавший с текущим символом паттерна, продвигает курсор паттерна
// и добавляет очко. Если курсор не дошел до конца паттерна — 0,
// иначе matched/len(pattern), то есть всегда 1.0 при найденной
// подпоследовательности. Пустой паттерн считается найденным: 1.0.
func fuzzyMatch(text, pattern string) float64 {
	p := []rune(strings.ToLower(pattern))
	if len(p) == 0 {
		return 1.0
	}

	t := []rune(strings.ToLower(text))
	matched := 0
	pi := 0

	for ti := 0; ti < len(t) && pi < len(p); ti++ {
		if t[ti] == p[pi] {
			pi++
			matched++
		}
	}

	if pi < len(p) {
		return 0
	}
	return float64(matched) / float64(len(p))
}

// scoreProduct считает взвешенную оценку товара по всем текстовым полям.
// Отсутствующие опциональные поля — пустые строки.
func scoreProduct(product Product, query string) float64 {
	score := weightTitle * fuzzyMatch(product.Title, query)
	score += weightDescription * fuzzyMatch(product.Description, query)
	score += weightCategory * fuzzyMatch(product.Category, query)
	for _, tag := range product.Tags {
		score += fuzzyMatch(tag, query)
	}
	return score
}

// passesFilters проверяет товар по всем заданным фильтрам
func passesFilters(product Product, filters SearchFilters) bool {
	if filters.Category != nil && product.Category != *filters.Category {
		return false
	}
	if filters.PriceMin != nil && product.Price < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && product.Price > *filters.PriceMax {
		return false
	}
	if filters.InStock != nil && *filters.InStock && !product.InStock {
		return false
	}
	return true
}

// SearchProducts оценивает товары по запросу, отфильтровывает
// непрошедшие фасеты и слабые совпадения (score <= 0.1), сортирует
// по убыванию оценки (стабильно — ничьи сохраняют исходный порядок)
// и обрезает выдачу до 50 результатов
func SearchProducts(payload SearchPayload) []SearchResult {
	results := make([]SearchResult, 0, len(payload.Products))

	for _, product := range payload.Products {
		if !passesFilters(product, payload.Filters) {
			continue
		}
		score := scoreProduct(product, payload.Query)
		if score <= minSearchScore {
			continue
		}
		results = append(results, SearchResult{
			Product:     product,
			SearchScore: score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SearchScore > results[j].SearchScore
	})

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}

	return results
}

package compute

import (
	"fmt"
	"testing"
)

// TestFuzzyMatch проверяет жадный поиск подпоследовательности
func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    float64
	}{
		{
			name:    "Empty pattern",
			text:    "anything",
			pattern: "",
			want:    1.0,
		},
		{
			name:    "Pattern equals text",
			text:    "rose",
			pattern: "rose",
			want:    1.0,
		},
		{
			name:    "No match",
			text:    "abc",
			pattern: "xyz",
			want:    0,
		},
		{
			name:    "Subsequence match",
			text:    "fresh rose bouquet",
			pattern: "rsb",
			want:    1.0,
		},
		{
			name:    "Case insensitive",
			text:    "Rose Bouquet",
			pattern: "rose",
			want:    1.0,
		},
		{
			name:    "Partial pattern not a subsequence",
			text:    "rose",
			pattern: "roses",
			want:    0,
		},
		{
			name:    "Empty text non-empty pattern",
			text:    "",
			pattern: "a",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fuzzyMatch(tt.text, tt.pattern)
			if got != tt.want {
				t.Errorf("fuzzyMatch(%q, %q) = %v, want %v", tt.text, tt.pattern, got, tt.want)
			}
		})
	}
}

// TestScoreProduct проверяет взвешенную оценку по всем полям
func TestScoreProduct(t *testing.T) {
	product := Product{
		Title:       "rose",
		Description: "rose bouquet",
		Category:    "rose",
		Tags:        []string{"rose", "flower"},
	}

	// Запрос совпадает со всеми полями и одним тегом: 3 + 2 + 1.5 + 1
	got := scoreProduct(product, "rose")
	if got != 7.5 {
		t.Errorf("scoreProduct() = %v, want 7.5", got)
	}

	// Отсутствующие опциональные поля — пустые строки, очков не дают
	bare := Product{Title: "rose"}
	got = scoreProduct(bare, "rose")
	if got != 3 {
		t.Errorf("scoreProduct() for bare product = %v, want 3", got)
	}
}

// TestSearchProductsFilters проверяет фасетные фильтры
func TestSearchProductsFilters(t *testing.T) {
	floral := "Floral"
	succulents := "Succulents"
	priceMin := 15.0
	priceMax := 25.0
	inStock := true

	products := []Product{
		{ID: 1, Title: "Rose Bouquet", Category: "Floral", Price: 20, InStock: true},
		{ID: 2, Title: "Rose Basket", Category: "Succulents", Price: 20, InStock: true},
		{ID: 3, Title: "Rose Box", Category: "Floral", Price: 10, InStock: true},
		{ID: 4, Title: "Rose Crate", Category: "Floral", Price: 30, InStock: true},
		{ID: 5, Title: "Rose Pot", Category: "Floral", Price: 20, InStock: false},
	}

	tests := []struct {
		name    string
		filters SearchFilters
		wantIDs []int64
	}{
		{
			name:    "No filters",
			filters: SearchFilters{},
			wantIDs: []int64{1, 2, 3, 4, 5},
		},
		{
			name:    "Category filter",
			filters: SearchFilters{Category: &floral},
			wantIDs: []int64{1, 3, 4, 5},
		},
		{
			name:    "Category excludes all non-matching",
			filters: SearchFilters{Category: &succulents},
			wantIDs: []int64{2},
		},
		{
			name:    "Price range",
			filters: SearchFilters{PriceMin: &priceMin, PriceMax: &priceMax},
			wantIDs: []int64{1, 2, 5},
		},
		{
			name:    "In stock only",
			filters: SearchFilters{InStock: &inStock},
			wantIDs: []int64{1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := SearchProducts(SearchPayload{
				Products: products,
				Query:    "rose",
				Filters:  tt.filters,
			})

			gotIDs := make(map[int64]bool, len(results))
			for _, r := range results {
				gotIDs[r.ID] = true
			}

			if len(results) != len(tt.wantIDs) {
				t.Fatalf("SearchProducts() returned %d results, want %d", len(results), len(tt.wantIDs))
			}
			for _, id := range tt.wantIDs {
				if !gotIDs[id] {
					t.Errorf("product %d missing from results", id)
				}
			}
		})
	}
}

// TestSearchProductsRanking проверяет сортировку по убыванию оценки,
// стабильность при равных оценках и порог слабых совпадений
func TestSearchProductsRanking(t *testing.T) {
	products := []Product{
		{ID: 1, Title: "fern"},                             // запрос не подпоследовательность
		{ID: 2, Title: "rose"},                             // только заголовок: 3
		{ID: 3, Title: "rose", Description: "rose garden"}, // заголовок + описание: 5
		{ID: 4, Title: "rose"},                             // ничья с товаром 2
	}

	results := SearchProducts(SearchPayload{Products: products, Query: "rose"})

	if len(results) != 3 {
		t.Fatalf("SearchProducts() returned %d results, want 3", len(results))
	}

	// Невозрастающий порядок оценок
	for i := 1; i < len(results); i++ {
		if results[i].SearchScore > results[i-1].SearchScore {
			t.Errorf("results not sorted: score[%d]=%v > score[%d]=%v",
				i, results[i].SearchScore, i-1, results[i-1].SearchScore)
		}
	}

	if results[0].ID != 3 {
		t.Errorf("best match id = %d, want 3", results[0].ID)
	}

	// Стабильность: при равной оценке сохраняется входной порядок
	if results[1].ID != 2 || results[2].ID != 4 {
		t.Errorf("tie order = %d, %d, want 2, 4", results[1].ID, results[2].ID)
	}

	// Слабые совпадения (оценка <= 0.1) отбрасываются
	for _, r := range results {
		if r.SearchScore <= 0.1 {
			t.Errorf("result %d has score %v <= 0.1", r.ID, r.SearchScore)
		}
	}
}

// TestSearchProductsLimit проверяет обрезку выдачи до 50 результатов
func TestSearchProductsLimit(t *testing.T) {
	products := make([]Product, 120)
	for i := range products {
		products[i] = Product{ID: int64(i + 1), Title: fmt.Sprintf("rose %d", i)}
	}

	results := SearchProducts(SearchPayload{Products: products, Query: "rose"})

	if len(results) != 50 {
		t.Errorf("SearchProducts() returned %d results, want 50", len(results))
	}
}

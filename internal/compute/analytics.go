package compute

import "time"

// AnalyticsPayload представляет собой полезную нагрузку задачи CALCULATE_ANALYTICS
type AnalyticsPayload struct {
	Orders    []Order   `json:"orders"`
	Products  []Product `json:"products"`
	TimeRange TimeRange `json:"timeRange"`
}

// ProductAnalytics представляет собой метрики продаж одного товара
type ProductAnalytics struct {
	TotalSold      int     `json:"totalSold"`
	Revenue        float64 `json:"revenue"`
	ConversionRate float64 `json:"conversionRate"`
	AvgOrderValue  float64 `json:"avgOrderValue"`
}

// ProductPerformance представляет собой товар, расширенный метриками продаж
type ProductPerformance struct {
	Product
	Analytics ProductAnalytics `json:"analytics"`
}

// CustomerInsights представляет собой агрегаты по покупателям.
// Считаются по полному набору заказов, без учета временного окна.
type CustomerInsights struct {
	TotalCustomers  int            `json:"totalCustomers"`
	RepeatCustomers map[string]int `json:"repeatCustomers"`
	AvgOrderValue   float64        `json:"avgOrderValue"`
}

// AnalyticsResult представляет собой итог задачи CALCULATE_ANALYTICS
type AnalyticsResult struct {
	Revenue            float64              `json:"revenue"`
	ProductPerformance []ProductPerformance `json:"productPerformance"`
	CustomerInsights   CustomerInsights     `json:"customerInsights"`
	CalculatedAt       int64                `json:"calculatedAt"`
}

// windowedRevenue суммирует order.total по заказам, попавшим в окно
func windowedRevenue(orders []Order, tr TimeRange) float64 {
	revenue := 0.0
	for _, order := range orders {
		if tr.Contains(order.Date) {
			revenue += order.Total
		}
	}
	return revenue
}

// productPerformance считает метрики продаж для каждого товара.
// Из каждого заказа учитывается только ПЕРВАЯ позиция с нужным товаром:
// заказ с дублирующимися позициями одного товара вносит только первую.
func productPerformance(products []Product, orders []Order) []ProductPerformance {
	performance := make([]ProductPerformance, 0, len(products))

	for _, product := range products {
		totalSold := 0
		revenue := 0.0

		for _, order := range orders {
			for _, item := range order.Items {
				if item.ProductID == product.ID {
					totalSold += item.Quantity
					revenue += item.Price * float64(item.Quantity)
					break
				}
			}
		}

		views := product.Views
		if views < 1 {
			views = 1
		}
		soldDivisor := totalSold
		if soldDivisor < 1 {
			soldDivisor = 1
		}

		performance = append(performance, ProductPerformance{
			Product: product,
			Analytics: ProductAnalytics{
				TotalSold:      totalSold,
				Revenue:        revenue,
				ConversionRate: float64(totalSold) / float64(views),
				AvgOrderValue:  revenue / float64(soldDivisor),
			},
		})
	}

	return performance
}

// customerInsights считает агрегаты по покупателям за весь набор заказов.
// Глобальный avgOrderValue делит выручку за окно на число ВСЕХ заказов.
func customerInsights(orders []Order, revenue float64) CustomerInsights {
	repeatCustomers := make(map[string]int)
	for _, order := range orders {
		repeatCustomers[order.CustomerID]++
	}

	avgOrderValue := 0.0
	if len(orders) > 0 {
		avgOrderValue = revenue / float64(len(orders))
	}

	return CustomerInsights{
		TotalCustomers:  len(repeatCustomers),
		RepeatCustomers: repeatCustomers,
		AvgOrderValue:   avgOrderValue,
	}
}

// CalculateAnalytics считает выручку за окно, метрики по товарам
// и агрегаты по покупателям
func CalculateAnalytics(payload AnalyticsPayload) AnalyticsResult {
	revenue := windowedRevenue(payload.Orders, payload.TimeRange)

	return AnalyticsResult{
		Revenue:            revenue,
		ProductPerformance: productPerformance(payload.Products, payload.Orders),
		CustomerInsights:   customerInsights(payload.Orders, revenue),
		CalculatedAt:       time.Now().UnixMilli(),
	}
}

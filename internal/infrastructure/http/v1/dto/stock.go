package dto

import "bakhaar/internal/domain/inventory"

// StockRow is one reconstructed stock position.
type StockRow struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int64  `json:"quantity"`
}

// StockResponse contains the full reconstructed stock state.
type StockResponse struct {
	Rows  []StockRow `json:"rows"`
	Total int64      `json:"total"`
}

// FromStock creates StockResponse from reconstructed state.
func FromStock(s inventory.Stock) StockResponse {
	rows := s.Rows()
	out := make([]StockRow, len(rows))
	for i, r := range rows {
		out[i] = StockRow{Name: r.Name, Category: r.Category, Quantity: r.Quantity}
	}
	return StockResponse{Rows: out, Total: s.Total()}
}

package domain

// OrderReportRow is one order in the sales report.
type OrderReportRow struct {
	ID               string  `json:"_id"`
	CustomerName     string  `json:"customerName,omitempty"`
	CreatedAt        string  `json:"creation_date,omitempty"`
	TotalQuantity    int     `json:"totalQuantity"`
	TotalImportPrice float64 `json:"totalImportPrice"`
	TotalPrice       float64 `json:"totalPrice"`
	PaymentPrice     float64 `json:"paymentPrice"`
	Profit           float64 `json:"profit"`
	ProfitMargin     float64 `json:"profitMargin,omitempty"`
}

// ProductReportRow is one product in the product sales report.
type ProductReportRow struct {
	ProductID        string  `json:"productId,omitempty"`
	Name             string  `json:"name"`
	Brand            string  `json:"brand,omitempty"`
	QuantitySold     int     `json:"quantitySold"`
	TotalImportPrice float64 `json:"totalImportPrice"`
	TotalPrice       float64 `json:"totalPrice"`
	Profit           float64 `json:"profit"`
	ProfitMargin     float64 `json:"profitMargin,omitempty"`
}

// ReportTotals aggregates a report window.
type ReportTotals struct {
	Quantity     int     `json:"quantity"`
	ImportPrice  float64 `json:"import_price"`
	Retail       float64 `json:"retail"`
	Payment      float64 `json:"payment"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

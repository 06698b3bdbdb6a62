package dto

// FinanceReportResponse is the API shape of the financial summary
type FinanceReportResponse struct {
	SpaName       string  `json:"spa_name"`
	Currency      string  `json:"currency"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	ProfitMargin  float64 `json:"profit_margin_percent"`
	Status        string  `json:"status"`
	Efficiency    string  `json:"efficiency"`
	GeneratedAt   string  `json:"generated_at"`
}

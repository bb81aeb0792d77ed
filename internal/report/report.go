package report

// MonthlyReport is one year's revenue/expense series, twelve buckets in
// calendar order.
type MonthlyReport struct {
	Year   int            `json:"year"`
	Months []MonthlyTotal `json:"months"`
}

// MonthlyTotal aggregates one month of the ledger.
type MonthlyTotal struct {
	Month   int   `json:"month"`
	Revenue int64 `json:"revenue"`
	Expense int64 `json:"expense"`
	Net     int64 `json:"net"`
}

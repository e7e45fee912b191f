package domain

// Transaction is a directed transfer between two contractors.
// Amount is in minor currency units (cents), never floating point.
type Transaction struct {
	ID          string           `json:"id"`
	Date        string           `json:"date"`
	AccountFrom string           `json:"account_from"`
	AccountTo   string           `json:"account_to"`
	Amount      int64            `json:"amount"`
	State       TransactionState `json:"state"`
	CreatedAt   string           `json:"created_at"`
}

// TransactionWithContractors is a read-time join of a transaction with both
// contractor records. It is composed on read and never persisted.
type TransactionWithContractors struct {
	Transaction
	ContractorFrom Contractor `json:"contractor_from"`
	ContractorTo   Contractor `json:"contractor_to"`
}

// Summary aggregates the ledger per state for the home dashboard.
type Summary struct {
	Total   int64            `json:"total"`
	Count   int64            `json:"count"`
	ByState map[string]int64 `json:"by_state"`
	Amounts map[string]int64 `json:"amounts"`
}

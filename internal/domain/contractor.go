package domain

// Contractor is a counterparty that can send or receive funds.
// Contractors are seeded externally and read-only from this service.
type Contractor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	CreatedAt string `json:"created_at"`
}

package entities

// ChargeStatus mirrors the provider payment status vocabulary.
type ChargeStatus string

const (
	ChargeStatusApproved ChargeStatus = "approved"
	ChargeStatusPending  ChargeStatus = "pending"
	ChargeStatusRejected ChargeStatus = "rejected"
)

// ChargeRequest is what the checkout asks the payment gateway to collect.
type ChargeRequest struct {
	Amount            float64
	Description       string
	PayerEmail        string
	ExternalReference string
	Card              *PaymentInfo
}

type ChargeResult struct {
	ProviderPaymentID string
	Status            ChargeStatus
}

package model

// PaymentAccountType enumerates the supported manual payment rails.
type PaymentAccountType string

const (
	PaymentAccountPayoneer PaymentAccountType = "payoneer"
	PaymentAccountPayPal   PaymentAccountType = "paypal"
	PaymentAccountBank     PaymentAccountType = "bank"
)

// PaymentAccount is an admin-managed destination shown to the payer at
// checkout. Verification of payments sent to it is manual.
type PaymentAccount struct {
	ID           string             `json:"id"`
	Type         PaymentAccountType `json:"type"`
	Name         string             `json:"name"`
	Identifier   string             `json:"identifier"`
	Instructions string             `json:"instructions"`
}

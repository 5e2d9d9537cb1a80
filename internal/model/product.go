package model

// Product is a shop item. Price is a currency-less numeral kept as a string,
// matching the stored document shape.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

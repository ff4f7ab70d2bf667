package model

// OrderRequest is the quote form. Quantity is free text and optional;
// there is no currency or number parsing anywhere in the flow.
type OrderRequest struct {
	Name     string `json:"name"`
	Service  string `json:"service"`
	Quantity string `json:"quantity"`
	Details  string `json:"details"`
}

// OrderLink is the prepared WhatsApp handoff.
type OrderLink struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

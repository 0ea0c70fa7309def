package domain

// Customer is captured once per session and used only as a label.
type Customer struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Address string `json:"address"`
}

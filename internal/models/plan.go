package models

type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Popular  bool     `json:"popular,omitempty"`
	Features []string `json:"features"`
}

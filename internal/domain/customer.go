package domain

type Customer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

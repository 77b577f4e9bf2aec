package models

type PropertyType struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

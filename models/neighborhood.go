package models

type Neighborhood struct {
	ID    int    `json:"id,omitempty"`
	Name  string `json:"nome"`
	City  string `json:"cidade"`
	State string `json:"estado"`
}

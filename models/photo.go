package models

// Photo carries a nested Property on the wire because the backend returns the
// full photo collection unfiltered; PropertyID resolves the reference safely.
type Photo struct {
	ID       int       `json:"id,omitempty"`
	Path     string    `json:"caminho"`
	FileName string    `json:"nomeArquivo"`
	Cover    bool      `json:"capa"`
	Order    int       `json:"ordem"`
	Property *Property `json:"imovel"`
}

func (p Photo) PropertyID() int {
	if p.Property == nil {
		return 0
	}
	return p.Property.ID
}

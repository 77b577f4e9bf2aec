package models

// Purpose values the backend uses for finalidade. Aluguel selects the rent
// price on display, everything else the sale price.
const (
	PurposeRent        = "Aluguel"
	PurposeResidential = "Residencial"
	PurposeCommercial  = "Comercial"
)

type Property struct {
	ID           int           `json:"id,omitempty"`
	Title        string        `json:"titulo"`
	SalePrice    float64       `json:"precoVenda"`
	RentPrice    float64       `json:"precoAluguel"`
	Purpose      string        `json:"finalidade"`
	Status       string        `json:"status"`
	Bedrooms     int           `json:"dormitorios"`
	Bathrooms    int           `json:"banheiros"`
	Garage       int           `json:"garagem"`
	TotalArea    float64       `json:"areaTotal"`
	BuiltArea    float64       `json:"areaConstruida"`
	Street       string        `json:"endereco"`
	Number       string        `json:"numero"`
	Complement   string        `json:"complemento"`
	ZipCode      string        `json:"cep"`
	Description  string        `json:"descricao"`
	Features     string        `json:"caracteristicas"`
	Featured     bool          `json:"destaque"`
	Neighborhood *Neighborhood `json:"bairro"`
	Type         *PropertyType `json:"tipoImovel"`
}

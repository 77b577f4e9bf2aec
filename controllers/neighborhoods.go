package controllers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/nipia/imobiliaria-dashboard/backend"
	"github.com/nipia/imobiliaria-dashboard/models"
	"github.com/nipia/imobiliaria-dashboard/toast"
	"github.com/nipia/imobiliaria-dashboard/views"
)

func Neighborhoods(store *backend.Store, v *views.Views, flash *toast.Queue) *Crud[models.Neighborhood] {
	return &Crud[models.Neighborhood]{
		Title:  "Bairros",
		Slug:   "bairros",
		Views:  v,
		Flash:  flash,
		Fetch:  store.ListNeighborhoods,
		ItemID: func(n models.Neighborhood) string { return strconv.Itoa(n.ID) },
		Decode: decodeNeighborhood,
		Create: store.CreateNeighborhood,
		Update: store.UpdateNeighborhood,
		Remove: store.DeleteNeighborhood,
		Msg: Messages{
			LoadError:     "Erro ao carregar bairros. Tente novamente.",
			CreateSuccess: "Bairro cadastrado com sucesso!",
			UpdateSuccess: "Bairro atualizado com sucesso!",
			SaveError:     "Erro ao salvar bairro. Tente novamente.",
			DeleteSuccess: "Bairro excluído com sucesso!",
			DeleteError:   "Erro ao excluir bairro. Tente novamente.",
		},
	}
}

func decodeNeighborhood(form url.Values) (models.Neighborhood, []string) {
	id, _ := strconv.Atoi(form.Get("id"))
	n := models.Neighborhood{
		ID:    id,
		Name:  strings.TrimSpace(form.Get("nome")),
		City:  strings.TrimSpace(form.Get("cidade")),
		State: strings.TrimSpace(form.Get("estado")),
	}

	var missing []string
	if n.Name == "" {
		missing = append(missing, "O campo Nome do Bairro é obrigatório")
	}
	if n.City == "" {
		missing = append(missing, "O campo Cidade é obrigatório")
	}
	if n.State == "" {
		missing = append(missing, "O campo Estado é obrigatório")
	}
	return n, missing
}

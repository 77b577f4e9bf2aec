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

func PropertyTypes(store *backend.Store, v *views.Views, flash *toast.Queue) *Crud[models.PropertyType] {
	return &Crud[models.PropertyType]{
		Title:  "Tipos de Imóveis",
		Slug:   "tipos",
		Views:  v,
		Flash:  flash,
		Fetch:  store.ListPropertyTypes,
		ItemID: func(t models.PropertyType) string { return strconv.Itoa(t.ID) },
		Decode: decodePropertyType,
		Create: store.CreatePropertyType,
		Update: store.UpdatePropertyType,
		Remove: store.DeletePropertyType,
		Msg: Messages{
			LoadError:     "Erro ao carregar tipos de imóveis. Tente novamente.",
			CreateSuccess: "Tipo de imóvel cadastrado com sucesso!",
			UpdateSuccess: "Tipo de imóvel atualizado com sucesso!",
			SaveError:     "Erro ao salvar tipo de imóvel. Tente novamente.",
			DeleteSuccess: "Tipo de imóvel excluído com sucesso!",
			DeleteError:   "Erro ao excluir tipo de imóvel. Tente novamente.",
		},
	}
}

func decodePropertyType(form url.Values) (models.PropertyType, []string) {
	id, _ := strconv.Atoi(form.Get("id"))
	t := models.PropertyType{
		ID:          id,
		Name:        strings.TrimSpace(form.Get("nome")),
		Description: strings.TrimSpace(form.Get("descricao")),
	}

	var missing []string
	if t.Name == "" {
		missing = append(missing, "O campo Nome é obrigatório")
	}
	return t, missing
}

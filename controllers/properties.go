package controllers

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nipia/imobiliaria-dashboard/backend"
	"github.com/nipia/imobiliaria-dashboard/catalog"
	"github.com/nipia/imobiliaria-dashboard/models"
	"github.com/nipia/imobiliaria-dashboard/toast"
	"github.com/nipia/imobiliaria-dashboard/views"
)

// PropertyController shares the generic form/save/delete machinery but owns
// its list: the cards need the photo collection too, and both reads go out
// together the way the public pages load.
type PropertyController struct {
	*Crud[models.Property]
	store *backend.Store
}

func Properties(store *backend.Store, v *views.Views, flash *toast.Queue) *PropertyController {
	crud := &Crud[models.Property]{
		Title:  "Imóveis",
		Slug:   "imoveis",
		Views:  v,
		Flash:  flash,
		Fetch:  store.ListProperties,
		ItemID: func(p models.Property) string { return strconv.Itoa(p.ID) },
		NewItem: func() models.Property {
			return models.Property{Purpose: models.PurposeResidential, Status: "Ativo"}
		},
		FormView: func(ctx context.Context) (map[string]any, error) {
			var neighborhoods []models.Neighborhood
			var types []models.PropertyType
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				neighborhoods, err = store.ListNeighborhoods(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				types, err = store.ListPropertyTypes(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}
			return map[string]any{"Bairros": neighborhoods, "Tipos": types}, nil
		},
		Decode: decodeProperty,
		Create: store.CreateProperty,
		Update: store.UpdateProperty,
		Remove: store.DeleteProperty,
		Msg: Messages{
			LoadError:     "Erro ao carregar dados. Tente novamente.",
			CreateSuccess: "Imóvel cadastrado com sucesso!",
			UpdateSuccess: "Imóvel atualizado com sucesso!",
			SaveError:     "Erro ao salvar imóvel. Verifique os dados e tente novamente.",
			DeleteSuccess: "Imóvel excluído com sucesso!",
			DeleteError:   "Erro ao excluir imóvel. Tente novamente.",
		},
	}
	return &PropertyController{Crud: crud, store: store}
}

// List replaces the generic handler so the property and photo fetches are
// issued concurrently.
func (p *PropertyController) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes := p.Flash.Pop(w, r)

		var properties []models.Property
		var photos []models.Photo
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			var err error
			properties, err = p.store.ListProperties(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			photos, err = p.store.ListPhotos(ctx)
			return err
		})

		var data any
		if err := g.Wait(); err != nil {
			log.Printf("Error loading imoveis: %v", err)
			notes = append(notes, toast.Toast{Type: toast.TypeError, Message: p.Msg.LoadError})
		} else {
			data = catalog.Summaries(properties, photos)
		}
		p.Views.Render(w, "imoveis_list", p.page(r, notes, data))
	}
}

func decodeProperty(form url.Values) (models.Property, []string) {
	id, _ := strconv.Atoi(form.Get("id"))
	p := models.Property{
		ID:          id,
		Title:       strings.TrimSpace(form.Get("titulo")),
		SalePrice:   formFloat(form, "precoVenda"),
		RentPrice:   formFloat(form, "precoAluguel"),
		Purpose:     form.Get("finalidade"),
		Status:      form.Get("status"),
		Bedrooms:    formInt(form, "dormitorios"),
		Bathrooms:   formInt(form, "banheiros"),
		Garage:      formInt(form, "garagem"),
		TotalArea:   formFloat(form, "areaTotal"),
		BuiltArea:   formFloat(form, "areaConstruida"),
		Street:      strings.TrimSpace(form.Get("endereco")),
		Number:      strings.TrimSpace(form.Get("numero")),
		Complement:  strings.TrimSpace(form.Get("complemento")),
		ZipCode:     strings.TrimSpace(form.Get("cep")),
		Description: form.Get("descricao"),
		Features:    form.Get("caracteristicas"),
		Featured:    form.Get("destaque") == "true",
	}
	if bairroID, err := strconv.Atoi(form.Get("bairroId")); err == nil && bairroID > 0 {
		p.Neighborhood = &models.Neighborhood{ID: bairroID}
	}
	if tipoID, err := strconv.Atoi(form.Get("tipoId")); err == nil && tipoID > 0 {
		p.Type = &models.PropertyType{ID: tipoID}
	}

	var missing []string
	if p.Title == "" {
		missing = append(missing, "O campo Título é obrigatório")
	}
	if p.Purpose == "" {
		missing = append(missing, "Selecione uma Finalidade")
	}
	if p.Status == "" {
		missing = append(missing, "Selecione um Status")
	}
	return p, missing
}

func formFloat(form url.Values, key string) float64 {
	v, _ := strconv.ParseFloat(form.Get(key), 64)
	return v
}

func formInt(form url.Values, key string) int {
	v, _ := strconv.Atoi(form.Get(key))
	return v
}

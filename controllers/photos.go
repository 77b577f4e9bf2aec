package controllers

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nipia/imobiliaria-dashboard/backend"
	"github.com/nipia/imobiliaria-dashboard/models"
	"github.com/nipia/imobiliaria-dashboard/toast"
	"github.com/nipia/imobiliaria-dashboard/views"
)

const maxUploadSize = 5 << 20 // matches the backend's 5MB image limit

// PhotoController shares the generic list/edit/delete machinery but owns its
// save path: a new photo is a multipart upload, not a JSON create.
type PhotoController struct {
	*Crud[models.Photo]
	store *backend.Store
}

func Photos(store *backend.Store, v *views.Views, flash *toast.Queue) *PhotoController {
	crud := &Crud[models.Photo]{
		Title:   "Galeria de Fotos",
		Slug:    "fotos",
		Views:   v,
		Flash:   flash,
		Fetch:   store.ListPhotos,
		ItemID:  func(f models.Photo) string { return strconv.Itoa(f.ID) },
		NewItem: func() models.Photo { return models.Photo{Order: 1} },
		ListView: func(ctx context.Context, photos []models.Photo) (any, error) {
			// hide photos whose property no longer exists
			properties, err := store.ListProperties(ctx)
			if err != nil {
				return nil, err
			}
			known := make(map[int]bool, len(properties))
			for _, p := range properties {
				known[p.ID] = true
			}
			visible := make([]models.Photo, 0, len(photos))
			for _, f := range photos {
				if known[f.PropertyID()] {
					visible = append(visible, f)
				}
			}
			return visible, nil
		},
		FormView: func(ctx context.Context) (map[string]any, error) {
			properties, err := store.ListProperties(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"Imoveis": properties}, nil
		},
		Decode: decodePhoto,
		Update: store.UpdatePhoto,
		Remove: store.DeletePhoto,
		Msg: Messages{
			LoadError:     "Erro ao carregar dados. Tente novamente.",
			CreateSuccess: "Foto enviada com sucesso!",
			UpdateSuccess: "Foto atualizada com sucesso!",
			SaveError:     "Erro ao salvar foto. Tente novamente.",
			DeleteSuccess: "Foto excluída com sucesso!",
			DeleteError:   "Erro ao excluir foto. Tente novamente.",
		},
	}
	return &PhotoController{Crud: crud, store: store}
}

// Save replaces the generic handler. Edits keep the stored image and only
// update metadata; creates require a selected file and stream it to the
// backend's upload endpoint.
func (p *PhotoController) Save() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			http.Error(w, "Formulário inválido", http.StatusBadRequest)
			return
		}
		id := r.PostForm.Get("id")

		caps := capsFor(r)
		if (id == "" && !caps.CanCreate) || (id != "" && !caps.CanEdit) {
			http.Error(w, "Sem permissão", http.StatusForbidden)
			return
		}

		item, missing := decodePhoto(r.PostForm)

		if id != "" {
			if len(missing) > 0 {
				p.renderForm(w, r, []toast.Toast{{Type: toast.TypeError, Message: missing[0]}}, item, false)
				return
			}
			if err := p.store.UpdatePhoto(r.Context(), id, item); err != nil {
				log.Printf("Error updating photo %s: %v", id, err)
				p.renderForm(w, r, []toast.Toast{{Type: toast.TypeError, Message: p.Msg.SaveError}}, item, false)
				return
			}
			p.Flash.Push(w, r, toast.TypeSuccess, p.Msg.UpdateSuccess)
			http.Redirect(w, r, "/fotos", http.StatusSeeOther)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			missing = append([]string{"Selecione uma imagem para upload"}, missing...)
		} else {
			defer file.Close()
		}
		if len(missing) > 0 {
			p.renderForm(w, r, []toast.Toast{{Type: toast.TypeError, Message: missing[0]}}, item, true)
			return
		}

		propertyID := r.PostForm.Get("imovelId")
		if err := p.store.UploadPhoto(r.Context(), file, header.Filename, propertyID, item.Cover, item.Order); err != nil {
			log.Printf("Error uploading photo: %v", err)
			p.renderForm(w, r, []toast.Toast{{Type: toast.TypeError, Message: p.Msg.SaveError}}, item, true)
			return
		}
		p.Flash.Push(w, r, toast.TypeSuccess, p.Msg.CreateSuccess)
		http.Redirect(w, r, "/fotos", http.StatusSeeOther)
	}
}

func decodePhoto(form url.Values) (models.Photo, []string) {
	id, _ := strconv.Atoi(form.Get("id"))
	order, _ := strconv.Atoi(form.Get("ordem"))
	f := models.Photo{
		ID:       id,
		Cover:    form.Get("capa") == "true",
		Order:    order,
		Path:     form.Get("caminho"),
		FileName: form.Get("nomeArquivo"),
	}
	if propertyID, err := strconv.Atoi(form.Get("imovelId")); err == nil && propertyID > 0 {
		f.Property = &models.Property{ID: propertyID}
	}

	var missing []string
	if f.Property == nil {
		missing = append(missing, "Selecione um imóvel")
	}
	return f, missing
}

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

func Users(store *backend.Store, v *views.Views, flash *toast.Queue) *Crud[models.User] {
	return &Crud[models.User]{
		Title:  "Usuários",
		Slug:   "usuarios",
		Views:  v,
		Flash:  flash,
		Fetch:  store.ListUsers,
		ItemID: func(u models.User) string { return strconv.Itoa(u.ID) },
		Decode: decodeUser,
		Create: store.CreateUser,
		Update: store.UpdateUser,
		Remove: store.DeleteUser,
		Msg: Messages{
			LoadError:     "Erro ao carregar usuários. Tente novamente.",
			CreateSuccess: "Usuário cadastrado com sucesso!",
			UpdateSuccess: "Usuário atualizado com sucesso!",
			SaveError:     "Erro ao salvar usuário. Verifique os dados e tente novamente.",
			DeleteSuccess: "Usuário excluído com sucesso!",
			DeleteError:   "Erro ao excluir usuário. Tente novamente.",
		},
	}
}

func decodeUser(form url.Values) (models.User, []string) {
	id, _ := strconv.Atoi(form.Get("id"))
	user := models.User{
		ID:       id,
		Name:     strings.TrimSpace(form.Get("nome")),
		Email:    strings.TrimSpace(form.Get("email")),
		Password: form.Get("senha"),
		Role:     form.Get("role"),
	}

	var missing []string
	if user.Name == "" {
		missing = append(missing, "O campo Nome é obrigatório")
	}
	if user.Email == "" {
		missing = append(missing, "O campo Email é obrigatório")
	}
	if id == 0 && strings.TrimSpace(user.Password) == "" {
		missing = append(missing, "O campo Senha é obrigatório")
	}
	if user.Role == "" {
		missing = append(missing, "Selecione um Tipo de usuário")
	}
	return user, missing
}

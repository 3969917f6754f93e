package handlers

import (
	"fmt"
	"net/http"

	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/middleware"
	"github.com/diewo77/painel/internal/resources"
	"github.com/diewo77/painel/validation"
)

// Routable registers its screens on a mux. wrap guards each route.
type Routable interface {
	Routes(mux *http.ServeMux, wrap func(http.Handler) http.Handler)
}

// ResourceHandler serves the list, form and delete screens of one resource.
type ResourceHandler[T any, PT resources.Model[T]] struct {
	res *resources.Resource[T, PT]
	api *api.Client
}

func NewResourceHandler[T any, PT resources.Model[T]](res *resources.Resource[T, PT], c *api.Client) *ResourceHandler[T, PT] {
	return &ResourceHandler[T, PT]{res: res, api: c}
}

func (h *ResourceHandler[T, PT]) Routes(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	p := h.res.Path()
	mux.Handle("GET "+p, wrap(http.HandlerFunc(h.List)))
	mux.Handle("GET "+p+"/cadastrar", wrap(http.HandlerFunc(h.New)))
	mux.Handle("POST "+p+"/cadastrar", wrap(http.HandlerFunc(h.Create)))
	mux.Handle("GET "+p+"/editar/{id}", wrap(http.HandlerFunc(h.Edit)))
	mux.Handle("POST "+p+"/editar/{id}", wrap(http.HandlerFunc(h.Update)))
	mux.Handle("GET "+p+"/deletar/{id}", wrap(http.HandlerFunc(h.ConfirmDelete)))
	mux.Handle("POST "+p+"/deletar/{id}", wrap(http.HandlerFunc(h.Delete)))
}

// List requests exactly one page from the backend and renders it. A failed
// fetch shows the resource's error notice over an empty table.
func (h *ResourceHandler[T, PT]) List(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	data := map[string]any{
		"Resource": h.res,
		"Headers":  h.res.Headers(),
		"Page":     page,
	}
	p, err := h.res.List(r.Context(), clientFor(h.api, r), page)
	if err != nil {
		middleware.LoggerFrom(r.Context()).WithError(err).WithField("resource", h.res.Name()).Warn("list failed")
		data["Notice"] = notice(middleware.NoticeError, h.res.Msg("fetch_error"))
		data["Rows"] = []resources.Row{}
		data["Total"] = 0
		data["Pages"] = 0
		render(w, r, http.StatusOK, "list.html", data)
		return
	}
	data["Rows"] = h.res.Rows(p.Items, translator(r))
	data["Total"] = p.Total
	data["Pages"] = p.Pages()
	render(w, r, http.StatusOK, "list.html", data)
}

func (h *ResourceHandler[T, PT]) formData(creating bool, action string, values map[string]string, v validation.Violations) map[string]any {
	title := h.res.Msg("edit_title")
	if creating {
		title = h.res.Msg("new_title")
	}
	if v == nil {
		v = validation.Violations{}
	}
	return map[string]any{
		"Resource": h.res,
		"TitleKey": title,
		"Creating": creating,
		"Action":   action,
		"Fields":   h.res.Fields,
		"Values":   values,
		"Errors":   v,
	}
}

func (h *ResourceHandler[T, PT]) editAction(id uint) string {
	return fmt.Sprintf("%s/editar/%d", h.res.Path(), id)
}

// New shows an empty create form.
func (h *ResourceHandler[T, PT]) New(w http.ResponseWriter, r *http.Request) {
	empty := PT(new(T))
	render(w, r, http.StatusOK, "form.html", h.formData(true, h.res.Path()+"/cadastrar", empty.FormValues(), nil))
}

// Create validates the form and posts the full field set.
func (h *ResourceHandler[T, PT]) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	rec := PT(new(T))
	v := rec.Bind(r.PostForm, true)
	data := h.formData(true, h.res.Path()+"/cadastrar", formValues(h.res.Fields, r), v)
	if !v.Empty() {
		render(w, r, http.StatusUnprocessableEntity, "form.html", data)
		return
	}
	if err := h.res.Create(r.Context(), clientFor(h.api, r), rec); err != nil {
		middleware.LoggerFrom(r.Context()).WithError(err).WithField("resource", h.res.Name()).Warn("create failed")
		data["Notice"] = notice(middleware.NoticeError, h.res.Msg("create_error"))
		render(w, r, http.StatusOK, "form.html", data)
		return
	}
	middleware.Flash(w, middleware.NoticeSuccess, h.res.Msg("create_success"))
	http.Redirect(w, r, h.res.Path(), http.StatusSeeOther)
}

// Edit fetches the record once and pre-fills the form with it.
func (h *ResourceHandler[T, PT]) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		NotFound(w, r)
		return
	}
	rec, err := h.res.Get(r.Context(), clientFor(h.api, r), id)
	if err != nil {
		middleware.LoggerFrom(r.Context()).WithError(err).WithField("resource", h.res.Name()).WithField("id", id).Warn("load failed")
		data := h.formData(false, h.editAction(id), PT(new(T)).FormValues(), nil)
		data["Notice"] = notice(middleware.NoticeError, h.res.Msg("load_error"))
		render(w, r, http.StatusOK, "form.html", data)
		return
	}
	render(w, r, http.StatusOK, "form.html", h.formData(false, h.editAction(id), rec.FormValues(), nil))
}

// Update validates the form and replaces the record.
func (h *ResourceHandler[T, PT]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	rec := PT(new(T))
	v := rec.Bind(r.PostForm, false)
	data := h.formData(false, h.editAction(id), formValues(h.res.Fields, r), v)
	if !v.Empty() {
		render(w, r, http.StatusUnprocessableEntity, "form.html", data)
		return
	}
	if err := h.res.Update(r.Context(), clientFor(h.api, r), id, rec); err != nil {
		middleware.LoggerFrom(r.Context()).WithError(err).WithField("resource", h.res.Name()).WithField("id", id).Warn("update failed")
		data["Notice"] = notice(middleware.NoticeError, h.res.Msg("update_error"))
		render(w, r, http.StatusOK, "form.html", data)
		return
	}
	middleware.Flash(w, middleware.NoticeSuccess, h.res.Msg("update_success"))
	http.Redirect(w, r, h.res.Path(), http.StatusSeeOther)
}

// ConfirmDelete asks for confirmation. It never calls the backend.
func (h *ResourceHandler[T, PT]) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		NotFound(w, r)
		return
	}
	render(w, r, http.StatusOK, "confirm.html", map[string]any{
		"Resource": h.res,
		"ID":       id,
		"Page":     pageParam(r),
	})
}

// Delete issues one DELETE once confirm=sim was posted, then sends the
// browser back to the page it came from so that page is fetched again.
func (h *ResourceHandler[T, PT]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		NotFound(w, r)
		return
	}
	page := pageParam(r)
	if r.PostFormValue("confirm") != "sim" {
		http.Redirect(w, r, fmt.Sprintf("%s/deletar/%d?page=%d", h.res.Path(), id, page), http.StatusSeeOther)
		return
	}
	if err := h.res.Delete(r.Context(), clientFor(h.api, r), id); err != nil {
		middleware.LoggerFrom(r.Context()).WithError(err).WithField("resource", h.res.Name()).WithField("id", id).Warn("delete failed")
		middleware.Flash(w, middleware.NoticeError, h.res.Msg("delete_error"))
	} else {
		middleware.Flash(w, middleware.NoticeSuccess, h.res.Msg("delete_success"))
	}
	http.Redirect(w, r, fmt.Sprintf("%s?page=%d", h.res.Path(), page), http.StatusSeeOther)
}

package devbackend

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diewo77/painel/httpx"
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/validation"
)

const maxLimit = 100

// collection serves the REST endpoints of one table. T is the gorm model.
type collection[T any] struct {
	endpoint api.Endpoint
	preload  []string
	// prepare runs after binding and before validation on create and update.
	prepare func(tx *gorm.DB, rec *T, creating bool, v validation.Violations) error
	// guardDelete refuses deletes of records still referenced elsewhere.
	guardDelete func(tx *gorm.DB, id uint) error
}

var errInUse = errors.New("record in use")

func (c *collection[T]) routes(s *Server) {
	base := "/" + c.endpoint.Path
	name := c.endpoint.Path
	s.mux.Handle("GET "+base, s.require(name, true, c.list(s)))
	s.mux.Handle("POST "+base, s.require(name, true, c.create(s)))
	s.mux.Handle("GET "+base+"/{id}", s.require(name, false, c.get(s)))
	s.mux.Handle("PUT "+base+"/{id}", s.require(name, false, c.update(s)))
	s.mux.Handle("DELETE "+base+"/{id}", s.require(name, false, c.remove(s)))
}

// envelope builds the list body in the shape the endpoint declares, e.g.
// {"clientes": [...], "pagination": {"total": n}}.
func envelope(ep api.Endpoint, items any, total int64, page, limit int) map[string]any {
	body := map[string]any{ep.ItemsKey: items}
	outer, inner, _ := strings.Cut(ep.TotalKey, ".")
	body[outer] = map[string]any{inner: total, "page": page, "limit": limit}
	return body
}

func paging(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = api.PageSize
	}
	return page, min(limit, maxLimit)
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	return uint(id), err == nil && id > 0
}

func (c *collection[T]) query(db *gorm.DB) *gorm.DB {
	for _, p := range c.preload {
		db = db.Preload(p)
	}
	return db
}

func (c *collection[T]) list(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := paging(r)
		db := s.db.WithContext(r.Context())
		var total int64
		if err := db.Model(new(T)).Count(&total).Error; err != nil {
			s.internal(w, r, err)
			return
		}
		items := make([]T, 0, limit)
		if err := c.query(db).Order("id").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
			s.internal(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, envelope(c.endpoint, items, total, page, limit))
	}
}

func (c *collection[T]) get(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			httpx.JSONError(w, http.StatusNotFound, "registro não encontrado", nil)
			return
		}
		var rec T
		if err := c.query(s.db.WithContext(r.Context())).First(&rec, id).Error; err != nil {
			s.storeError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, &rec)
	}
}

// bind applies the JSON body onto rec, ignoring any id it carries.
func bind(r *http.Request, rec any) error {
	var fields map[string]json.RawMessage
	if err := httpx.DecodeJSON(r, &fields); err != nil {
		return err
	}
	delete(fields, "id")
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, rec)
}

// check runs the prepare hook and struct validation. It writes the response
// and returns false when the record must not be saved.
func (c *collection[T]) check(s *Server, w http.ResponseWriter, r *http.Request, rec *T, creating bool) bool {
	v := make(validation.Violations)
	if c.prepare != nil {
		if err := c.prepare(s.db.WithContext(r.Context()), rec, creating, v); err != nil {
			s.internal(w, r, err)
			return false
		}
	}
	validation.Struct(rec, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "dados inválidos", v)
		return false
	}
	return true
}

func (c *collection[T]) create(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec T
		if err := bind(r, &rec); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "corpo inválido", nil)
			return
		}
		if !c.check(s, w, r, &rec, true) {
			return
		}
		if err := s.db.WithContext(r.Context()).Omit(clause.Associations).Create(&rec).Error; err != nil {
			s.storeError(w, r, err)
			return
		}
		if cl, ok := claimsFrom(r.Context()); ok {
			s.log.WithField("resource", c.endpoint.Path).WithField("by", cl.ID).Info("record created")
		}
		httpx.JSON(w, http.StatusCreated, &rec)
	}
}

func (c *collection[T]) update(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			httpx.JSONError(w, http.StatusNotFound, "registro não encontrado", nil)
			return
		}
		db := s.db.WithContext(r.Context())
		var rec T
		if err := db.First(&rec, id).Error; err != nil {
			s.storeError(w, r, err)
			return
		}
		if err := bind(r, &rec); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "corpo inválido", nil)
			return
		}
		if !c.check(s, w, r, &rec, false) {
			return
		}
		if err := db.Omit(clause.Associations).Save(&rec).Error; err != nil {
			s.storeError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, &rec)
	}
}

func (c *collection[T]) remove(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			httpx.JSONError(w, http.StatusNotFound, "registro não encontrado", nil)
			return
		}
		err := s.db.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
			if c.guardDelete != nil {
				if err := c.guardDelete(tx, id); err != nil {
					return err
				}
			}
			res := tx.Delete(new(T), id)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			s.storeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// storeError maps store failures onto statuses.
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		httpx.JSONError(w, http.StatusNotFound, "registro não encontrado", nil)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		httpx.JSONError(w, http.StatusConflict, "registro duplicado", nil)
	case errors.Is(err, errInUse):
		httpx.JSONError(w, http.StatusConflict, "registro em uso por anotações", nil)
	default:
		s.internal(w, r, err)
	}
}

func (s *Server) internal(w http.ResponseWriter, r *http.Request, err error) {
	s.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	httpx.JSONError(w, http.StatusInternalServerError, "erro interno", nil)
}

package content

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/johnwards/sampledata/internal/api"
	"github.com/johnwards/sampledata/internal/domain"
	"github.com/johnwards/sampledata/internal/store"
)

// Handler serves read-only listings of the generated content.
type Handler struct {
	store *store.Store
}

func listOpts(r *http.Request) domain.ListOpts {
	limit, after := api.ParseListParams(r)
	return domain.ListOpts{Limit: limit, After: after}
}

func writePage[T any](w http.ResponseWriter, page *domain.Page[T]) {
	results := make([]any, len(page.Results))
	for i, v := range page.Results {
		results[i] = v
	}
	api.WriteJSON(w, http.StatusOK, api.CollectionResponse{
		Results: results,
		Paging:  api.NextPage(page.HasMore, page.After),
	})
}

func writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	api.Fail(w, r, http.StatusInternalServerError, err.Error())
}

// Categories handles GET /api/content/categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	extension := r.URL.Query().Get("extension")
	if extension == "" {
		extension = "com_content"
	}
	page, err := h.store.Categories.List(r.Context(), extension, listOpts(r))
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writePage(w, page)
}

// Articles handles GET /api/content/articles.
func (h *Handler) Articles(w http.ResponseWriter, r *http.Request) {
	var catID int64
	if v := r.URL.Query().Get("catid"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			api.InvalidParam(w, r, "catid", "INVALID_INTEGER", "catid must be an integer")
			return
		}
		catID = n
	}
	page, err := h.store.Articles.List(r.Context(), catID, listOpts(r))
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writePage(w, page)
}

// Article handles GET /api/content/articles/{articleId}.
func (h *Handler) Article(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("articleId"), 10, 64)
	if err != nil {
		api.Fail(w, r, http.StatusNotFound, "Article not found")
		return
	}

	a, err := h.store.Articles.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.Fail(w, r, http.StatusNotFound, "Article not found")
			return
		}
		writeInternal(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, a)
}

// Fields handles GET /api/content/fields.
func (h *Handler) Fields(w http.ResponseWriter, r *http.Request) {
	fieldContext := r.URL.Query().Get("context")
	if fieldContext == "" {
		fieldContext = domain.ArticleContext
	}
	page, err := h.store.Fields.List(r.Context(), fieldContext, listOpts(r))
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writePage(w, page)
}

// Menus handles GET /api/content/menus.
func (h *Handler) Menus(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.Menus.List(r.Context(), listOpts(r))
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writePage(w, page)
}

// MenuItems handles GET /api/content/menuitems.
func (h *Handler) MenuItems(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.MenuItems.List(r.Context(), r.URL.Query().Get("menutype"), listOpts(r))
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writePage(w, page)
}

// Users handles GET /api/content/users, the accounts content can be authored by.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.Users.List(r.Context(), listOpts(r))
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writePage(w, page)
}

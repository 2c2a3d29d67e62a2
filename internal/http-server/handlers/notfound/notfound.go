package notfound

import (
	"net/http"

	"github.com/go-chi/render"

	"photoStore/internal/lib/api/response"
)

// New is the catch-all for unmatched routes, producing the same generic
// body the retrieval handlers fall through to.
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.NotFound(r.URL.Path))
	}
}

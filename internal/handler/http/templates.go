package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/models"
)

//go:embed templates
var templatesFS embed.FS

// pages lists every view rendered by the handlers. Each page template is
// parsed together with the shared base layout.
var pages = []string{
	"auth/register.html",
	"auth/login.html",
	"movies/list.html",
	"movies/movie.html",
	"movies/add.html",
	"movies/notfound.html",
}

type templates struct {
	pages map[string]*template.Template
}

func mustParseTemplates() *templates {
	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		parsed[page] = template.Must(template.ParseFS(templatesFS, "templates/base.html", "templates/"+page))
	}

	return &templates{pages: parsed}
}

// templateData carries everything a view can render. Principal is nil for
// anonymous requests; Error holds the single user-facing message a failed
// form submission re-renders with.
type templateData struct {
	Principal  *models.User
	Error      string
	Movies     []models.Movie
	Movie      models.Movie
	MovieTitle string
}

// render writes the named page with the given status code. The current
// principal is attached from the request context so every view can show the
// login state. Render failures are logged and degrade to a plain 500; by the
// time execution fails part of the response may already be written, which is
// the standard html/template trade-off.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data templateData) {
	log := logger.FromRequest(r)

	if user, ok := principalFromRequest(r); ok {
		data.Principal = &user
	}

	tmpl, ok := h.templates.pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown template page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Err(err).Str("page", page).Msg("template execution failed")
	}
}

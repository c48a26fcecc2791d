package main

import (
	_ "embed"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/domonda/go-gridview"
	"github.com/domonda/go-gridview/config"
	"github.com/domonda/go-gridview/csv"
	"github.com/domonda/go-gridview/html"
	"github.com/domonda/go-gridview/i18n"
	"github.com/domonda/go-gridview/router"
)

//go:embed messages.yaml
var messagesYAML []byte

type server struct {
	config     *config.Config
	translator *i18n.Translator
	routes     *router.Routes
	logger     *zap.Logger

	mtx   sync.RWMutex
	users []user
}

func newServer(cfg *config.Config, users []user, logger *zap.Logger) (http.Handler, error) {
	translator, err := cfg.Translator()
	if err != nil {
		return nil, err
	}
	translator, err = translator.LoadYAML(messagesYAML)
	if err != nil {
		return nil, err
	}
	s := &server{
		config:     cfg,
		translator: translator,
		logger:     logger,
		users:      users,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/users", http.StatusFound)
	})
	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.usersHandler)
		r.Get("/view", s.userHandler)
		r.Get("/update", s.userHandler)
		r.Post("/delete", s.deleteHandler)
		r.Get("/export", s.exportHandler)
	})

	s.routes, err = router.FromChi(r)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("requestID", middleware.GetReqID(r.Context())),
		)
	})
}

// requestTranslator returns the translator for the language
// of the "lang" query parameter.
func (s *server) requestTranslator(r *http.Request) (*i18n.Translator, url.Values) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		return s.translator, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		s.logger.Debug("ignoring invalid language", zap.String("lang", lang), zap.Error(err))
		return s.translator, nil
	}
	return s.translator.WithLanguage(tag), url.Values{"lang": {lang}}
}

func (s *server) usersHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	translator, langQuery := s.requestTranslator(r)
	page, pageSize, sortParam := router.PageQuery(query, s.config.Grid.PageSize)
	sort := gridview.NewSort(sortableAttributes...).WithOrder(sortParam)
	search := query.Get("name")
	role := query.Get("role")

	s.mtx.RLock()
	users := sortUsers(filterUsers(s.users, search, role), sort)
	s.mtx.RUnlock()

	paginator := gridview.NewOffsetPaginator(users).
		WithPageSize(pageSize).
		WithCurrentPage(page).
		WithSort(sort).
		WithKeyAttribute("id")

	exportQuery := make(url.Values)
	for key, value := range map[string]string{"sort": sort.Param(), "name": search, "role": role} {
		if value != "" {
			exportQuery.Set(key, value)
		}
	}
	exportURL, err := s.routes.Generate("users/export", nil, exportQuery)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	exportLink := html.A("CSV", exportURL, html.Attributes{"class": "btn btn-secondary", "role": "button"})
	toolbar := s.config.ApplyToolbar(gridview.NewToolbar()).
		WithContentLeft(gridview.ButtonResetChanges("/users", nil) + "\n" + exportLink).
		WithContentRight(gridview.SelectPageSize(pageSize, nil, html.Attributes{"onchange": "this.form.submit()"}))

	grid := s.config.ApplyGrid(gridview.NewGridView()).
		WithPaginator(paginator).
		WithTranslator(translator).
		WithColumnsTranslation(true).
		WithURLGenerator(s.routes).
		WithURLName("users").
		WithURLQueryParameters(langQuery).
		WithLogger(s.logger.Named("gridview")).
		WithHeader(html.Tag("h1", html.Escape(translator.Translate("users", nil, "demo")), nil)).
		WithToolbar(toolbar.Render()).
		WithColumns(
			gridview.NewSerialColumn(),
			gridview.NewDataColumn("name").
				WithFilterAttribute("name").
				WithFilterType(gridview.FilterSearch).
				WithFilterValueDefault(search),
			gridview.NewDataColumn("email"),
			gridview.NewDataColumn("role").
				WithFilterAttribute("role").
				WithFilterType(gridview.FilterSelect).
				WithFilterSelectPrompt("all", "").
				WithFilterValueDefault(role).
				WithFilterSelectItems(
					gridview.SelectItem{Value: "admin", Label: "admin"},
					gridview.SelectItem{Value: "editor", Label: "editor"},
					gridview.SelectItem{Value: "viewer", Label: "viewer"},
				),
			gridview.NewDataColumn("logins").WithFormat(gridview.FormatNumber),
			gridview.NewDataColumn("created").WithValueFunc(func(row gridview.Row, _ *gridview.Column) (any, error) {
				return humanize.Time(row.Data.(user).Created), nil
			}),
			gridview.NewActionColumn().
				WithButtonVisible("view", true).
				WithButtonVisible("update", true).
				WithButtonVisibleFunc("delete", func(row gridview.Row) bool {
					return row.Data.(user).Role != "admin"
				}).
				WithURLQueryParameters(langQuery),
		)

	content, err := grid.Render(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writePage(w, html.Tag("form", content, html.Attributes{"method": "get", "action": "/users"}))
}

func (s *server) userHandler(w http.ResponseWriter, r *http.Request) {
	translator, _ := s.requestTranslator(r)
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	s.mtx.RLock()
	i := slices.IndexFunc(s.users, func(u user) bool { return u.ID == id })
	var u user
	if i >= 0 {
		u = s.users[i]
	}
	s.mtx.RUnlock()
	if i < 0 {
		http.NotFound(w, r)
		return
	}

	view, err := s.config.ApplyDetail(gridview.NewDetailView())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if len(s.config.Detail.Fields) == 0 {
		view = view.WithFields(
			gridview.Field{Attribute: "id"},
			gridview.Field{Attribute: "name"},
			gridview.Field{Attribute: "email"},
			gridview.Field{Attribute: "role"},
			gridview.Field{Attribute: "logins", Format: gridview.FormatNumber},
			gridview.Field{Attribute: "created", Value: gridview.FieldValueFunc(func(data any) (any, error) {
				return data.(user).Created.Format(time.DateOnly), nil
			})},
		)
	}
	header := translator.Translate("user", map[string]any{"id": u.ID}, "demo")
	content, err := view.
		WithData(u).
		WithTranslation(true).
		WithTranslator(translator).
		WithHeader(html.Tag("h1", html.Escape(header), nil)).
		Render()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writePage(w, content)
}

// exportHandler writes all filtered users in the requested order as CSV.
func (s *server) exportHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	translator, _ := s.requestTranslator(r)
	sort := gridview.NewSort(sortableAttributes...).WithOrder(query.Get("sort"))

	s.mtx.RLock()
	users := sortUsers(filterUsers(s.users, query.Get("name"), query.Get("role")), sort)
	s.mtx.RUnlock()

	grid := gridview.NewGridView().
		WithPaginator(gridview.NewOffsetPaginator(users).WithPageSize(len(users))).
		WithTranslator(translator).
		WithTranslationCategory(s.config.Grid.TranslationCategory).
		WithColumnsTranslation(true).
		WithColumns(
			gridview.NewDataColumn("id"),
			gridview.NewDataColumn("name"),
			gridview.NewDataColumn("email"),
			gridview.NewDataColumn("role"),
			gridview.NewDataColumn("logins"),
			gridview.NewDataColumn("created").WithValueFunc(func(row gridview.Row, _ *gridview.Column) (any, error) {
				return row.Data.(user).Created.Format(time.DateOnly), nil
			}),
		)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="users.csv"`)
	if err := csv.NewWriter().Write(r.Context(), w, grid); err != nil {
		s.logger.Error("writing CSV", zap.Error(err))
	}
}

func (s *server) deleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	s.mtx.Lock()
	s.users = slices.DeleteFunc(s.users, func(u user) bool { return u.ID == id })
	s.mtx.Unlock()
	s.logger.Info("deleted user", zap.Int("id", id))
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("rendering failed", zap.String("uri", r.RequestURI), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (s *server) writePage(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<body>\n%s\n</body>\n</html>\n", content)
	if err != nil {
		s.logger.Debug("writing response", zap.Error(err))
	}
}

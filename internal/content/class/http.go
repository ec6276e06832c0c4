package class

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/content/identifier"
	requestutil "github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/request"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listClasses)
	router.Get("/{id}", handler.getClass)
	router.Post("/", handler.createClass)
	router.Put("/{id}", handler.updateClass)
	router.Delete("/", handler.bulkDeleteClasses)
	router.Delete("/{id}", handler.deleteClass)

	return router
}

/*
listClasses serves both consumers of the collection: the public site
navigation asks for `?view=nav` and gets the narrow projection, the
dashboard gets the full documents.
*/
func (handler *Handler) listClasses(writer http.ResponseWriter, request *http.Request) {
	if request.URL.Query().Get("view") == "nav" {
		items, err := handler.service.ListNav(request.Context())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, items)
		return
	}

	classes, err := handler.service.ListClasses(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, classes)
}

/*
getClass disambiguates the path segment by format: an id-shaped string is a
dashboard read and returns the full document, anything else is a public slug
read and returns the stripped view.
*/
func (handler *Handler) getClass(writer http.ResponseWriter, request *http.Request) {
	ident := identifier.Parse(requestutil.ID(request, "id"))

	if ident.ByID() {
		c, err := handler.service.GetClass(request.Context(), ident.ID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, c)
		return
	}

	view, err := handler.service.GetClassBySlug(request.Context(), ident.Slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) createClass(writer http.ResponseWriter, request *http.Request) {
	var input Input
	files, err := requestutil.ParseForm(request, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateClass(request.Context(), &input, files)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateClass(writer http.ResponseWriter, request *http.Request) {
	var input Input
	files, err := requestutil.ParseForm(request, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateClass(request.Context(), requestutil.ID(request, "id"), &input, files)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteClass(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteClass(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Class deleted successfully")
}

func (handler *Handler) bulkDeleteClasses(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.DeleteClasses(request.Context(), body.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"deletedCount": deleted})
}

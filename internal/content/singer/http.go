package singer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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

	router.Get("/", handler.listSingers)
	router.Get("/{id}", handler.getSinger)
	router.Post("/", handler.createSinger)
	router.Put("/{id}", handler.updateSinger)
	router.Delete("/", handler.bulkDeleteSingers)
	router.Delete("/{id}", handler.deleteSinger)

	return router
}

func (handler *Handler) listSingers(writer http.ResponseWriter, request *http.Request) {
	singers, err := handler.service.ListSingers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, singers)
}

func (handler *Handler) getSinger(writer http.ResponseWriter, request *http.Request) {
	s, err := handler.service.GetSinger(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

func (handler *Handler) createSinger(writer http.ResponseWriter, request *http.Request) {
	var input Input
	files, err := requestutil.ParseForm(request, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateSinger(request.Context(), &input, files)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateSinger(writer http.ResponseWriter, request *http.Request) {
	var input Input
	files, err := requestutil.ParseForm(request, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateSinger(request.Context(), requestutil.ID(request, "id"), &input, files)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteSinger(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteSinger(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Singer deleted successfully")
}

func (handler *Handler) bulkDeleteSingers(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.DeleteSingers(request.Context(), body.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"deletedCount": deleted})
}

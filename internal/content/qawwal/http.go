package qawwal

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

	router.Get("/", handler.listQawwals)
	router.Get("/{id}", handler.getQawwal)
	router.Post("/", handler.createQawwal)
	router.Put("/{id}", handler.updateQawwal)
	router.Delete("/", handler.bulkDeleteQawwals)
	router.Delete("/{id}", handler.deleteQawwal)

	return router
}

func (handler *Handler) listQawwals(writer http.ResponseWriter, request *http.Request) {
	qawwals, err := handler.service.ListQawwals(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, qawwals)
}

func (handler *Handler) getQawwal(writer http.ResponseWriter, request *http.Request) {
	q, err := handler.service.GetQawwal(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, q)
}

func (handler *Handler) createQawwal(writer http.ResponseWriter, request *http.Request) {
	var input Input
	files, err := requestutil.ParseForm(request, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateQawwal(request.Context(), &input, files)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateQawwal(writer http.ResponseWriter, request *http.Request) {
	var input Input
	files, err := requestutil.ParseForm(request, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateQawwal(request.Context(), requestutil.ID(request, "id"), &input, files)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteQawwal(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteQawwal(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Qawwal deleted successfully")
}

func (handler *Handler) bulkDeleteQawwals(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.DeleteQawwals(request.Context(), body.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"deletedCount": deleted})
}

package blog

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

	router.Get("/", handler.listPosts)
	router.Get("/{id}", handler.getPost)
	router.Post("/", handler.createPost)
	router.Put("/{id}", handler.updatePost)
	router.Delete("/", handler.bulkDeletePosts)
	router.Delete("/{id}", handler.deletePost)

	return router
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.ListPosts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	p, err := handler.service.GetPost(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input Input
	files, err := requestutil.ParseForm(request, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreatePost(request.Context(), &input, files)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	var input Input
	files, err := requestutil.ParseForm(request, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdatePost(request.Context(), requestutil.ID(request, "id"), &input, files)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeletePost(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Blog deleted successfully")
}

func (handler *Handler) bulkDeletePosts(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.DeletePosts(request.Context(), body.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"deletedCount": deleted})
}

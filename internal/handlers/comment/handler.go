package comment

import (
	"net/http"

	"galerij/infras/otel"
	"galerij/internal/domains/comment/model/dto"
	"galerij/internal/domains/comment/service"
	"galerij/shared/constant"
	"galerij/shared/validator"
	"galerij/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Comment
	otel    otel.Otel
}

func New(service service.Comment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/comments", handler.CreateComment)
}

// CreateComment stores a visible comment on an artwork.
// @Summary Create comment
// @Tags Comment
// @Accept json
// @Produce json
// @Param request body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} dto.CreateCommentResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/comments [post]
func (handler *Handler) CreateComment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateComment")
	defer scope.End()

	req := dto.CreateCommentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("artworkID", req.ArtworkID).Msg("failed to create comment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, dto.CreateCommentResponse{Success: true, ID: id})
}

package favorite

import (
	"net/http"

	"galerij/infras/otel"
	"galerij/internal/domains/favorite/model/dto"
	"galerij/internal/domains/favorite/service"
	"galerij/shared"
	"galerij/shared/constant"
	"galerij/shared/validator"
	"galerij/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type successResponse struct {
	Success bool `json:"success"`
}

type Handler struct {
	service service.Favorite
	otel    otel.Otel
}

func New(service service.Favorite, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/favorites", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AddFavorite)
		routerGroup.Get("/{userId}", handler.GetFavorites)
	})
}

// AddFavorite marks an artwork as favorite of a user. Repeating it is a no-op.
// @Summary Add favorite
// @Tags Favorite
// @Accept json
// @Produce json
// @Param request body dto.AddFavoriteRequest true "Favorite"
// @Success 200 {object} successResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/favorites [post]
func (handler *Handler) AddFavorite(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddFavorite")
	defer scope.End()

	req := dto.AddFavoriteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Add(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add favorite")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, successResponse{Success: true})
}

// GetFavorites lists the visible artworks a user favorited.
// @Summary List favorites
// @Tags Favorite
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} object "Artworks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/favorites/{userId} [get]
func (handler *Handler) GetFavorites(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFavorites")
	defer scope.End()

	userID, err := shared.ParseID(chi.URLParam(request, constant.RequestParamUserID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetByUser(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("userID", userID).Msg("failed to get favorites")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

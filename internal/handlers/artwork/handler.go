package artwork

import (
	"net/http"
	"strings"

	"galerij/infras/otel"
	"galerij/internal/domains/artwork/model/dto"
	"galerij/internal/domains/artwork/service"
	"galerij/shared"
	"galerij/shared/constant"
	gDto "galerij/shared/dto"
	"galerij/shared/validator"
	"galerij/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Artwork
	otel    otel.Otel
}

func New(service service.Artwork, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/artworks", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetArtworks)
		routerGroup.Post("/", handler.CreateArtwork)
		routerGroup.Get("/{id}", handler.GetArtwork)
		routerGroup.Put("/{id}", handler.UpdateArtwork)
		routerGroup.Delete("/{id}", handler.DeleteArtwork)
	})
}

// GetArtworks lists the visible artworks.
// @Summary List artworks
// @Description List visible artworks with their primary image. With q the list is restricted to full-text matches ordered by relevance.
// @Tags Artwork
// @Produce json
// @Param q query string false "Search term"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {array} dto.ArtworkListItem
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/artworks [get]
func (handler *Handler) GetArtworks(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArtworks")
	defer scope.End()

	params := gDto.QueryParams{}
	if err := params.FromRequest(request); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	term := strings.TrimSpace(request.URL.Query().Get(constant.RequestParamSearch))

	res, err := handler.service.GetAll(ctx, params, term)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get artworks")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetArtwork returns one visible artwork with images, techniques and comments.
// @Summary Get artwork
// @Tags Artwork
// @Produce json
// @Param id path int true "Artwork ID"
// @Success 200 {object} dto.ArtworkDetailResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/artworks/{id} [get]
func (handler *Handler) GetArtwork(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArtwork")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("artworkID", id).Msg("failed to get artwork")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateArtwork adds an artwork.
// @Summary Create artwork
// @Tags Artwork
// @Accept json
// @Produce json
// @Param request body dto.CreateArtworkRequest true "Artwork"
// @Success 201 {object} dto.CreateArtworkResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/artworks [post]
func (handler *Handler) CreateArtwork(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateArtwork")
	defer scope.End()

	req := dto.CreateArtworkRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create artwork")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, dto.CreateArtworkResponse{Success: true, ID: id})
}

// UpdateArtwork overwrites an artwork.
// @Summary Update artwork
// @Description Every field is written; omitted optional fields are cleared.
// @Tags Artwork
// @Accept json
// @Produce json
// @Param id path int true "Artwork ID"
// @Param request body dto.UpdateArtworkRequest true "Artwork"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/artworks/{id} [put]
func (handler *Handler) UpdateArtwork(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateArtwork")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateArtworkRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err = handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("artworkID", id).Msg("failed to update artwork")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.SuccessResponse{Success: true})
}

// DeleteArtwork removes an artwork.
// @Summary Delete artwork
// @Tags Artwork
// @Produce json
// @Param id path int true "Artwork ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/artworks/{id} [delete]
func (handler *Handler) DeleteArtwork(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteArtwork")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("artworkID", id).Msg("failed to delete artwork")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.SuccessResponse{Success: true})
}

package static

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"galerij/config"
	"galerij/infras/otel"
	"galerij/infras/s3"
	"galerij/shared/constant"
	"galerij/shared/failure"
	"galerij/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler serves artwork image files under /artwork/, from the local static directory or,
// when S3 is enabled, from the bucket.
type Handler struct {
	cfg  *config.Config
	s3   s3.S3
	otel otel.Otel
}

func New(cfg *config.Config, s3 s3.S3, otel otel.Otel) Handler {
	return Handler{
		cfg:  cfg,
		s3:   s3,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	if handler.cfg.External.S3.Enable {
		router.Get(constant.StaticPathPrefix+"/*", handler.GetObject)

		return
	}

	fileServer := http.StripPrefix(constant.StaticPathPrefix+"/", http.FileServer(http.Dir(handler.cfg.App.Static.Dir)))

	router.Get(constant.StaticPathPrefix+"/*", func(writer http.ResponseWriter, request *http.Request) {
		// no directory listings
		if strings.HasSuffix(request.URL.Path, "/") {
			http.NotFound(writer, request)

			return
		}

		fileServer.ServeHTTP(writer, request)
	})
}

// GetObject streams an image from the bucket.
// @Summary Get artwork image
// @Tags Static
// @Produce octet-stream
// @Param path path string true "Object path"
// @Success 200 {file} file
// @Failure 404 {object} response.Error
// @Router /artwork/{path} [get]
func (handler *Handler) GetObject(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetObject")
	defer scope.End()

	name := chi.URLParam(request, "*")
	if name == "" || strings.HasSuffix(name, "/") {
		response.WithError(writer, failure.NotFound("object not found"))

		return
	}

	object, err := handler.s3.GetFile(ctx, "", strings.TrimPrefix(constant.StaticPathPrefix, "/"), name)
	if err != nil {
		if !failure.IsNotFound(err) {
			scope.TraceError(err)
			log.Error().Err(err).Str("object", name).Msg("failed to get artwork image")
		}

		response.WithError(writer, err)

		return
	}
	defer object.Body.Close()

	contentType := object.ContentType
	if contentType == "" {
		contentType = constant.ContentTypeOctetStream
	}

	writer.Header().Set(constant.RequestHeaderContentType, contentType)

	if object.ContentLength > 0 {
		writer.Header().Set(constant.RequestHeaderContentLength, strconv.FormatInt(object.ContentLength, 10))
	}

	if !object.LastModified.IsZero() {
		writer.Header().Set("Last-Modified", object.LastModified.UTC().Format(http.TimeFormat))
	}

	writer.WriteHeader(http.StatusOK)

	if _, err = io.Copy(writer, object.Body); err != nil {
		log.Error().Err(err).Str("object", name).Msg("failed to stream artwork image")
	}
}

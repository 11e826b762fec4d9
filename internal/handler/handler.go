package handler

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"workforce-engine/internal/apperror"
	"workforce-engine/internal/engine"
	"workforce-engine/internal/model"
)

const (
	PathRun         = "/run"
	PathHealthcheck = "/healthcheck"
	HeaderRunID     = "X-Run-Id"
)

// Runner is the engine as seen by the transport.
type Runner interface {
	Run(ctx context.Context, req *model.RunRequest) (*engine.Result, error)
}

type Handler struct {
	runner Runner
	logger *zap.Logger
}

func New(runner Runner, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{runner: runner, logger: logger}
}

// Handle is the fasthttp.RequestHandler for the whole server.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	switch string(ctx.Path()) {
	case PathRun:
		h.handleRun(ctx)
	case PathHealthcheck:
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	h.logger.Info("Request handled",
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("duration", time.Since(start)))
}

func (h *Handler) handleRun(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.Response.Header.Set(fasthttp.HeaderAllow, fasthttp.MethodPost)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	req, err := model.DecodeRunRequest(ctx.PostBody())
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := h.runner.Run(ctx, req)
	if res != nil {
		ctx.Response.Header.Set(HeaderRunID, res.RunID)
	}
	if err != nil {
		status := statusFor(err)
		if status == fasthttp.StatusInternalServerError {
			h.logger.Error("Run failed", zap.Error(err))
		}
		resp := model.ErrorResponse{
			Status:  status,
			Code:    string(apperror.GetCode(err)),
			Message: err.Error(),
		}
		if res != nil {
			resp.Messages = res.Messages
		}
		writeJSON(ctx, status, resp)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, res.Summary)
}

func statusFor(err error) int {
	switch apperror.GetCode(err) {
	case apperror.CodeInvalidCount, apperror.CodeInvalidAgeRange:
		return fasthttp.StatusUnprocessableEntity
	case apperror.CodeCanceled:
		return fasthttp.StatusServiceUnavailable
	default:
		return fasthttp.StatusInternalServerError
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.Error(`{"status":500,"message":"encode response"}`, fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	service "github.com/aaravmahajanofficial/jewelry-storefront/internal/services"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils/response"
)

type AssistantHandler struct {
	assistantService service.AssistantService
}

func NewAssistantHandler(assistantService service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Chat godoc
//
//	@Summary	Ask the shop assistant
//	@Tags		Assistant
//	@Accept		json
//	@Produce	json
//	@Param		message	body		models.AssistantRequest	true	"User message"
//	@Success	200		{object}	models.ChatResponse
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	429		{object}	response.ErrorResponse
//	@Failure	500		{object}	response.ErrorResponse	"Upstream failure"
//	@Router		/chat [post]
func (h *AssistantHandler) Chat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		message, ok := decodeMessage(w, r, "Valid message is required")
		if !ok {
			return
		}

		reply, err := h.assistantService.Chat(r.Context(), message)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ChatResponse{Reply: reply})
	}
}

func (h *AssistantHandler) Ask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query, ok := decodeMessage(w, r, "Valid search query is required")
		if !ok {
			return
		}

		answer, err := h.assistantService.Search(r.Context(), query)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.AskResponse{Answer: answer})
	}
}

func decodeMessage(w http.ResponseWriter, r *http.Request, invalid string) (string, bool) {
	var req models.AssistantRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("Invalid assistant request", slog.String("error", err.Error()))
		response.Error(w, appErrors.ValidationError(invalid).WithError(err))
		return "", false
	}
	return req.Message, true
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
	"github.com/harryviennot/cuisto-admin/internal/domain/model"
	modsvc "github.com/harryviennot/cuisto-admin/internal/services/moderation"
	queuesvc "github.com/harryviennot/cuisto-admin/internal/services/queues"
	"github.com/harryviennot/cuisto-admin/internal/transport/http/dto"
	httperrors "github.com/harryviennot/cuisto-admin/internal/transport/http/errors"
)

type RecipesHandler struct {
	queues     *queuesvc.Service
	moderation *modsvc.Service
}

func NewRecipesHandler(queues *queuesvc.Service, moderation *modsvc.Service) *RecipesHandler {
	return &RecipesHandler{queues: queues, moderation: moderation}
}

func (h *RecipesHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.queues == nil {
		writeInternal(w, "QUEUE_SERVICE_UNAVAILABLE", "queue service is unavailable")
		return
	}

	query := r.URL.Query()
	filter := model.RecipeListFilter{
		UserID: query.Get("user_id"),
		Search: query.Get("search"),
		Limit:  intQuery(query.Get("limit")),
		Offset: intQuery(query.Get("offset")),
	}
	if raw := query.Get("is_hidden"); raw != "" {
		if hidden, err := strconv.ParseBool(raw); err == nil {
			filter.IsHidden = &hidden
		}
	}

	list, err := h.queues.Recipes(r.Context(), filter)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromRecipeList(list))
}

func (h *RecipesHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.queues == nil {
		writeInternal(w, "QUEUE_SERVICE_UNAVAILABLE", "queue service is unavailable")
		return
	}

	recipe, err := h.queues.Recipe(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, queuesvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", err.Error())
			return
		}
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromRecipe(recipe))
}

// Hide runs the recipe-centered composite decision: hide, then optionally
// warn, suspend or ban the author.
func (h *RecipesHandler) Hide(w http.ResponseWriter, r *http.Request) {
	if h.moderation == nil {
		writeInternal(w, "MODERATION_SERVICE_UNAVAILABLE", "moderation service is unavailable")
		return
	}

	var request dto.HideRecipeRequest
	if err := decodeJSON(r, &request); err != nil {
		writeBadRequest(w, "INVALID_BODY", "invalid request body")
		return
	}

	userAction, ok := enums.ParseUserAction(request.UserAction)
	if !ok {
		writeBadRequest(w, "INVALID_ACTION", "unknown user action: "+request.UserAction)
		return
	}

	result, err := h.moderation.HideRecipe(r.Context(), modsvc.HideRecipeInput{
		RecipeID:       chi.URLParam(r, "id"),
		Reason:         request.Reason,
		UserAction:     userAction,
		SuspensionDays: request.SuspensionDays,
	})
	writeCompositeResult(w, result, err)
}

func (h *RecipesHandler) Unhide(w http.ResponseWriter, r *http.Request) {
	if h.moderation == nil {
		writeInternal(w, "MODERATION_SERVICE_UNAVAILABLE", "moderation service is unavailable")
		return
	}

	var request dto.UnhideRecipeRequest
	if err := decodeJSON(r, &request); err != nil {
		writeBadRequest(w, "INVALID_BODY", "invalid request body")
		return
	}

	if err := h.moderation.UnhideRecipe(r.Context(), chi.URLParam(r, "id"), request.Reason); err != nil {
		if errors.Is(err, modsvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", err.Error())
			return
		}
		writeUpstreamError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"encoding/json"
	"eventers-legacy-adapter/adapter"
	"eventers-legacy-adapter/logger"
	"eventers-legacy-adapter/model"
	"eventers-legacy-adapter/response"
	"net/http"
)

// GetEvent serves the legacy system's event in the modern schema.
func GetEvent(service *adapter.Adapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		event, err := service.FetchEventDetails(ctx)
		if err != nil {
			response.FromTranslationError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       event,
			StatusCode: http.StatusOK,
		}.Send(ctx, w)
	}
}

// TranslateEvent adapts a legacy event posted by the caller.
func TranslateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.TranslateRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "translateEvent: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", err.Error()).Send(ctx, w)
			return
		}

		event, err := adapter.Translate(ctx, req.Data.LegacyEvent)
		if err != nil {
			response.FromTranslationError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       event,
			StatusCode: http.StatusOK,
		}.Send(ctx, w)
	}
}

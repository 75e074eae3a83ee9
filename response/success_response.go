package response

import (
	"context"
	"encoding/json"
	"eventers-legacy-adapter/logger"
	"net/http"
)

type SuccessResponse struct {
	Data       interface{} `json:"data"`
	StatusCode int         `json:"-"`
}

func (r SuccessResponse) Send(ctx context.Context, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.StatusCode)
	if err := json.NewEncoder(w).Encode(r); err != nil {
		logger.Errorf(ctx, "send: error encoding success response: %+v", err)
	}
}

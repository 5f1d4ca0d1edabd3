package chat

import (
	"rtlmac/pkg/response"
	"net/http"
)

var (
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, "internal server error")
	ErrEmptyMessage        = response.NewError(http.StatusBadRequest, "message is required")
)

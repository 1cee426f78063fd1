package http

import (
	"errors"

	"schedula/internal/chat"
	pkgErrors "schedula/pkg/errors"
)

var errMessageRequired = pkgErrors.NewHTTPError(400, "message is required")

func (h *handler) mapError(err error) error {
	if errors.Is(err, chat.ErrEmptyMessage) {
		return errMessageRequired
	}
	return err
}

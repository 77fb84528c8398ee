package usecase

import (
	"errors"
	"io"
	"net"
	"net/textproto"
	"strings"

	"go-portfolio-backend/internal/domain"
)

// classifyTransportError maps an SMTP send error onto the dispatch error
// taxonomy. SMTP reply codes are checked first, then network errors, then
// a few well-known reply strings from common relays.
func classifyTransportError(err error) domain.ErrorCategory {
	var smtpErr *textproto.Error
	if errors.As(err, &smtpErr) {
		switch smtpErr.Code {
		// 530 = auth required, 534/535 = credentials rejected
		case 530, 534, 535:
			return domain.CategoryAuthFailure
		}
		return domain.CategoryUnknown
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.EOF) {
		return domain.CategoryConnectionFailure
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "username and password not accepted"),
		strings.Contains(msg, "authentication failed"),
		strings.Contains(msg, "535"):
		return domain.CategoryAuthFailure
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "i/o timeout"),
		strings.Contains(msg, "broken pipe"),
		strings.Contains(msg, "connection reset"):
		return domain.CategoryConnectionFailure
	}
	return domain.CategoryUnknown
}

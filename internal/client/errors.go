package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMalformedReply reports a ledger response that does not match the
// expected shape. The current operation aborts rather than guessing.
var ErrMalformedReply = errors.New("malformed ledger reply")

// StatusError is a non-2xx ledger response.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Path, e.Code)
}

// bootstrapPaths are the endpoints probed first when connecting. A 404 on
// one of these almost always means the base URL points at some other HTTP
// service, not that the resource is missing.
var bootstrapPaths = map[string]bool{
	"/state":  true,
	"/health": true,
}

// Normalize rewrites network failures into actionable guidance. It changes
// message text only: the original error stays wrapped, so errors.Is and
// errors.As still see the underlying kind.
func Normalize(err error, base, path string) error {
	if err == nil {
		return nil
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Code == http.StatusNotFound && bootstrapPaths[path] {
			return fmt.Errorf("the service at %s does not look like a Lumina API (404 on %s); check the port: %w", base, path, err)
		}
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("cannot reach the API at %s: %w", base, err)
	}
	return err
}

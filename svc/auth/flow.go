package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/alexkarev/authgate/handler"
	"github.com/alexkarev/authgate/pkg/identity"
	"github.com/alexkarev/authgate/pkg/logger"
	"github.com/alexkarev/authgate/pkg/secrethash"
	"github.com/alexkarev/authgate/pkg/validator"
)

// field is a required input of a step, in declaration order.
type field struct {
	name  string
	value string
}

// step describes one authentication flow step for the shared executor:
// which fields must be present, how each is validated, the provider call to
// make, and how categorized provider failures map to HTTP errors.
type step struct {
	name     string
	username string
	fields   []field
	rules    []validator.Rule
	call     func(ctx context.Context, secretHash string) (handler.Response, error)
	failures map[identity.Category]handler.HTTPError
}

// run executes a step in the invariant order: presence check, per-field
// validation with first-failure short-circuit, secret hash derivation,
// provider call, outcome mapping. The provider is never called when local
// validation fails.
func (s *Service) run(ctx handler.Context, st step) handler.Response {
	for _, f := range st.fields {
		if strings.TrimSpace(f.value) == "" {
			return handler.JSONError(handler.ErrBadRequest.WithMessage(missingFieldsMessage(st.fields)))
		}
	}

	if err := validator.First(st.rules...); err != nil {
		return handler.JSONError(err)
	}

	hash := secrethash.Derive(st.username, s.clientID, s.clientSecret)

	resp, err := st.call(ctx, hash)
	if err != nil {
		return s.failureResponse(ctx, st, err)
	}
	return resp
}

// failureResponse maps a provider failure to the step's HTTP result.
// Explicit HTTPErrors from the call pass through; categorized failures use
// the step's mapping table; everything else degrades to a 500 carrying the
// provider's own description verbatim.
func (s *Service) failureResponse(ctx handler.Context, st step, err error) handler.Response {
	var httpErr handler.HTTPError
	if errors.As(err, &httpErr) {
		s.log.ErrorContext(ctx, "unexpected provider outcome",
			logger.Step(st.name), logger.Error(err))
		return handler.JSONError(httpErr)
	}

	category := identity.CategoryOf(err)
	if mapped, ok := st.failures[category]; ok {
		s.log.InfoContext(ctx, "authentication step rejected",
			logger.Step(st.name), logger.Category(category))
		return handler.JSONError(mapped)
	}

	description := err.Error()
	var perr *identity.Error
	if errors.As(err, &perr) {
		description = perr.Description
	}

	s.log.ErrorContext(ctx, "identity provider call failed",
		logger.Step(st.name), logger.Category(category), logger.Error(err))
	return handler.JSONError(handler.ErrInternalServerError.WithMessage(description))
}

// missingFieldsMessage names every required field of the step, e.g.
// "missing email or password".
func missingFieldsMessage(fields []field) string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.name)
	}
	return "missing " + strings.Join(names, " or ")
}

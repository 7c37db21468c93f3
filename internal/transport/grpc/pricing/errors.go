package pricing

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
)

// mapError translates domain sentinel errors into gRPC status codes.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	if errors.Is(err, domain.ErrProductNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}

	// Invalid argument (validation)
	switch {
	case errors.Is(err, domain.ErrInvalidProductID),
		errors.Is(err, domain.ErrInvalidVariantID),
		errors.Is(err, domain.ErrEmptySKU),
		errors.Is(err, domain.ErrUnknownProductType),
		errors.Is(err, domain.ErrVariantParentMismatch),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrInvalidPrice):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	// Failed precondition (catalog shape)
	switch {
	case errors.Is(err, domain.ErrNotConfigurable),
		errors.Is(err, domain.ErrInvalidParent),
		errors.Is(err, domain.ErrNoVariants):
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}

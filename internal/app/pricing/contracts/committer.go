package contracts

import (
	"context"

	commitplan "github.com/murkotick/configurable-price-service/internal/pkg/committer"
)

// Committer applies a collection of mutations atomically. Usecases build a
// plan and hand it over without knowing the driver.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}

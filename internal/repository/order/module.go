package order

import "go.uber.org/fx"

// Module provides the order repository to Fx behind its contract.
var Module = fx.Provide(
	fx.Annotate(NewRepository, fx.As(new(Repository))),
)

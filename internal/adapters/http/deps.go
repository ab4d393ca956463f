package http

import (
	natsadapter "distaz-service/internal/adapters/nats"
	"distaz-service/internal/adapters/valkey"
	"distaz-service/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Routes *usecases.RouteService
	Events *natsadapter.Publisher
	Cache  *valkey.Cache
}

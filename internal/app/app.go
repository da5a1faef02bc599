package app

import (
	"go.uber.org/fx"

	"github.com/Additional-Code/northwind/internal/cache"
	"github.com/Additional-Code/northwind/internal/config"
	"github.com/Additional-Code/northwind/internal/database"
	"github.com/Additional-Code/northwind/internal/logger"
	"github.com/Additional-Code/northwind/internal/messaging"
	"github.com/Additional-Code/northwind/internal/observability"
	repositoryorder "github.com/Additional-Code/northwind/internal/repository/order"
	grpcserver "github.com/Additional-Code/northwind/internal/server/grpc"
	httpserver "github.com/Additional-Code/northwind/internal/server/http"
	serviceorder "github.com/Additional-Code/northwind/internal/service/order"
	transporthttp "github.com/Additional-Code/northwind/internal/transport/http"
	"github.com/Additional-Code/northwind/internal/worker"
	workerorder "github.com/Additional-Code/northwind/internal/worker/order"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	cache.Module,
	database.Module,
	logger.Module,
	messaging.Module,
	observability.Module,
	repositoryorder.Module,
	serviceorder.Module,
)

// HTTP wires the HTTP and gRPC transports on top of the core modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	grpcserver.Module,
	transporthttp.Module,
)

// Worker exposes background worker processing.
var Worker = fx.Options(
	Core,
	worker.Module,
	workerorder.Module,
)

// Module is the default application wiring (HTTP plus gRPC health).
var Module = HTTP

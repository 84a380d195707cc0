package middlewares

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	InternalConfig  *config.InternalConfig
	ResourceLimiter contracts.ResourceLimiter
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, resourceLimiter contracts.ResourceLimiter) *Middlewares {
	return &Middlewares{
		Log:             logger,
		InternalConfig:  internalConfig,
		ResourceLimiter: resourceLimiter,
	}
}

package contracts

import (
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type CounterUsecase interface {
	ClientCounters(ctx context.Context, name string) (*responses.ClientCounters, error)
	AdminCounters(ctx context.Context) (*responses.AdminCounters, error)
}

package match

import "context"

// Repository describes the matches collection. List returns matches in save order.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	Create(ctx context.Context, item Match) (Match, error)
	Delete(ctx context.Context, id string) error
}

package roster

import "context"

// Repository describes the players collection.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, team string) ([]Player, error)
	Exists(ctx context.Context, team, name string) (bool, error)
	Create(ctx context.Context, item Player) (Player, error)
	Delete(ctx context.Context, id string) error
}

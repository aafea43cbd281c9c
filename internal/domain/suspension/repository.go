package suspension

import "context"

// Repository describes the playerSuspensions collection.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	ListByTeams(ctx context.Context, teams ...string) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, bool, error)
	Find(ctx context.Context, team, player string) (Record, bool, error)
	Create(ctx context.Context, record Record) (Record, error)
	Update(ctx context.Context, record Record) error
	// BatchUpdate stores every record or none of them.
	BatchUpdate(ctx context.Context, records []Record) error
	Delete(ctx context.Context, id string) error
}

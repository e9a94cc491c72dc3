package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	Placements      PlacementRepository
	HigherEducation HigherEducationRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Placements:      PlacementRepository{db: db},
		HigherEducation: HigherEducationRepository{db: db},
	}
}

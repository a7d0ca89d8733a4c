// README: Rider store backed by PostgreSQL; Reserve is a conditional UPDATE.
package rider

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rashmitha1620/admin-sub000/internal/types"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

const riderColumns = `
    id, name, phone, status, city, pincode,
    delivery_radius_km, vehicle_type, rating, experience_years,
    current_orders, max_orders`

func (s *PGStore) List(ctx context.Context) ([]Rider, error) {
	rows, err := s.db.Query(ctx, `SELECT `+riderColumns+` FROM riders ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Rider
	for rows.Next() {
		r, err := scanRider(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *PGStore) Get(ctx context.Context, id types.ID) (*Rider, error) {
	row := s.db.QueryRow(ctx, `SELECT `+riderColumns+` FROM riders WHERE id = $1`, string(id))
	r, err := scanRider(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

// Reserve takes one unit of capacity if and only if the rider is in an
// available state and under its limit. The guard and increment happen
// in one statement, which is what keeps concurrent assignments from
// over-committing a rider.
func (s *PGStore) Reserve(ctx context.Context, id types.ID) (*Rider, error) {
	row := s.db.QueryRow(ctx, `
        UPDATE riders
        SET current_orders = current_orders + 1
        WHERE id = $1
          AND lower(status) IN ('online','active')
          AND current_orders < max_orders
        RETURNING `+riderColumns, string(id),
	)
	r, err := scanRider(row)
	if errors.Is(err, pgx.ErrNoRows) {
		// Either missing or the guard failed; look again to tell which.
		if _, err := s.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrUnavailable
	}
	return r, err
}

func (s *PGStore) Release(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE riders
        SET current_orders = current_orders - 1
        WHERE id = $1 AND current_orders > 0`, string(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := s.Get(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func scanRider(row pgx.Row) (*Rider, error) {
	var r Rider
	var status string
	err := row.Scan(
		&r.ID, &r.Name, &r.Phone, &status, &r.City, &r.Pincode,
		&r.DeliveryRadius, &r.VehicleType, &r.Rating, &r.ExperienceYears,
		&r.CurrentOrders, &r.MaxOrders,
	)
	if err != nil {
		return nil, err
	}
	r.Status = Status(status)
	return &r, nil
}

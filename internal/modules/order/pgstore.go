// README: Order store backed by PostgreSQL.
package order

import (
	"context"
	"encoding/json"
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

func (s *PGStore) Create(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO orders (
            id, customer_name, items,
            street, area, city, state, pincode,
            total_amount, currency, priority, status, created_at
        ) VALUES (
            $1, $2, $3,
            $4, $5, $6, $7, $8,
            $9, $10, $11, $12, $13
        )`,
		string(o.ID),
		o.CustomerName,
		items,
		o.DeliveryAddress.Street, o.DeliveryAddress.Area,
		o.DeliveryAddress.City, o.DeliveryAddress.State, o.DeliveryAddress.Pincode,
		o.Total.Amount, o.Total.Currency,
		string(o.Priority),
		string(o.Status),
		o.CreatedAt,
	)
	return err
}

func (s *PGStore) Get(ctx context.Context, id types.ID) (*Order, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, customer_name, items,
               street, area, city, state, pincode,
               total_amount, currency, priority, status,
               rider_id, vendor_id, delivery_partner, vendor_details, created_at
        FROM orders
        WHERE id = $1`, string(id),
	)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func (s *PGStore) List(ctx context.Context) ([]*Order, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, customer_name, items,
               street, area, city, state, pincode,
               total_amount, currency, priority, status,
               rider_id, vendor_id, delivery_partner, vendor_details, created_at
        FROM orders
        ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *PGStore) AttachRider(ctx context.Context, id, riderID types.ID, d PartnerDetails) (bool, error) {
	det, err := json.Marshal(d)
	if err != nil {
		return false, err
	}
	tag, err := s.db.Exec(ctx, `
        UPDATE orders
        SET rider_id = $1,
            delivery_partner = $2,
            status = 'assigned'
        WHERE id = $3
          AND rider_id IS NULL
          AND status IN ('pending','assigned')`,
		string(riderID), det, string(id),
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}
	// Distinguish a missing order from a guard failure.
	if _, err := s.Get(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

func (s *PGStore) AttachVendor(ctx context.Context, id, vendorID types.ID, d VendorDetails) (bool, error) {
	det, err := json.Marshal(d)
	if err != nil {
		return false, err
	}
	tag, err := s.db.Exec(ctx, `
        UPDATE orders
        SET vendor_id = $1,
            vendor_details = $2,
            status = 'assigned'
        WHERE id = $3
          AND vendor_id IS NULL
          AND status IN ('pending','assigned')`,
		string(vendorID), det, string(id),
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}
	if _, err := s.Get(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

func (s *PGStore) UpdateStatus(ctx context.Context, id types.ID, from, to Status) (bool, error) {
	tag, err := s.db.Exec(ctx, `
        UPDATE orders
        SET status = $1
        WHERE id = $2 AND status = $3`,
		string(to), string(id), string(from),
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}
	if _, err := s.Get(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

func (s *PGStore) AppendEvent(ctx context.Context, e *Event) error {
	var actorID *string
	if e.ActorID != nil {
		v := string(*e.ActorID)
		actorID = &v
	}
	_, err := s.db.Exec(ctx, `
        INSERT INTO order_state_events (
            order_id, from_status, to_status, actor_type, actor_id, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6)`,
		string(e.OrderID),
		string(e.FromStatus),
		string(e.ToStatus),
		e.ActorType,
		actorID,
		e.CreatedAt,
	)
	return err
}

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var items []byte
	var riderID, vendorID *string
	var partner, vendorDet []byte
	var priority, status string

	err := row.Scan(
		&o.ID, &o.CustomerName, &items,
		&o.DeliveryAddress.Street, &o.DeliveryAddress.Area,
		&o.DeliveryAddress.City, &o.DeliveryAddress.State, &o.DeliveryAddress.Pincode,
		&o.Total.Amount, &o.Total.Currency, &priority, &status,
		&riderID, &vendorID, &partner, &vendorDet, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Priority = Priority(priority)
	o.Status = Status(status)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
	}
	if riderID != nil {
		id := types.ID(*riderID)
		o.RiderID = &id
	}
	if vendorID != nil {
		id := types.ID(*vendorID)
		o.VendorID = &id
	}
	if len(partner) > 0 {
		var d PartnerDetails
		if err := json.Unmarshal(partner, &d); err != nil {
			return nil, err
		}
		o.DeliveryPartner = &d
	}
	if len(vendorDet) > 0 {
		var d VendorDetails
		if err := json.Unmarshal(vendorDet, &d); err != nil {
			return nil, err
		}
		o.VendorDetails = &d
	}
	return &o, nil
}

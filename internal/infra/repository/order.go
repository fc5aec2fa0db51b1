package repository

import (
	"context"
	"encoding/json"
	"time"

	"dogcatify-core/internal/domain/order"
	"dogcatify-core/internal/infra"
	"dogcatify-core/internal/infra/db"
	"dogcatify-core/internal/pkg/pgconv"
	"dogcatify-core/internal/usecase/commands"
	"dogcatify-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(pool db.DBTX) *OrderRepository {
	return &OrderRepository{db: pool}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	items, err := json.Marshal(itemViewsFromDomain(o.Items()))
	if err != nil {
		return infra.WrapRepoErr("failed to encode order items", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (
			id, partner_id, customer_id, items,
			subtotal, tax_amount, shipping_cost, total_amount,
			commission_amount, partner_amount,
			kind, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		o.ID(), o.PartnerID(), o.CustomerID(), items,
		pgconv.DecimalToNumeric(o.Subtotal()),
		pgconv.DecimalToNumeric(o.TaxAmount()),
		pgconv.DecimalToNumeric(o.ShippingCost()),
		pgconv.DecimalToNumeric(o.TotalAmount()),
		pgconv.DecimalToNumeric(o.CommissionAmount()),
		pgconv.DecimalToNumeric(o.PartnerAmount()),
		string(o.Kind()), string(o.Status()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

// Delete enforces the rollback precondition in SQL as well: an order with a
// payment session, or past the unpaid statuses, never matches.
func (r *OrderRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `
		DELETE FROM orders
		WHERE id = $1
		  AND status = ANY($2)
		  AND preference_id IS NULL`,
		id, []string{string(order.StatusPending), string(order.StatusPendingPayment)},
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete order", err)
	}
	return tag.RowsAffected(), nil
}

func (r *OrderRepository) AttachPreference(ctx context.Context, id uuid.UUID, preferenceID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET preference_id = $2, status = $3, updated_at = now()
		WHERE id = $1 AND status = $4 AND preference_id IS NULL`,
		id, preferenceID, string(order.StatusPendingPayment), string(order.StatusPending),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to attach preference", err)
	}
	return tag.RowsAffected(), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from []order.Status, to order.Status) (int64, error) {
	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = string(s)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = ANY($3)`,
		id, string(to), fromStrs,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update order status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *OrderRepository) FindSnapshot(ctx context.Context, id uuid.UUID) (*commands.OrderSnapshot, error) {
	var (
		snap         commands.OrderSnapshot
		status, kind string
		prefID       pgtype.Text
		createdAt    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, partner_id, customer_id, status, kind, preference_id, created_at
		FROM orders WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.PartnerID, &snap.CustomerID, &status, &kind, &prefID, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	snap.Status = order.Status(status)
	snap.Kind = order.Kind(kind)
	snap.PreferenceID = pgconv.StringPtrFromPgtype(prefID)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &snap, nil
}

// FindExpired returns open orders whose created_at predates the cutoff,
// oldest first, capped so one sweep cannot grow unbounded.
func (r *OrderRepository) FindExpired(ctx context.Context, cutoff time.Time, limit int32) ([]*commands.OrderSnapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, partner_id, customer_id, status, kind, preference_id, created_at
		FROM orders
		WHERE status = ANY($1) AND created_at < $2
		ORDER BY created_at
		LIMIT $3`,
		[]string{string(order.StatusPending), string(order.StatusPendingPayment)},
		cutoff, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query expired orders", err)
	}
	defer rows.Close()

	var result []*commands.OrderSnapshot
	for rows.Next() {
		var (
			snap         commands.OrderSnapshot
			status, kind string
			prefID       pgtype.Text
			createdAt    pgtype.Timestamptz
		)
		if err := rows.Scan(&snap.ID, &snap.PartnerID, &snap.CustomerID, &status, &kind, &prefID, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired order", err)
		}
		snap.Status = order.Status(status)
		snap.Kind = order.Kind(kind)
		snap.PreferenceID = pgconv.StringPtrFromPgtype(prefID)
		snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate expired orders", err)
	}
	return result, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, partner_id, customer_id, items,
		       subtotal, tax_amount, shipping_cost, total_amount,
		       commission_amount, partner_amount,
		       kind, status, preference_id, created_at, updated_at
		FROM orders WHERE id = $1`,
		id,
	)

	view, err := scanOrderView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by id", err)
	}
	return view, nil
}

func (r *OrderRepository) List(ctx context.Context, filter queries.OrderFilter) ([]*queries.OrderListView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, partner_id, customer_id, total_amount, kind, status, created_at
		FROM orders
		WHERE ($1::uuid IS NULL OR partner_id = $1)
		  AND ($2::uuid IS NULL OR customer_id = $2)
		  AND ($3::text IS NULL OR status = $3)
		ORDER BY created_at DESC
		LIMIT $4`,
		pgconv.UUIDPtrToPgtype(filter.PartnerID),
		pgconv.UUIDPtrToPgtype(filter.CustomerID),
		pgconv.StringPtrToPgtype(filter.Status),
		filter.Limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var result []*queries.OrderListView
	for rows.Next() {
		var (
			v         queries.OrderListView
			total     pgtype.Numeric
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.PartnerID, &v.CustomerID, &total, &v.Kind, &v.Status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		if v.TotalAmount, err = pgconv.DecimalFromNumeric(total); err != nil {
			return nil, infra.WrapRepoErr("invalid total amount", err)
		}
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(row rowScanner) (*queries.OrderView, error) {
	var (
		v                    queries.OrderView
		items                []byte
		subtotal, tax        pgtype.Numeric
		shipping, total      pgtype.Numeric
		commission, partnerA pgtype.Numeric
		prefID               pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.PartnerID, &v.CustomerID, &items,
		&subtotal, &tax, &shipping, &total,
		&commission, &partnerA,
		&v.Kind, &v.Status, &prefID, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &v.Items); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		dst *decimal.Decimal
		src pgtype.Numeric
	}{
		{&v.Subtotal, subtotal},
		{&v.TaxAmount, tax},
		{&v.ShippingCost, shipping},
		{&v.TotalAmount, total},
		{&v.CommissionAmount, commission},
		{&v.PartnerAmount, partnerA},
	} {
		d, err := pgconv.DecimalFromNumeric(f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = d
	}

	v.PreferenceID = pgconv.StringPtrFromPgtype(prefID)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

func itemViewsFromDomain(items []order.Item) []queries.OrderItemView {
	views := make([]queries.OrderItemView, len(items))
	for i, it := range items {
		views[i] = queries.OrderItemView{
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			TaxRate:   it.TaxRate,
			Subtotal:  it.Subtotal,
			TaxAmount: it.TaxAmount,
			Discount:  it.Discount,
			Currency:  it.Currency,
		}
	}
	return views
}

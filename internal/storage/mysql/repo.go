package mysql

import (
	"context"
	"database/sql"
	"time"

	"otasuke/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) InsertDeal(ctx context.Context, d domain.NewDeal, discountAmount int) (domain.Deal, error) {
	res, err := r.db.ExecContext(ctx, insertDealSQL,
		string(d.UserID),
		d.StoreName,
		d.ProductName,
		d.RegularPrice,
		d.SalePrice,
		discountAmount,
		valStr(d.Distance),
		d.SaleStartDate,
		d.SaleEndDate,
		d.StockStatus,
		valStr(d.RecommendationPoint),
		valStr(d.ImageURL),
		d.IsActive,
	)
	if err != nil {
		return domain.Deal{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Deal{}, err
	}
	return r.getDeal(ctx, id)
}

func (r *Repo) UpdateDeal(ctx context.Context, id int64, u domain.DealUpdate) (domain.Deal, error) {
	_, err := r.db.ExecContext(ctx, updateDealSQL,
		string(u.UserID),
		u.StoreName,
		u.ProductName,
		u.RegularPrice,
		u.SalePrice,
		valInt(u.DiscountAmount),
		valStr(u.Distance),
		u.SaleStartDate,
		u.SaleEndDate,
		u.StockStatus,
		valStr(u.RecommendationPoint),
		valStr(u.ImageURL),
		u.IsActive,
		id,
	)
	if err != nil {
		return domain.Deal{}, err
	}
	// MySQL reports 0 affected rows for no-op updates too, so the follow-up
	// read is what distinguishes "unchanged" from "missing".
	return r.getDeal(ctx, id)
}

func (r *Repo) DeleteDeal(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteDealSQL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	rows, err := r.db.QueryContext(ctx, listDealsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDeals(rows)
}

func (r *Repo) TodayDeals(ctx context.Context, user domain.UserID, today string) ([]domain.Deal, error) {
	rows, err := r.db.QueryContext(ctx, todayDealsSQL, string(user), today, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDeals(rows)
}

func (r *Repo) getDeal(ctx context.Context, id int64) (domain.Deal, error) {
	row := r.db.QueryRowContext(ctx, getDealSQL, id)
	d, err := scanDeal(row)
	if err == sql.ErrNoRows {
		return domain.Deal{}, domain.ErrNotFound
	}
	return d, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeal(row rowScanner) (domain.Deal, error) {
	var d domain.Deal
	var userID string
	var start, end time.Time // DATE columns arrive as time.Time with parseTime=true
	var distance, point, imageURL sql.NullString
	if err := row.Scan(
		&d.ID,
		&userID,
		&d.StoreName,
		&d.ProductName,
		&d.RegularPrice,
		&d.SalePrice,
		&d.DiscountAmount,
		&distance,
		&start,
		&end,
		&d.StockStatus,
		&point,
		&imageURL,
		&d.IsActive,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return domain.Deal{}, err
	}
	d.UserID = domain.UserID(userID)
	d.SaleStartDate = start.Format("2006-01-02")
	d.SaleEndDate = end.Format("2006-01-02")
	if distance.Valid {
		s := distance.String
		d.Distance = &s
	}
	if point.Valid {
		s := point.String
		d.RecommendationPoint = &s
	}
	if imageURL.Valid {
		s := imageURL.String
		d.ImageURL = &s
	}
	return d, nil
}

func scanDeals(rows *sql.Rows) ([]domain.Deal, error) {
	var out []domain.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

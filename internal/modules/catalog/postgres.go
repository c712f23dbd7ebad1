package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type postgresStore struct{ db *sql.DB }

// NewPostgresStore creates a PostgreSQL-backed catalog store implementing
// the same contract as the in-memory one, for deployments that want
// listings to survive a restart.
func NewPostgresStore(db *sql.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Create(ctx context.Context, draft ListingDraft, sellerID uuid.UUID) (*Listing, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO listings (id, seller_id, name, description, price, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, seller_id, name, description, price, image_url, status, created_at, updated_at`,
		id, sellerID, draft.Name, draft.Description, draft.Price, draft.ImageURL, StatusAvailable)
	return scanListing(row.Scan)
}

func (s *postgresStore) Get(ctx context.Context, id uuid.UUID) (*Listing, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seller_id, name, description, price, image_url, status, created_at, updated_at
		FROM listings WHERE id = $1`, id)
	l, err := scanListing(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return l, err
}

func (s *postgresStore) Update(ctx context.Context, id uuid.UUID, patch ListingPatch) (*Listing, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE listings
		SET name = $1, description = $2, price = $3, image_url = $4,
		    status = COALESCE(NULLIF($5, ''), status), updated_at = NOW()
		WHERE id = $6
		RETURNING id, seller_id, name, description, price, image_url, status, created_at, updated_at`,
		patch.Name, patch.Description, patch.Price, patch.ImageURL, string(patch.Status), id)
	l, err := scanListing(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return l, err
}

func (s *postgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *postgresStore) List(ctx context.Context) ([]*Listing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seller_id, name, description, price, image_url, status, created_at, updated_at
		FROM listings ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*Listing
	for rows.Next() {
		l, err := scanListing(rows.Scan)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func scanListing(scan func(...interface{}) error) (*Listing, error) {
	l := &Listing{}
	err := scan(&l.ID, &l.SellerID, &l.Name, &l.Description, &l.Price,
		&l.ImageURL, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

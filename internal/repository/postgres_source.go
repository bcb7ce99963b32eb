package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/models"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
)

const (
	listProductsQuery = `
		SELECT id, name, category, description, image, cost, base_price, base_demand, elasticity, inventory
		FROM products
		ORDER BY id
	`
	listProductsByIDsQuery = `
		SELECT id, name, category, description, image, cost, base_price, base_demand, elasticity, inventory
		FROM products
		WHERE id = ANY($1)
		ORDER BY id
	`
)

// OpenPostgres opens and verifies a PostgreSQL connection pool
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// PostgresSource reads product records from the products table.
// NULL optional columns receive the usual ingestion defaults.
type PostgresSource struct {
	db         *sql.DB
	productIDs []string
}

// NewPostgresSource creates a database-backed source. When productIDs is
// non-empty only those products are loaded.
func NewPostgresSource(db *sql.DB, productIDs []string) *PostgresSource {
	return &PostgresSource{db: db, productIDs: productIDs}
}

// Name identifies the source in logs
func (s *PostgresSource) Name() string {
	return "postgres:products"
}

// Load runs the catalog query
func (s *PostgresSource) Load(ctx context.Context) ([]models.ProductInput, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if len(s.productIDs) > 0 {
		rows, err = s.db.QueryContext(ctx, listProductsByIDsQuery, pq.Array(s.productIDs))
	} else {
		rows, err = s.db.QueryContext(ctx, listProductsQuery)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	out := make([]models.ProductInput, 0)
	for rows.Next() {
		in, err := scanProductInput(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProductInput(scanner rowScanner) (models.ProductInput, error) {
	var (
		in          models.ProductInput
		name        sql.NullString
		category    sql.NullString
		description sql.NullString
		image       sql.NullString
		cost        sql.NullFloat64
		basePrice   sql.NullFloat64
		baseDemand  sql.NullFloat64
		elasticity  sql.NullFloat64
		inventory   sql.NullInt64
	)

	if err := scanner.Scan(
		&in.ID,
		&name,
		&category,
		&description,
		&image,
		&cost,
		&basePrice,
		&baseDemand,
		&elasticity,
		&inventory,
	); err != nil {
		return models.ProductInput{}, err
	}

	in.Name = name.String
	in.Category = category.String
	in.Description = description.String
	in.Image = image.String
	if cost.Valid {
		in.Cost = &cost.Float64
	}
	if basePrice.Valid {
		in.BasePrice = &basePrice.Float64
	}
	if baseDemand.Valid {
		in.BaseDemand = &baseDemand.Float64
	}
	if elasticity.Valid {
		in.Elasticity = &elasticity.Float64
	}
	if inventory.Valid {
		v := float64(inventory.Int64)
		in.Inventory = &v
	}

	return in, nil
}

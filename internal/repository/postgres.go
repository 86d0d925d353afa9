// Package repository содержит реализацию доступа к данным в PostgreSQL.
package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mmeshcher/invoice-dashboard/internal/apperr"
	"github.com/mmeshcher/invoice-dashboard/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrUserNotFound возвращается, если пользователь с указанным email не найден.
var ErrUserNotFound = errors.New("user not found")

// PostgresRepository предоставляет доступ к хранилищу данных в PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository создаёт пул соединений и инициализирует схему БД через миграции.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Close закрывает пул соединений с БД.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// wrapDB переводит ошибку запроса в категорию Database. Нарушение уникальности
// помечается отдельно в тексте, чтобы оператор видел причину без раскопок.
func wrapDB(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return apperr.Database(fmt.Errorf("%s: unique violation on %s: %w", op, pgErr.ConstraintName, err))
	}
	return apperr.Database(fmt.Errorf("%s: %w", op, err))
}

// InsertInvoice создаёт новую строку счёта.
func (r *PostgresRepository) InsertInvoice(ctx context.Context, customerID string, amountCents int64, status model.InvoiceStatus, date time.Time) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO invoices (customer_id, amount, status, date) VALUES ($1, $2, $3, $4)`,
		customerID, amountCents, string(status), date,
	)
	if err != nil {
		return wrapDB("insert invoice", err)
	}
	return nil
}

// UpdateInvoice заменяет изменяемые поля счёта с указанным идентификатором.
// Отсутствие подходящей строки ошибкой на этом уровне не считается.
func (r *PostgresRepository) UpdateInvoice(ctx context.Context, id, customerID string, amountCents int64, status model.InvoiceStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE invoices
		 SET customer_id = $2, amount = $3, status = $4
		 WHERE id = $1`,
		id, customerID, amountCents, string(status),
	)
	if err != nil {
		return wrapDB("update invoice", err)
	}
	return nil
}

// DeleteInvoice удаляет счёт с указанным идентификатором.
// Отсутствие подходящей строки ошибкой на этом уровне не считается.
func (r *PostgresRepository) DeleteInvoice(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return wrapDB("delete invoice", err)
	}
	return nil
}

// ListInvoices возвращает все счета, свежие первыми.
func (r *PostgresRepository) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, customer_id, amount, status, date
		 FROM invoices
		 ORDER BY date DESC`,
	)
	if err != nil {
		return nil, wrapDB("select invoices", err)
	}
	defer rows.Close()

	var invoices []model.Invoice
	for rows.Next() {
		var (
			inv    model.Invoice
			status string
		)
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.AmountCents, &status, &inv.Date); err != nil {
			return nil, wrapDB("scan invoice", err)
		}
		inv.Status = model.InvoiceStatus(status)
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDB("rows error", err)
	}

	return invoices, nil
}

// GetUserByEmail возвращает пользователя по email.
func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password FROM users WHERE email = $1`,
		email,
	)

	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, wrapDB("get user", err)
	}

	return &u, nil
}

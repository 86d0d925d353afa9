package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mmeshcher/invoice-dashboard/internal/seed"
)

// Seed идемпотентно создаёт таблицы и загружает фикстуры в одной транзакции:
// при сбое любого шага всё откатывается, частичного состояния не остаётся.
// Вставка пропускает строки с уже существующим ключом и никогда не обновляет их.
// Таблицы создаются в порядке будущего направления внешних ключей:
// users и customers до invoices, revenue последней.
func (r *PostgresRepository) Seed(ctx context.Context, data seed.Fixtures) error {
	// Быстрая проверка соединения до открытия транзакции.
	var ok int
	if err := r.pool.QueryRow(ctx, `SELECT 1`).Scan(&ok); err != nil {
		return wrapDB("seed connection check", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapDB("begin tx", err)
	}
	defer tx.Rollback(ctx)

	if err := seedUsers(ctx, tx, data.Users); err != nil {
		return err
	}
	if err := seedCustomers(ctx, tx, data.Customers); err != nil {
		return err
	}
	if err := seedInvoices(ctx, tx, data.Invoices); err != nil {
		return err
	}
	if err := seedRevenue(ctx, tx, data.Revenue); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapDB("commit tx", err)
	}

	return nil
}

func seedUsers(ctx context.Context, tx pgx.Tx, users []seed.User) error {
	if _, err := tx.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`); err != nil {
		return wrapDB("create extension", err)
	}

	if _, err := tx.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
	); err != nil {
		return wrapDB("create users table", err)
	}

	b := &pgx.Batch{}
	for _, u := range users {
		b.Queue(
			`INSERT INTO users (id, name, email, password)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO NOTHING`,
			u.ID, u.Name, u.Email, string(u.PasswordHash),
		)
	}
	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return wrapDB("insert users", err)
	}

	return nil
}

func seedCustomers(ctx context.Context, tx pgx.Tx, customers []seed.Customer) error {
	if _, err := tx.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS customers (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			image_url VARCHAR(255) NOT NULL
		)`,
	); err != nil {
		return wrapDB("create customers table", err)
	}

	b := &pgx.Batch{}
	for _, c := range customers {
		b.Queue(
			`INSERT INTO customers (id, name, email, image_url)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.Email, c.ImageURL,
		)
	}
	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return wrapDB("insert customers", err)
	}

	return nil
}

func seedInvoices(ctx context.Context, tx pgx.Tx, invoices []seed.Invoice) error {
	if _, err := tx.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS invoices (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			customer_id UUID NOT NULL,
			amount INT NOT NULL,
			status VARCHAR(255) NOT NULL,
			date DATE NOT NULL
		)`,
	); err != nil {
		return wrapDB("create invoices table", err)
	}

	b := &pgx.Batch{}
	for _, inv := range invoices {
		date, err := time.Parse("2006-01-02", inv.Date)
		if err != nil {
			return fmt.Errorf("parse fixture date %q: %w", inv.Date, err)
		}
		b.Queue(
			`INSERT INTO invoices (id, customer_id, amount, status, date)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO NOTHING`,
			inv.ID, inv.CustomerID, inv.AmountCents, inv.Status, date,
		)
	}
	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return wrapDB("insert invoices", err)
	}

	return nil
}

func seedRevenue(ctx context.Context, tx pgx.Tx, months []seed.Revenue) error {
	if _, err := tx.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS revenue (
			month VARCHAR(4) NOT NULL UNIQUE,
			revenue INT NOT NULL
		)`,
	); err != nil {
		return wrapDB("create revenue table", err)
	}

	b := &pgx.Batch{}
	for _, m := range months {
		b.Queue(
			`INSERT INTO revenue (month, revenue)
			 VALUES ($1, $2)
			 ON CONFLICT (month) DO NOTHING`,
			m.Month, m.Revenue,
		)
	}
	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return wrapDB("insert revenue", err)
	}

	return nil
}

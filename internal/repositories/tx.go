package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store groups every table repository bound to one connection or transaction.
type Store struct {
	Products   ProductRepository
	Categories CategoryRepository
	Cart       CartRepository
	Wishlist   WishlistRepository
	Orders     OrderRepository
	Customers  CustomerRepository
	Newsletter NewsletterRepository
	Feedback   FeedbackRepository
}

func NewStore(db DBTX) *Store {
	return &Store{
		Products:   NewProductRepo(db),
		Categories: NewCategoryRepo(db),
		Cart:       NewCartRepo(db),
		Wishlist:   NewWishlistRepo(db),
		Orders:     NewOrderRepo(db),
		Customers:  NewCustomerRepo(db),
		Newsletter: NewNewsletterRepo(db),
		Feedback:   NewFeedbackRepo(db),
	}
}

type TxRunner interface {
	// WithinTx runs fn against a Store bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(store *Store) error) error
}

type txRunner struct {
	db *sql.DB
}

func NewTxRunner(db *sql.DB) TxRunner {
	return &txRunner{db: db}
}

func (t *txRunner) WithinTx(ctx context.Context, fn func(store *Store) error) (err error) {

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(NewStore(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

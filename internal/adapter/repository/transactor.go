package repository

import (
	"context"
	"fmt"

	entdb "github.com/eslsoft/drillnet/internal/infrastructure/database/ent"
	"github.com/eslsoft/drillnet/internal/repository"
)

type Transactor struct {
	client *entdb.Client
}

// NewTransactor constructs an ent-backed transaction runner.
func NewTransactor(client *entdb.Client) repository.Transactor {
	return &Transactor{client: client}
}

// InTx begins a transaction and stashes it in the context so the ent-backed
// repositories pick it up through txClient. A context that already carries a
// transaction joins it instead of opening a nested one.
func (t *Transactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if entdb.TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := t.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(entdb.NewTxContext(ctx, tx)); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// txClient resolves the client to run a statement on: the transactional one
// when the context carries a transaction, the pooled one otherwise.
func txClient(ctx context.Context, fallback *entdb.Client) *entdb.Client {
	if tx := entdb.TxFromContext(ctx); tx != nil {
		return tx.Client()
	}
	return fallback
}

package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db         *DB
	tenantRepo contract.TenantRepo
	recordRepo contract.RecordRepo
	ledgerRepo contract.LedgerRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.tenantRepo = newTenantRepo(i.db.conn)
	i.recordRepo = newRecordRepo(i.db.conn)
	i.ledgerRepo = newLedgerRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		tenantRepo: newTenantRepo(db),
		recordRepo: newRecordRepo(db),
		ledgerRepo: newLedgerRepo(db),
	}
}

// Tenant returns the tenant configuration repository
func (i *instance) Tenant() contract.TenantRepo {
	return i.tenantRepo
}

// Record returns the anniversary record repository
func (i *instance) Record() contract.RecordRepo {
	return i.recordRepo
}

// Ledger returns the wish ledger repository
func (i *instance) Ledger() contract.LedgerRepo {
	return i.ledgerRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}


package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainrepo "github.com/wekeepgrowing/semo-todo/internal/domain/repository"
)

// ErrTransactionDone is returned when Commit is called on a finished transaction.
var ErrTransactionDone = errors.New("transaction already finished")

type unitOfWork struct {
	ctx    context.Context
	logger *zap.Logger

	users         domainrepo.UserRepository
	todos         domainrepo.TodoRepository
	subTodos      domainrepo.SubTodoRepository
	collaborators domainrepo.CollaboratorRepository
	categories    domainrepo.CategoryRepository

	transactional bool
	mu            sync.Mutex
	hooks         []func(ctx context.Context)
}

func newUnitOfWork(ctx context.Context, db *gorm.DB, logger *zap.Logger, transactional bool) *unitOfWork {
	return &unitOfWork{
		ctx:           ctx,
		logger:        logger,
		users:         NewUserRepository(db),
		todos:         NewTodoRepository(db, logger),
		subTodos:      NewSubTodoRepository(db),
		collaborators: NewCollaboratorRepository(db),
		categories:    NewCategoryRepository(db),
		transactional: transactional,
	}
}

// NewUnitOfWork returns repositories bound to db without opening a transaction.
// AfterCommit hooks run immediately.
func NewUnitOfWork(db *gorm.DB, logger *zap.Logger) domainrepo.UnitOfWork {
	return newUnitOfWork(context.Background(), db, logger, false)
}

func (u *unitOfWork) Users() domainrepo.UserRepository                 { return u.users }
func (u *unitOfWork) Todos() domainrepo.TodoRepository                 { return u.todos }
func (u *unitOfWork) SubTodos() domainrepo.SubTodoRepository           { return u.subTodos }
func (u *unitOfWork) Collaborators() domainrepo.CollaboratorRepository { return u.collaborators }
func (u *unitOfWork) Categories() domainrepo.CategoryRepository        { return u.categories }

func (u *unitOfWork) AfterCommit(fn func(ctx context.Context)) {
	if !u.transactional {
		u.runHook(u.ctx, fn)
		return
	}
	u.mu.Lock()
	u.hooks = append(u.hooks, fn)
	u.mu.Unlock()
}

func (u *unitOfWork) takeHooks() []func(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	hooks := u.hooks
	u.hooks = nil
	return hooks
}

func (u *unitOfWork) runHook(ctx context.Context, fn func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("after-commit hook panicked", zap.Any("panic", r))
		}
	}()
	fn(ctx)
}

type gormTransaction struct {
	*unitOfWork
	tx   *gorm.DB
	done bool
}

func (t *gormTransaction) Commit() error {
	if t.done {
		return ErrTransactionDone
	}
	t.done = true

	if err := t.tx.Commit().Error; err != nil {
		t.takeHooks()
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	ctx := context.WithoutCancel(t.ctx)
	for _, hook := range t.takeHooks() {
		t.runHook(ctx, hook)
	}
	return nil
}

// Rollback is a no-op once the transaction has finished.
func (t *gormTransaction) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	t.takeHooks()

	if err := t.tx.Rollback().Error; err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

type transactionManager struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTransactionManager creates a TransactionManager over db.
func NewTransactionManager(db *gorm.DB, logger *zap.Logger) domainrepo.TransactionManager {
	return &transactionManager{db: db, logger: logger}
}

func (m *transactionManager) Begin(ctx context.Context) (domainrepo.Transaction, error) {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	return &gormTransaction{
		unitOfWork: newUnitOfWork(ctx, tx, m.logger, true),
		tx:         tx,
	}, nil
}

func (m *transactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow domainrepo.UnitOfWork) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			m.logger.Error("rollback failed", zap.Error(rbErr))
		}
		return err
	}

	return tx.Commit()
}

package repository

import "context"

// UnitOfWork groups the repositories that share one database transaction.
type UnitOfWork interface {
	Users() UserRepository
	Todos() TodoRepository
	SubTodos() SubTodoRepository
	Collaborators() CollaboratorRepository
	Categories() CategoryRepository

	// AfterCommit registers fn to run once the transaction has committed.
	// Hooks are dropped on rollback.
	AfterCommit(fn func(ctx context.Context))
}

// Transaction is a UnitOfWork that the caller finishes explicitly.
type Transaction interface {
	UnitOfWork
	Commit() error
	Rollback() error
}

// TransactionManager opens units of work.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
	// WithinTransaction commits when fn returns nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}

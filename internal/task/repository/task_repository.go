package repository

import (
	"context"
	"errors"
	"fmt"

	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/m-orlov/taskboard/internal/task/domain"
)

type Repository interface {
	Insert(ctx context.Context, task domain.Task) error
	FindAll(ctx context.Context) ([]domain.Task, error)
	FindByUsername(ctx context.Context, username string) ([]domain.Task, error)
	Update(ctx context.Context, id domain.ID, patch domain.Patch) (domain.Task, error)
	Delete(ctx context.Context, id domain.ID) error
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Insert(ctx context.Context, task domain.Task) error {
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO tasks (id, title, completed, username, created_at) VALUES ($1, $2, $3, $4, $5)`,
		string(task.ID),
		task.Title,
		task.Completed,
		task.Username,
		task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (r *PgRepository) FindAll(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, title, completed, username, created_at FROM tasks ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *PgRepository) FindByUsername(ctx context.Context, username string) ([]domain.Task, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, title, completed, username, created_at FROM tasks WHERE username = $1 ORDER BY created_at ASC`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by username: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *PgRepository) Update(ctx context.Context, id domain.ID, patch domain.Patch) (domain.Task, error) {
	row := r.pool.QueryRow(
		ctx,
		`UPDATE tasks
		 SET title = COALESCE($2, title), completed = COALESCE($3, completed)
		 WHERE id = $1
		 RETURNING id, title, completed, username, created_at`,
		string(id),
		patch.Title,
		patch.Completed,
	)

	var task domain.Task
	err := row.Scan(&task.ID, &task.Title, &task.Completed, &task.Username, &task.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete is idempotent: deleting an absent id is not an error.
func (r *PgRepository) Delete(ctx context.Context, id domain.ID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func scanTasks(rows pgx.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.Username, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rows.Err())
	}

	return tasks, nil
}

var ErrTaskNotFound = errors.New("task not found")

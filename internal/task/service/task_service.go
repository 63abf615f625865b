package service

import (
	"context"
	"errors"

	"github.com/m-orlov/taskboard/internal/common/clock"
	commoncrypto "github.com/m-orlov/taskboard/internal/common/crypto"
	commonerrors "github.com/m-orlov/taskboard/internal/common/errors"
	"github.com/m-orlov/taskboard/internal/common/logger"
	"github.com/m-orlov/taskboard/internal/task/domain"
	taskrepo "github.com/m-orlov/taskboard/internal/task/repository"
)

// TaskService maps CRUD intents onto single persistence calls. Every
// operation is one database round trip; concurrent updates to the same task
// race at the store with last-write-wins semantics.
type TaskService struct {
	repo        taskrepo.Repository
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger
}

type TaskServiceDeps struct {
	Repo        taskrepo.Repository
	IDGenerator commoncrypto.IDGenerator
	Clock       clock.Clock
	Log         *logger.Logger
}

func NewTaskService(deps TaskServiceDeps) *TaskService {
	c := deps.Clock
	if c == nil {
		c = clock.NewRealClock()
	}
	return &TaskService{
		repo:        deps.Repo,
		idGenerator: deps.IDGenerator,
		clock:       c,
		log:         deps.Log,
	}
}

type CreateInput struct {
	Title    string
	Username string
}

func (s *TaskService) ListAll(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "tasks_list_failed",
		}).Errorf("list tasks failed: %v", err)
		return nil, commonerrors.ErrDatabaseError.WithCause(err)
	}

	incrementTasksListed()
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) ListByUser(ctx context.Context, username string) ([]domain.Task, error) {
	tasks, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "tasks_list_by_user_failed",
		}).Errorf("list tasks by user failed: %v", err)
		return nil, commonerrors.ErrDatabaseError.WithCause(err)
	}

	incrementTasksListed()
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, input CreateInput) (domain.Task, error) {
	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "task_id_generation_failed",
		}).Errorf("create task failed: id generation error: %v", err)
		return domain.Task{}, commonerrors.ErrInternalError.WithCause(err)
	}

	task := domain.Task{
		ID:        domain.ID(id),
		Title:     input.Title,
		Completed: false,
		Username:  input.Username,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, task); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"task_id": id,
			"action":  "task_create_failed",
		}).Errorf("create task failed: %v", err)
		return domain.Task{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"task_id":  id,
		"username": input.Username,
		"action":   "task_created",
	}).Info("task created")

	incrementTasksCreated()
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id domain.ID, patch domain.Patch) (domain.Task, error) {
	task, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, taskrepo.ErrTaskNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"task_id": string(id),
				"action":  "task_update_not_found",
			}).Warn("update task failed: not found")
			return domain.Task{}, ErrTaskNotFound
		}
		s.log.WithFields(ctx, logger.Fields{
			"task_id": string(id),
			"action":  "task_update_failed",
		}).Errorf("update task failed: %v", err)
		return domain.Task{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"task_id": string(id),
		"action":  "task_updated",
	}).Info("task updated")

	incrementTasksUpdated()
	return task, nil
}

// Remove succeeds whether or not the task exists.
func (s *TaskService) Remove(ctx context.Context, id domain.ID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"task_id": string(id),
			"action":  "task_delete_failed",
		}).Errorf("delete task failed: %v", err)
		return commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"task_id": string(id),
		"action":  "task_deleted",
	}).Info("task deleted")

	incrementTasksDeleted()
	return nil
}

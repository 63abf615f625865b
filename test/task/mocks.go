package task

import (
	"context"

	taskdomain "github.com/m-orlov/taskboard/internal/task/domain"
	taskrepo "github.com/m-orlov/taskboard/internal/task/repository"
)

type mockTaskRepo struct {
	insertFunc         func(ctx context.Context, t taskdomain.Task) error
	findAllFunc        func(ctx context.Context) ([]taskdomain.Task, error)
	findByUsernameFunc func(ctx context.Context, username string) ([]taskdomain.Task, error)
	updateFunc         func(ctx context.Context, id taskdomain.ID, patch taskdomain.Patch) (taskdomain.Task, error)
	deleteFunc         func(ctx context.Context, id taskdomain.ID) error
}

func (m *mockTaskRepo) Insert(ctx context.Context, t taskdomain.Task) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepo) FindAll(ctx context.Context) ([]taskdomain.Task, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTaskRepo) FindByUsername(ctx context.Context, username string) ([]taskdomain.Task, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockTaskRepo) Update(ctx context.Context, id taskdomain.ID, patch taskdomain.Patch) (taskdomain.Task, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return taskdomain.Task{}, taskrepo.ErrTaskNotFound
}

func (m *mockTaskRepo) Delete(ctx context.Context, id taskdomain.ID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// fakeTaskStore keeps tasks in insertion order with the same update and
// delete semantics as the SQL repository.
type fakeTaskStore struct {
	tasks []taskdomain.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{}
}

func (f *fakeTaskStore) Insert(_ context.Context, t taskdomain.Task) error {
	f.tasks = append(f.tasks, t)
	return nil
}

func (f *fakeTaskStore) FindAll(_ context.Context) ([]taskdomain.Task, error) {
	out := make([]taskdomain.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *fakeTaskStore) FindByUsername(_ context.Context, username string) ([]taskdomain.Task, error) {
	var out []taskdomain.Task
	for _, t := range f.tasks {
		if t.Username == username {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) Update(_ context.Context, id taskdomain.ID, patch taskdomain.Patch) (taskdomain.Task, error) {
	for i := range f.tasks {
		if f.tasks[i].ID != id {
			continue
		}
		if patch.Title != nil {
			f.tasks[i].Title = *patch.Title
		}
		if patch.Completed != nil {
			f.tasks[i].Completed = *patch.Completed
		}
		return f.tasks[i], nil
	}
	return taskdomain.Task{}, taskrepo.ErrTaskNotFound
}

func (f *fakeTaskStore) Delete(_ context.Context, id taskdomain.ID) error {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

type sequenceIDGenerator struct {
	next int
	ids  []string
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	if g.next < len(g.ids) {
		id := g.ids[g.next]
		g.next++
		return id, nil
	}
	g.next++
	return "generated-id", nil
}

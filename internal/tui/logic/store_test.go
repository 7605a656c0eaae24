package logic

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todos-tui/internal/api"
	"github.com/hy4ri/todos-tui/internal/config"
	"github.com/hy4ri/todos-tui/internal/logging"
	"github.com/hy4ri/todos-tui/internal/tui/state"
)

// fakeStore is an in-memory Store that records every call and can be told
// to fail.
type fakeStore struct {
	mu sync.Mutex

	todos     []api.Todo
	nextID    int
	listErr   error
	createErr error
	deleteErr map[int]error
	updateErr map[int]error

	creates []api.CreateTodoRequest
	deletes []int
	updates map[int][]api.UpdateTodoRequest

	delay     time.Duration
	active    int32
	maxActive int32
}

func newFakeStore(todos ...api.Todo) *fakeStore {
	return &fakeStore{
		todos:     todos,
		nextID:    100,
		deleteErr: make(map[int]error),
		updateErr: make(map[int]error),
		updates:   make(map[int][]api.UpdateTodoRequest),
	}
}

func (f *fakeStore) track() func() {
	current := atomic.AddInt32(&f.active, 1)
	for {
		max := atomic.LoadInt32(&f.maxActive)
		if current <= max || atomic.CompareAndSwapInt32(&f.maxActive, max, current) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return func() { atomic.AddInt32(&f.active, -1) }
}

func (f *fakeStore) ListTodos(ctx context.Context) ([]api.Todo, error) {
	defer f.track()()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]api.Todo, len(f.todos))
	copy(out, f.todos)
	return out, nil
}

func (f *fakeStore) CreateTodo(ctx context.Context, req api.CreateTodoRequest) (*api.Todo, error) {
	defer f.track()()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	todo := api.Todo{ID: f.nextID, UserID: req.UserID, Title: req.Title, Completed: req.Completed}
	f.todos = append(f.todos, todo)
	return &todo, nil
}

func (f *fakeStore) UpdateTodo(ctx context.Context, id int, req api.UpdateTodoRequest) (*api.Todo, error) {
	defer f.track()()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates[id] = append(f.updates[id], req)
	if err := f.updateErr[id]; err != nil {
		return nil, err
	}
	for i := range f.todos {
		if f.todos[i].ID == id {
			f.todos[i] = req.ApplyTo(f.todos[i])
			todo := f.todos[i]
			return &todo, nil
		}
	}
	return &api.Todo{ID: id}, nil
}

func (f *fakeStore) DeleteTodo(ctx context.Context, id int) error {
	defer f.track()()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	return f.deleteErr[id]
}

func (f *fakeStore) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, u := range f.updates {
		n += len(u)
	}
	return n
}

func (f *fakeStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.creates) + len(f.deletes)
	for _, u := range f.updates {
		n += len(u)
	}
	return n
}

type notification struct{ title, message string }

type testHarness struct {
	*Handler
	store    *fakeStore
	notified []notification
	copied   []string
}

func newTestHandler(t *testing.T, todos ...api.Todo) *testHarness {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Server.OwnerID = 7
	store := newFakeStore(todos...)

	s := state.New(store, cfg, logging.Discard())
	s.Todos = append([]api.Todo(nil), todos...)
	s.Loaded = true
	s.Width, s.Height = 80, 20

	th := &testHarness{Handler: NewHandler(s), store: store}
	th.notify = func(title, message string) error {
		th.notified = append(th.notified, notification{title, message})
		return nil
	}
	th.copyText = func(text string) error {
		th.copied = append(th.copied, text)
		return nil
	}
	return th
}

// exec runs cmd and feeds what it produces back into the handler. Batches
// are expanded; commands returned by Update are not run.
func (th *testHarness) exec(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			th.exec(c)
		}
		return
	}
	if msg != nil {
		th.Update(msg)
	}
}

func todo(id int, title string, completed bool) api.Todo {
	return api.Todo{ID: id, UserID: 7, Title: title, Completed: completed}
}

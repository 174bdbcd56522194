package labels

import (
	"context"
	"sync"
	"testing"

	"github.com/thenoetrevino/lbl/internal/models"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ============================================================================
// FAKE BACKEND
// ============================================================================

// fakeAPI is an in-memory LabelAPI that records calls and can be told to fail.
type fakeAPI struct {
	mu     sync.Mutex
	labels map[int]*models.Label
	order  []int
	nextID int
	calls  []string

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	// createReply, when set, is returned by Create in place of the stored copy
	createReply *models.Label
}

func newFakeAPI(seed ...*models.Label) *fakeAPI {
	f := &fakeAPI{labels: make(map[int]*models.Label), nextID: 1}
	for _, l := range seed {
		f.labels[l.ID] = l.Clone()
		f.order = append(f.order, l.ID)
		if l.ID >= f.nextID {
			f.nextID = l.ID + 1
		}
	}
	return f
}

func (f *fakeAPI) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) List(ctx context.Context) ([]*models.Label, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.Label, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.labels[id].Clone())
	}
	return out, nil
}

func (f *fakeAPI) Create(ctx context.Context, label *models.Label) (*models.Label, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createReply != nil {
		return f.createReply.Clone(), nil
	}
	created := label.Clone()
	created.ID = f.nextID
	f.nextID++
	f.labels[created.ID] = created
	f.order = append(f.order, created.ID)
	return created.Clone(), nil
}

func (f *fakeAPI) Update(ctx context.Context, label *models.Label) (*models.Label, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("update")
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	updated := label.Clone()
	f.labels[updated.ID] = updated
	return updated.Clone(), nil
}

func (f *fakeAPI) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.labels, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

// countID returns how many times id appears in ids
func countID(ids []int, id int) int {
	n := 0
	for _, v := range ids {
		if v == id {
			n++
		}
	}
	return n
}

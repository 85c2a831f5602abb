package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"courseadmin/config"
	"courseadmin/internal/domain/service"
	"courseadmin/internal/infra/persistence/memory"
	mockSvc "courseadmin/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// recordingPublisher keeps every published event for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []service.ContentEvent
}

func (p *recordingPublisher) PublishContentEvent(_ context.Context, event *service.ContentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) actions(resource string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []string
	for _, e := range p.events {
		if e.Resource == resource {
			out = append(out, e.Action)
		}
	}

	return out
}

type testFixture struct {
	db        *memory.DB
	storage   *mockSvc.MockObjectStorage
	images    *mockSvc.MockImageProcessor
	publisher *recordingPublisher
	config    *config.Config
	logger    *slog.Logger
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	return &testFixture{
		db:        memory.Open(),
		storage:   mockSvc.NewMockObjectStorage(t),
		images:    mockSvc.NewMockImageProcessor(t),
		publisher: &recordingPublisher{},
		config:    &config.Config{},
		logger:    newDiscardLogger(),
	}
}

// expectImagePassThrough makes the image processor return its input as JPEG.
func (f *testFixture) expectImagePassThrough() {
	f.images.EXPECT().Normalize(mock.Anything).
		RunAndReturn(func(data []byte) ([]byte, string, string, error) {
			return data, "image/jpeg", ".jpg", nil
		})
}

// expectUploads accepts uploads under folder and records each key in order.
func (f *testFixture) expectUploads(folder string, calls *[]string) {
	f.storage.EXPECT().
		Upload(mock.Anything, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, folder+"/") }), mock.Anything, "image/jpeg").
		RunAndReturn(func(_ context.Context, key string, _ io.Reader, _ string) (*service.StoredObject, error) {
			*calls = append(*calls, "upload:"+key)

			return &service.StoredObject{Key: key, URL: "https://cdn.example.com/" + key}, nil
		})
}

// expectDeletes accepts deletes and records each key in order.
func (f *testFixture) expectDeletes(calls *[]string) {
	f.storage.EXPECT().Delete(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, key string) error {
			*calls = append(*calls, "delete:"+key)

			return nil
		})
}

func ptr[T any](v T) *T {
	return &v
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

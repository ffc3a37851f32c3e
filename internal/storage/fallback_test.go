package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeBackend struct {
	name  string
	err   error
	calls int
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Store(ctx context.Context, data []byte, originalFilename string) (StoredFile, error) {
	f.calls++
	if f.err != nil {
		return StoredFile{}, f.err
	}
	return StoredFile{
		URL:         "https://" + f.name + "/" + originalFilename,
		FileName:    originalFilename,
		StorageType: f.name,
	}, nil
}

func TestPrimarySuccessShortCircuits(t *testing.T) {
	primary := &fakeBackend{name: "minio"}
	secondary := &fakeBackend{name: "local"}
	store := NewFallbackStore(primary, secondary)

	stored, err := store.Store(context.Background(), []byte("img"), "proof.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.StorageType != "minio" {
		t.Errorf("expected primary backend, got %s", stored.StorageType)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary must not be tried after primary success, got %d calls", secondary.calls)
	}
}

func TestFallsBackToSecondary(t *testing.T) {
	primary := &fakeBackend{name: "minio", err: errors.New("connection refused")}
	secondary := &fakeBackend{name: "local"}
	store := NewFallbackStore(primary, secondary)

	stored, err := store.Store(context.Background(), []byte("img"), "proof.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.StorageType != "local" {
		t.Errorf("expected fallback backend, got %s", stored.StorageType)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Errorf("expected one attempt each, got %d/%d", primary.calls, secondary.calls)
	}
}

func TestCombinedErrorWhenAllFail(t *testing.T) {
	primary := &fakeBackend{name: "minio", err: errors.New("connection refused")}
	secondary := &fakeBackend{name: "local", err: errors.New("disk full")}
	store := NewFallbackStore(primary, secondary)

	_, err := store.Store(context.Background(), []byte("img"), "proof.png")
	if err == nil {
		t.Fatal("expected combined error")
	}
	for _, fragment := range []string{"minio", "connection refused", "local", "disk full"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("combined error missing %q: %v", fragment, err)
		}
	}
}

func TestNoBackendsConfigured(t *testing.T) {
	store := NewFallbackStore()
	if _, err := store.Store(context.Background(), []byte("img"), "proof.png"); err == nil {
		t.Fatal("expected error with no backends")
	}
}

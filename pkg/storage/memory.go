package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// MemoryBucket keeps objects in process memory. It backs local development
// without GridFS and the service tests.
type MemoryBucket struct {
	mu      sync.Mutex
	name    string
	objects map[string]memoryObject
	removes int
	// FailRemove makes Remove fail for the listed paths.
	FailRemove map[string]error
}

type memoryObject struct {
	data        []byte
	contentType string
	uploadedAt  time.Time
}

func NewMemoryBucket(name string) *MemoryBucket {
	return &MemoryBucket{
		name:       name,
		objects:    map[string]memoryObject{},
		FailRemove: map[string]error{},
	}
}

func (m *MemoryBucket) Name() string { return m.name }

func (m *MemoryBucket) Upload(_ context.Context, objectPath string, r io.Reader, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectPath] = memoryObject{data: data, contentType: contentType, uploadedAt: time.Now()}
	return nil
}

func (m *MemoryBucket) Remove(_ context.Context, objectPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removes++
	if err, ok := m.FailRemove[objectPath]; ok {
		return err
	}
	if _, ok := m.objects[objectPath]; !ok {
		return fmt.Errorf("%w: %s/%s", ErrObjectNotFound, m.name, objectPath)
	}
	delete(m.objects, objectPath)
	return nil
}

func (m *MemoryBucket) Open(_ context.Context, objectPath string) (io.ReadCloser, *ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[objectPath]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s/%s", ErrObjectNotFound, m.name, objectPath)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), &ObjectInfo{
		Path:        objectPath,
		Size:        int64(len(obj.data)),
		ContentType: obj.contentType,
		UploadedAt:  obj.uploadedAt,
	}, nil
}

func (m *MemoryBucket) Has(objectPath string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[objectPath]
	return ok
}

func (m *MemoryBucket) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// RemoveCalls counts Remove invocations, failed ones included.
func (m *MemoryBucket) RemoveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removes
}

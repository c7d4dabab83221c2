// Package proof implements proof-of-delivery storage. The adapter keeps
// uploaded content in memory keyed by reference code and hands back a URL
// under a configured base, which is what gets stamped on the completed leg.
package proof

import (
	"context"
	"strings"
	"sync"

	"freightline/internal/core/ports"
	"freightline/internal/pkg/errs"
)

// MemoryUploader stores proof content in memory. Re-uploading the same
// reference code overwrites the previous content, which covers retried
// completions.
type MemoryUploader struct {
	baseURL string

	mu      sync.Mutex
	content map[string][]byte
}

// NewMemoryUploader creates an uploader serving URLs under baseURL.
func NewMemoryUploader(baseURL string) *MemoryUploader {
	return &MemoryUploader{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		content: make(map[string][]byte),
	}
}

var _ ports.ProofUploader = &MemoryUploader{}

// Upload stores the proof content and returns its URL.
func (u *MemoryUploader) Upload(_ context.Context, content []byte, referenceCode string) (string, error) {
	if len(content) == 0 {
		return "", errs.NewValueIsRequiredError("content")
	}
	if referenceCode == "" {
		return "", errs.NewValueIsRequiredError("referenceCode")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	stored := make([]byte, len(content))
	copy(stored, content)
	u.content[referenceCode] = stored

	return u.baseURL + "/" + referenceCode, nil
}

// Get returns the stored content for a reference code.
func (u *MemoryUploader) Get(referenceCode string) ([]byte, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	content, ok := u.content[referenceCode]
	return content, ok
}

package pagecache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInvalidateRemovesMatchingPrefix(t *testing.T) {
	cache := New(zap.NewNop())

	cache.Set("/dashboard/invoices?page=1", "page-1")
	cache.Set("/dashboard/invoices?page=2", "page-2")
	cache.Set("/dashboard/customers", "customers")

	cache.Invalidate("/dashboard/invoices")

	_, ok := cache.Get("/dashboard/invoices?page=1")
	assert.False(t, ok)
	_, ok = cache.Get("/dashboard/invoices?page=2")
	assert.False(t, ok)

	payload, ok := cache.Get("/dashboard/customers")
	assert.True(t, ok)
	assert.Equal(t, "customers", payload)
}

func TestGetMissReturnsFalse(t *testing.T) {
	cache := New(zap.NewNop())
	_, ok := cache.Get("/nothing")
	assert.False(t, ok)
}

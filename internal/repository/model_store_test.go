package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"HousePrice/internal/domain/models"
	"HousePrice/internal/services/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const artifact = `version: "v2"
floor: 75000
coefficients:
  intercept: 100000
  bedrooms: 10000
  bathrooms: 10000
  sqft_living: 100
  floors: 5000
  age: -1000
`

var sample = models.Features{Bedrooms: 3, Bathrooms: 2, SqftLiving: 2000, Floors: 2, Age: 10}

func TestModelStore_ModelBeforeLoad(t *testing.T) {
	s := NewModelStore(filepath.Join(t.TempDir(), "model.yaml"), pricing.ServiceFloor, nil)
	_, err := s.Model()
	assert.ErrorIs(t, err, ErrModelNotLoaded)
}

func TestModelStore_MissingFileUsesReference(t *testing.T) {
	s := NewModelStore(filepath.Join(t.TempDir(), "model.yaml"), pricing.ServiceFloor, nil)
	require.NoError(t, s.Load())

	m, err := s.Model()
	require.NoError(t, err)
	assert.Equal(t, pricing.ReferenceCoefficients, m.Coefficients())
	assert.Equal(t, pricing.ServiceFloor, m.Floor())
	assert.Equal(t, 585000.0, m.Estimate(sample))
	assert.Equal(t, "reference", m.Info().Version)
}

func TestModelStore_LoadsArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o644))

	s := NewModelStore(path, pricing.ServiceFloor, nil)
	require.NoError(t, s.Load())
	m, err := s.Model()
	require.NoError(t, err)

	assert.Equal(t, 75000.0, m.Floor())
	assert.Equal(t, "v2", m.Info().Version)
	// 30000 + 20000 + 200000 + 10000 - 10000 + 100000
	assert.Equal(t, 350000.0, m.Estimate(sample))
}

func TestModelStore_MalformedArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: x\n"), 0o644))

	s := NewModelStore(path, pricing.ServiceFloor, nil)
	assert.Error(t, s.Load())
	_, err := s.Model()
	assert.ErrorIs(t, err, ErrModelNotLoaded)
}

func TestModelStore_WatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o644))

	s := NewModelStore(path, pricing.ServiceFloor, nil)
	require.NoError(t, s.Load())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx) }()
	defer func() {
		cancel()
		assert.NoError(t, <-done)
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))
	time.Sleep(200 * time.Millisecond)
	m, err := s.Model()
	require.NoError(t, err)
	assert.Equal(t, "v2", m.Info().Version)

	updated := `version: "v3"
coefficients:
  intercept: 1
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	assert.Eventually(t, func() bool {
		m, err := s.Model()
		return err == nil && m.Info().Version == "v3"
	}, 3*time.Second, 20*time.Millisecond)

	m, _ = s.Model()
	assert.Equal(t, pricing.ServiceFloor, m.Estimate(sample))
}

package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/service"
)

// failingCache always errors
type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func TestKey(t *testing.T) {
	ns := Namespace("models/fake_news_model.json")
	key := Key(ns, "some text")

	assert.Len(t, ns, 16)
	assert.True(t, strings.HasPrefix(key, "fakenews:v1:"+ns+":"))
	assert.Len(t, key, len("fakenews:v1:")+16+1+64)
	assert.Equal(t, key, Key(ns, "some text"))
	assert.NotEqual(t, key, Key(ns, "some text "))
	assert.NotEqual(t, key, Key(Namespace("http://ml:5000"), "some text"))
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		c := NewMemoryCache(10, time.Minute)

		require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
		val, found, err := c.Get(ctx, "k")

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("v"), val)
	})

	t.Run("miss", func(t *testing.T) {
		c := NewMemoryCache(10, time.Minute)

		_, found, err := c.Get(ctx, "absent")

		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		c := NewMemoryCache(2, time.Minute)

		require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
		require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))
		_, _, _ = c.Get(ctx, "a")
		require.NoError(t, c.Set(ctx, "c", []byte("3"), 0))

		assert.Equal(t, 2, c.Len())
		_, found, _ := c.Get(ctx, "b")
		assert.False(t, found)
		_, found, _ = c.Get(ctx, "a")
		assert.True(t, found)
	})
}

func TestLayeredCache(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes lower layer hits", func(t *testing.T) {
		upper := NewMemoryCache(10, time.Minute)
		lower := NewMemoryCache(10, time.Minute)
		require.NoError(t, lower.Set(ctx, "k", []byte("v"), 0))

		c := NewLayeredCache(upper, lower)
		val, found, err := c.Get(ctx, "k")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("v"), val)

		promoted, found, _ := upper.Get(ctx, "k")
		assert.True(t, found)
		assert.Equal(t, []byte("v"), promoted)
	})

	t.Run("set writes every layer", func(t *testing.T) {
		upper := NewMemoryCache(10, time.Minute)
		lower := NewMemoryCache(10, time.Minute)
		c := NewLayeredCache(upper, lower)

		require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

		assert.Equal(t, 1, upper.Len())
		assert.Equal(t, 1, lower.Len())
	})

	t.Run("failing layer does not hide a hit", func(t *testing.T) {
		lower := NewMemoryCache(10, time.Minute)
		require.NoError(t, lower.Set(ctx, "k", []byte("v"), 0))

		c := NewLayeredCache(failingCache{}, lower)
		val, found, err := c.Get(ctx, "k")

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("v"), val)
	})

	t.Run("miss reports layer errors", func(t *testing.T) {
		c := NewLayeredCache(NewMemoryCache(10, time.Minute), failingCache{})

		_, found, err := c.Get(ctx, "k")

		assert.False(t, found)
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("set reports layer errors but still writes healthy layers", func(t *testing.T) {
		upper := NewMemoryCache(10, time.Minute)
		c := NewLayeredCache(upper, failingCache{})

		err := c.Set(ctx, "k", []byte("v"), 0)

		assert.Error(t, err)
		assert.Equal(t, 1, upper.Len())
	})
}

func TestPredictionCache(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip with confidence", func(t *testing.T) {
		c := NewPredictionCache(NewMemoryCache(10, time.Minute), "model")
		confidence := 0.73

		require.NoError(t, c.Set(ctx, "text", &service.ClassificationResult{Label: "real", Confidence: &confidence}))
		result, err := c.Get(ctx, "text")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "real", result.Label)
		assert.Equal(t, 0.73, *result.Confidence)
	})

	t.Run("round trip without confidence", func(t *testing.T) {
		c := NewPredictionCache(NewMemoryCache(10, time.Minute), "model")

		require.NoError(t, c.Set(ctx, "text", &service.ClassificationResult{Label: "fake"}))
		result, err := c.Get(ctx, "text")

		require.NoError(t, err)
		assert.Equal(t, "fake", result.Label)
		assert.Nil(t, result.Confidence)
	})

	t.Run("miss returns nil", func(t *testing.T) {
		c := NewPredictionCache(NewMemoryCache(10, time.Minute), "model")

		result, err := c.Get(ctx, "absent")

		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		mem := NewMemoryCache(10, time.Minute)
		require.NoError(t, mem.Set(ctx, Key("model", "text"), []byte("{"), 0))
		c := NewPredictionCache(mem, "model")

		_, err := c.Get(ctx, "text")

		assert.ErrorContains(t, err, "decode")
	})

	t.Run("namespaces over a shared cache are isolated", func(t *testing.T) {
		shared := NewMemoryCache(10, time.Minute)
		oldModel := NewPredictionCache(shared, Namespace("checksum-a"))
		newModel := NewPredictionCache(shared, Namespace("checksum-b"))

		require.NoError(t, oldModel.Set(ctx, "text", &service.ClassificationResult{Label: "real"}))

		result, err := newModel.Get(ctx, "text")
		require.NoError(t, err)
		assert.Nil(t, result)

		require.NoError(t, newModel.Set(ctx, "text", &service.ClassificationResult{Label: "fake"}))

		result, err = oldModel.Get(ctx, "text")
		require.NoError(t, err)
		assert.Equal(t, "real", result.Label)
		result, err = newModel.Get(ctx, "text")
		require.NoError(t, err)
		assert.Equal(t, "fake", result.Label)
		assert.Equal(t, 2, shared.Len())
	})
}

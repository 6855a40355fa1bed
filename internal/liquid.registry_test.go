package internal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegistry_NewRegistry(t *testing.T) {
	t.Run("with nil logger", func(t *testing.T) {
		reg := NewRegistry[int]("numbers", nil)
		require.NotNil(t, reg)
		assert.Equal(t, 0, reg.Count())
	})

	t.Run("logs creation", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		NewRegistry[string]("words", zap.New(core))
		assert.Equal(t, 1, logs.FilterMessage(LogMsgRegistryCreated).Len())
	})
}

func TestRegistry_Register(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		reg := NewRegistry[string]("words", nil)
		require.NoError(t, reg.Register("a", "alpha"))

		v, ok := reg.Get("a")
		assert.True(t, ok)
		assert.Equal(t, "alpha", v)
		assert.True(t, reg.Has("a"))
	})

	t.Run("empty name rejected", func(t *testing.T) {
		reg := NewRegistry[string]("words", nil)
		err := reg.Register("", "x")
		require.Error(t, err)

		var regErr *RegistryError
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, ErrMsgEmptyEntryName, regErr.Message)
		assert.Equal(t, "words", regErr.Registry)
		assert.Equal(t, 0, reg.Count())
	})

	t.Run("last registration wins", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		reg := NewRegistry[string]("words", zap.New(core))

		require.NoError(t, reg.Register("a", "first"))
		require.NoError(t, reg.Register("a", "second"))

		v, _ := reg.Get("a")
		assert.Equal(t, "second", v)
		assert.Equal(t, 1, reg.Count())

		overridden := logs.FilterMessage(LogMsgEntryOverridden).All()
		require.Len(t, overridden, 1)
		assert.Equal(t, "a", overridden[0].ContextMap()[LogFieldName])
		assert.Equal(t, "words", overridden[0].ContextMap()[LogFieldRegistry])
	})
}

func TestRegistry_GetMissing(t *testing.T) {
	reg := NewRegistry[*int]("pointers", nil)
	v, ok := reg.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, reg.Has("missing"))
}

func TestRegistry_Delete(t *testing.T) {
	reg := NewRegistry[int]("numbers", nil)
	require.NoError(t, reg.Register("one", 1))

	assert.True(t, reg.Delete("one"))
	assert.False(t, reg.Delete("one"))
	assert.False(t, reg.Has("one"))
}

func TestRegistry_List(t *testing.T) {
	reg := NewRegistry[int]("numbers", nil)
	for i, name := range []string{"raw", "for", "if", "comment"} {
		require.NoError(t, reg.Register(name, i))
	}

	assert.Equal(t, []string{"comment", "for", "if", "raw"}, reg.List())
	assert.Equal(t, 4, reg.Count())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry[int]("numbers", nil)
	names := []string{"a", "b", "c", "d", "e"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := names[i%len(names)]
			_ = reg.Register(name, i)
			reg.Get(name)
			reg.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, len(names), reg.Count())
}

func TestRegistryError_Error(t *testing.T) {
	assert.Equal(t, "tags: entry name cannot be empty", NewRegistryError(ErrMsgEmptyEntryName, "tags", "").Error())
	assert.Equal(t, "blocks: boom: if", NewRegistryError("boom", "blocks", "if").Error())
}

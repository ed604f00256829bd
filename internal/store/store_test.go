package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func recID(r rec) string { return r.ID }

func TestLoad_MissingCollectionIsEmpty(t *testing.T) {
	m := NewMemory()
	got, err := m.Load(context.Background(), CollectionBatches)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadAll_SaveAll_PreservesOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := []rec{{ID: "c", Value: 3}, {ID: "a", Value: 1}, {ID: "b", Value: 2}}
	require.NoError(t, SaveAll(ctx, m, "things", in))

	out, err := LoadAll[rec](ctx, m, "things")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_CorruptBytes(t *testing.T) {
	m := NewMemory()
	m.Raw(CollectionUsers, []byte(`{"not":"a list"}`))

	_, err := m.Load(context.Background(), CollectionUsers)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorageCorrupt))
}

func TestLoadAll_CorruptRecord(t *testing.T) {
	m := NewMemory()
	m.Raw("things", []byte(`[{"id":"a","value":"nope"}]`))

	_, err := LoadAll[rec](context.Background(), m, "things")
	require.ErrorIs(t, err, ErrStorageCorrupt)
}

func TestUpdateByID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, SaveAll(ctx, m, "things", []rec{{ID: "a", Value: 1}, {ID: "b", Value: 2}}))

	t.Run("updates only the matching record", func(t *testing.T) {
		ok, err := UpdateByID(ctx, m, "things", "b", recID, func(r *rec) error {
			r.Value = 20
			return nil
		})
		require.NoError(t, err)
		assert.True(t, ok)

		out, err := LoadAll[rec](ctx, m, "things")
		require.NoError(t, err)
		assert.Equal(t, []rec{{ID: "a", Value: 1}, {ID: "b", Value: 20}}, out)
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		ok, err := UpdateByID(ctx, m, "things", "zzz", recID, func(r *rec) error {
			t.Fatal("fn must not be called")
			return nil
		})
		require.NoError(t, err)
		assert.False(t, ok)

		out, err := LoadAll[rec](ctx, m, "things")
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("fn error aborts without saving", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := UpdateByID(ctx, m, "things", "a", recID, func(r *rec) error {
			r.Value = 100
			return boom
		})
		require.ErrorIs(t, err, boom)

		out, err := LoadAll[rec](ctx, m, "things")
		require.NoError(t, err)
		assert.Equal(t, 1, out[0].Value)
	})
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMemory()
	_, err := m.Load(ctx, "x")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, m.Save(ctx, "x", nil), context.Canceled)
}

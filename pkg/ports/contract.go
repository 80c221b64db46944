package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/rapport/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPersonStoreContract runs a suite of tests to verify that a PersonStore implementation
// adheres to the defined interface contract.
func RunPersonStoreContract(t *testing.T, store PersonStore) {
	ctx := context.Background()
	personID := "contract-test-person-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		snap := domain.Snapshot{Name: "Joe", State: domain.Acquainted}

		err := store.Save(ctx, personID, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, personID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, snap, loaded)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, personID, domain.Snapshot{Name: "Joe", State: domain.Acquainted}))
		require.NoError(t, store.Save(ctx, personID, domain.NewSnapshot("Joe")))

		loaded, err := store.Load(ctx, personID)
		require.NoError(t, err)
		assert.Equal(t, domain.FirstMeeting, loaded.State)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+personID)
		assert.ErrorIs(t, err, domain.ErrPersonNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, personID, domain.NewSnapshot("Joe"))
		require.NoError(t, err)

		err = store.Delete(ctx, personID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, personID)
		assert.ErrorIs(t, err, domain.ErrPersonNotFound, "Load after Delete should return ErrPersonNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := personID + "-1"
		id2 := personID + "-2"
		_ = store.Save(ctx, id1, domain.NewSnapshot("Ann"))
		_ = store.Save(ctx, id2, domain.NewSnapshot("Bob"))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}

package subscribers

import (
	"testing"

	"github.com/M-S-KHAN/hadith-inc/models/entities"
	"github.com/M-S-KHAN/hadith-inc/utils/databases"

	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Impl {
	t.Helper()

	db, err := databases.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.GetDB().AutoMigrate(&entities.Subscriber{}))
	t.Cleanup(db.Shutdown)

	return New(db)
}

func TestSaveKeepsChatIDsUnique(t *testing.T) {
	repo := newTestRepo(t)

	outcome, err := repo.Save(entities.Subscriber{ChatID: 42, Name: "first"})
	require.NoError(t, err)
	require.Equal(t, Added, outcome)

	outcome, err = repo.Save(entities.Subscriber{ChatID: 42, Name: "again"})
	require.NoError(t, err)
	require.Equal(t, AlreadyPresent, outcome)

	subs, err := repo.FetchAll()
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.Equal(t, int64(42), subs[0].ChatID)
}

func TestDeleteRemovesSubscriber(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Save(entities.Subscriber{ChatID: 1})
	require.NoError(t, err)
	_, err = repo.Save(entities.Subscriber{ChatID: 2})
	require.NoError(t, err)

	outcome, err := repo.Delete(1)
	require.NoError(t, err)
	require.Equal(t, Removed, outcome)

	subs, err := repo.FetchAll()
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.Equal(t, int64(2), subs[0].ChatID)
}

func TestDeleteAbsentIsANoOp(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Save(entities.Subscriber{ChatID: 7})
	require.NoError(t, err)

	outcome, err := repo.Delete(99)
	require.NoError(t, err)
	require.Equal(t, NotPresent, outcome)

	subs, err := repo.FetchAll()
	require.NoError(t, err)
	require.Len(t, subs, 1)
}

func TestFetchAllOnEmptyRegistry(t *testing.T) {
	repo := newTestRepo(t)

	subs, err := repo.FetchAll()
	require.NoError(t, err)
	require.Empty(t, subs)
}

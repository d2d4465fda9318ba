package builder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"modlist-builder/core/modlist"
	"modlist-builder/core/storage"
	"modlist-builder/core/storage/mocks"
	"modlist-builder/feature/output"
	"modlist-builder/feature/preset"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockLoader struct {
	mock.Mock
}

func (m *mockLoader) Load(ctx context.Context, family modlist.Family) (map[uint64]modlist.InstalledItem, error) {
	args := m.Called(ctx, family)
	items, _ := args.Get(0).(map[uint64]modlist.InstalledItem)
	return items, args.Error(1)
}

// Beta is larger but depends on Alpha.
var installed = map[uint64]modlist.InstalledItem{
	1: {ID: 1, DisplayName: "Alpha", ByteSize: 50},
	2: {ID: 2, DisplayName: "Beta", ByteSize: 100, DependencyIDs: []uint64{1}},
}

func document(entries ...modlist.PresetEntry) *preset.Document {
	return &preset.Document{Family: modlist.FamilyArma, Entries: entries}
}

var (
	alpha = modlist.PresetEntry{DisplayName: "Alpha", ID: 1}
	beta  = modlist.PresetEntry{DisplayName: "Beta", ID: 2}
	gamma = modlist.PresetEntry{DisplayName: "Gamma", ID: 3}
)

func newLoader(items map[uint64]modlist.InstalledItem, err error) *mockLoader {
	loader := new(mockLoader)
	loader.On("Load", mock.Anything, modlist.FamilyArma).Return(items, err)
	return loader
}

func TestAssemble_OrdersDependencies(t *testing.T) {
	svc := NewService(newLoader(installed, nil), nil, nil, zap.NewNop())

	outcome, err := svc.Assemble(context.Background(), document(beta, alpha), nil)
	require.NoError(t, err)

	assert.Equal(t, modlist.FamilyArma, outcome.Family)
	assert.Equal(t, "@Alpha;@Beta;", outcome.NameList)
	assert.Equal(t, "1,2", outcome.IDList)
	assert.Equal(t, 2, outcome.Count)
	assert.Equal(t, uint64(150), outcome.TotalBytes)
	assert.Equal(t, "150 B", outcome.TotalSize)
	assert.Empty(t, outcome.Unmatched)
	assert.Empty(t, outcome.Warnings)
}

func TestAssemble_NameConflictIsWarning(t *testing.T) {
	svc := NewService(newLoader(installed, nil), nil, nil, zap.NewNop())

	outcome, err := svc.Assemble(context.Background(), document(modlist.PresetEntry{DisplayName: "ALPHA", ID: 1}), nil)
	require.NoError(t, err)

	require.Len(t, outcome.Warnings, 1)
	assert.Contains(t, outcome.Warnings[0], "ALPHA")
	assert.Equal(t, "@Alpha;", outcome.NameList)
}

func TestAssemble_Unmatched(t *testing.T) {
	t.Run("Declined", func(t *testing.T) {
		svc := NewService(newLoader(installed, nil), nil, nil, zap.NewNop())

		outcome, err := svc.Assemble(context.Background(), document(alpha, gamma), DeclineUnmatched)
		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, modlist.ErrTerminated)

		var unmatched *modlist.UnmatchedEntriesError
		require.ErrorAs(t, err, &unmatched)
		assert.Equal(t, []modlist.UnmatchedEntry{{DisplayName: "Gamma", ID: 3}}, unmatched.Entries)
	})

	t.Run("NilConfirmerDeclines", func(t *testing.T) {
		svc := NewService(newLoader(installed, nil), nil, nil, zap.NewNop())

		_, err := svc.Assemble(context.Background(), document(gamma), nil)
		assert.ErrorIs(t, err, modlist.ErrTerminated)
	})

	t.Run("Accepted", func(t *testing.T) {
		svc := NewService(newLoader(installed, nil), nil, nil, zap.NewNop())

		var asked []modlist.UnmatchedEntry
		confirmer := ConfirmFunc(func(_ context.Context, unmatched []modlist.UnmatchedEntry) (bool, error) {
			asked = unmatched
			return true, nil
		})

		outcome, err := svc.Assemble(context.Background(), document(gamma, alpha), confirmer)
		require.NoError(t, err)
		assert.Equal(t, []modlist.UnmatchedEntry{{DisplayName: "Gamma", ID: 3}}, asked)
		assert.Equal(t, asked, outcome.Unmatched)
		assert.Equal(t, "@Alpha;", outcome.NameList)
	})

	t.Run("ConfirmerError", func(t *testing.T) {
		svc := NewService(newLoader(installed, nil), nil, nil, zap.NewNop())
		confirmer := ConfirmFunc(func(context.Context, []modlist.UnmatchedEntry) (bool, error) {
			return false, errors.New("stdin closed")
		})

		_, err := svc.Assemble(context.Background(), document(gamma), confirmer)
		assert.ErrorContains(t, err, "stdin closed")
		assert.NotErrorIs(t, err, modlist.ErrTerminated)
	})
}

func TestAssemble_FatalErrors(t *testing.T) {
	t.Run("Separator", func(t *testing.T) {
		items := map[uint64]modlist.InstalledItem{1: {ID: 1, DisplayName: "Alpha;Beta"}}
		svc := NewService(newLoader(items, nil), nil, nil, zap.NewNop())

		_, err := svc.Assemble(context.Background(), document(alpha), AcceptUnmatched)
		var sepErr *modlist.NameContainsSeparatorError
		require.ErrorAs(t, err, &sepErr)
		assert.Equal(t, "Alpha;Beta", sepErr.Name)
	})

	t.Run("ManifestMissing", func(t *testing.T) {
		missing := &modlist.DirectoryNotFoundError{Path: "/nowhere/Steam.json"}
		svc := NewService(newLoader(nil, missing), nil, nil, zap.NewNop())

		_, err := svc.Assemble(context.Background(), document(alpha), AcceptUnmatched)
		assert.ErrorIs(t, err, missing)
	})
}

func TestBuild_WritesLists(t *testing.T) {
	dir := t.TempDir()
	writer := output.NewWriter(output.Config{Dir: dir})
	svc := NewService(newLoader(installed, nil), writer, nil, zap.NewNop())

	outcome, err := svc.Build(context.Background(), document(beta, alpha), nil)
	require.NoError(t, err)
	require.Len(t, outcome.Artifacts, 2)

	names, err := os.ReadFile(filepath.Join(dir, "name-list.txt"))
	require.NoError(t, err)
	assert.Equal(t, "@Alpha;@Beta;", string(names))

	ids, err := os.ReadFile(filepath.Join(dir, "id-list.txt"))
	require.NoError(t, err)
	assert.Equal(t, "1,2", string(ids))

	assert.NoFileExists(t, filepath.Join(dir, "unmatched.txt"))
}

func TestBuild_DeclinedWritesOnlyReport(t *testing.T) {
	dir := t.TempDir()
	writer := output.NewWriter(output.Config{Dir: dir})
	svc := NewService(newLoader(installed, nil), writer, nil, zap.NewNop())

	confirmer := ConfirmFunc(func(context.Context, []modlist.UnmatchedEntry) (bool, error) {
		// The report is on disk before the question is asked.
		assert.FileExists(t, filepath.Join(dir, "unmatched.txt"))
		return false, nil
	})

	_, err := svc.Build(context.Background(), document(alpha, gamma), confirmer)
	assert.ErrorIs(t, err, modlist.ErrTerminated)

	report, err := os.ReadFile(filepath.Join(dir, "unmatched.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Gamma (3)\n", string(report))
	assert.NoFileExists(t, filepath.Join(dir, "name-list.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "id-list.txt"))
}

func TestBuild_FatalErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	items := map[uint64]modlist.InstalledItem{1: {ID: 1, DisplayName: "A;B"}}
	svc := NewService(newLoader(items, nil), output.NewWriter(output.Config{Dir: dir}), nil, zap.NewNop())

	_, err := svc.Build(context.Background(), document(alpha, gamma), AcceptUnmatched)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBuild_Publishes(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "modlists").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "modlists", "modlists/arma/name-list.txt", mock.Anything, int64(13), mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()
	mockClient.On("PutObject", mock.Anything, "modlists", "modlists/arma/id-list.txt", mock.Anything, int64(3), mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()

	publisher := output.NewPublisher(mockClient, storage.Config{Bucket: "modlists", Prefix: "modlists"}, zap.NewNop())
	writer := output.NewWriter(output.Config{Dir: t.TempDir()})
	svc := NewService(newLoader(installed, nil), writer, publisher, zap.NewNop())

	_, err := svc.Build(context.Background(), document(alpha, beta), nil)
	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}

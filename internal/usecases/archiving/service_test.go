package archiving

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-os-api/infrastructure/repository"
	"github.com/vfg2006/agency-os-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-os-api/infrastructure/store"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type testRepos struct {
	content  repository.ContentRepository
	clients  repository.ClientRepository
	users    repository.UserRepository
	messages repository.MessageRepository
}

func newTestService(t *testing.T, snapshots repository.BackupSnapshotRepository) (*Service, testRepos) {
	t.Helper()

	s := store.NewMemoryStore()
	repos := testRepos{
		content:  repository.NewContentRepository(s),
		clients:  repository.NewClientRepository(s),
		users:    repository.NewUserRepository(s),
		messages: repository.NewMessageRepository(s),
	}

	svc := NewService(repos.content, repos.clients, repos.users, repos.messages, snapshots).(*Service)
	svc.now = func() time.Time { return time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC) }
	return svc, repos
}

func TestService_Export(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t, nil)

	require.NoError(t, repos.clients.SaveClients(ctx, []domain.ClientLedger{{ID: "c1", Name: "TILKI"}}))
	require.NoError(t, repos.messages.SaveMessages(ctx, []domain.ContactMessage{{ID: "m1"}}))

	payload, err := svc.Export(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.BackupVersion, payload.Version)
	assert.Equal(t, "2024-06-01T08:00:00Z", payload.Timestamp)
	assert.Contains(t, payload.Content, "hero")
	assert.Len(t, payload.Clients, 1)
	assert.Equal(t, domain.DefaultUsers(), payload.Users)
	assert.Len(t, payload.Messages, 1)
}

func TestService_Restore(t *testing.T) {
	ctx := context.Background()

	valid := func() *domain.BackupPayload {
		return &domain.BackupPayload{
			Content: map[string]any{"hero": map[string]any{"titlePart1": "RESTAURADO"}},
			Users:   []domain.UserAccount{{ID: "u1", Username: "ana", Password: "x", Role: domain.UserRoleAdmin}},
			Version: domain.BackupVersion,
		}
	}

	tests := []struct {
		name     string
		payload  *domain.BackupPayload
		confirm  bool
		validate func(t *testing.T, err error, repos testRepos)
	}{
		{
			name:    "Sem confirmação nada é gravado",
			payload: valid(),
			confirm: false,
			validate: func(t *testing.T, err error, repos testRepos) {
				assert.ErrorIs(t, err, ErrConfirmationRequired)
				clients, _ := repos.clients.ListClients(ctx)
				assert.Len(t, clients, 1)
			},
		},
		{
			name:    "Backup sem usuários é rejeitado",
			payload: &domain.BackupPayload{Content: map[string]any{}},
			confirm: true,
			validate: func(t *testing.T, err error, repos testRepos) {
				assert.ErrorIs(t, err, ErrInvalidBackup)
			},
		},
		{
			name:    "Backup sem conteúdo é rejeitado",
			payload: &domain.BackupPayload{Users: []domain.UserAccount{}},
			confirm: true,
			validate: func(t *testing.T, err error, repos testRepos) {
				assert.ErrorIs(t, err, ErrInvalidBackup)
			},
		},
		{
			name:    "Sobrescreve todas as coleções",
			payload: valid(),
			confirm: true,
			validate: func(t *testing.T, err error, repos testRepos) {
				require.NoError(t, err)

				content, _ := repos.content.GetContent(ctx)
				assert.Equal(t, "RESTAURADO", content["hero"].(map[string]any)["titlePart1"])

				clients, _ := repos.clients.ListClients(ctx)
				assert.Empty(t, clients)

				users, _ := repos.users.ListUsers(ctx)
				require.Len(t, users, 1)
				assert.Equal(t, "ana", users[0].Username)

				messages, _ := repos.messages.ListMessages(ctx)
				assert.Empty(t, messages)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repos := newTestService(t, nil)
			require.NoError(t, repos.clients.SaveClients(ctx, []domain.ClientLedger{{ID: "c1"}}))
			require.NoError(t, repos.messages.SaveMessages(ctx, []domain.ContactMessage{{ID: "m1"}}))

			err := svc.Restore(ctx, tt.payload, tt.confirm)
			tt.validate(t, err, repos)
		})
	}
}

func TestService_Snapshots(t *testing.T) {
	ctx := context.Background()

	t.Run("Sem Postgres os snapshots ficam desabilitados", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		_, err := svc.CreateSnapshot(ctx)
		assert.ErrorIs(t, err, ErrSnapshotsDisabled)

		_, err = svc.ListSnapshots(ctx)
		assert.ErrorIs(t, err, ErrSnapshotsDisabled)

		assert.ErrorIs(t, svc.RestoreSnapshot(ctx, 1, true), ErrSnapshotsDisabled)

		_, err = svc.PruneSnapshots(ctx, 30)
		assert.ErrorIs(t, err, ErrSnapshotsDisabled)
	})

	t.Run("Cria snapshot com o export completo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshots := mocks.NewMockBackupSnapshotRepository(ctrl)
		svc, _ := newTestService(t, snapshots)

		snapshots.EXPECT().
			CreateSnapshot(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload []byte) (*domain.BackupSnapshot, error) {
				var decoded domain.BackupPayload
				require.NoError(t, json.Unmarshal(payload, &decoded))
				assert.Equal(t, domain.BackupVersion, decoded.Version)
				assert.NotNil(t, decoded.Content)
				return &domain.BackupSnapshot{ID: 7, SizeBytes: len(payload)}, nil
			})

		snapshot, err := svc.CreateSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(7), snapshot.ID)
	})

	t.Run("Restaura snapshot gravado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshots := mocks.NewMockBackupSnapshotRepository(ctrl)
		svc, repos := newTestService(t, snapshots)

		body := []byte(`{"content":{"hero":{}},"users":[{"id":"u9","username":"restaurado","role":"ADMIN"}],"version":"1.0"}`)
		snapshots.EXPECT().GetSnapshot(gomock.Any(), int64(3)).Return(&domain.BackupSnapshot{ID: 3, Payload: body}, nil)
		snapshots.EXPECT().GetSnapshot(gomock.Any(), int64(4)).Return(nil, repository.ErrSnapshotNotFound)

		assert.ErrorIs(t, svc.RestoreSnapshot(ctx, 3, false), ErrConfirmationRequired)
		require.NoError(t, svc.RestoreSnapshot(ctx, 3, true))
		assert.ErrorIs(t, svc.RestoreSnapshot(ctx, 4, true), ErrSnapshotNotFound)

		users, _ := repos.users.ListUsers(ctx)
		require.Len(t, users, 1)
		assert.Equal(t, "restaurado", users[0].Username)
	})

	t.Run("Remove snapshots fora da retenção", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshots := mocks.NewMockBackupSnapshotRepository(ctrl)
		svc, _ := newTestService(t, snapshots)

		snapshots.EXPECT().
			DeleteSnapshotsBefore(gomock.Any(), time.Date(2024, time.May, 2, 8, 0, 0, 0, time.UTC)).
			Return(int64(2), nil)

		deleted, err := svc.PruneSnapshots(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		deleted, err = svc.PruneSnapshots(ctx, 0)
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}

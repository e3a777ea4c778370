package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-os-api/internal/config"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/internal/usecases/archiving/mocks"
	"go.uber.org/mock/gomock"
)

func TestBackupSnapshotService_run(t *testing.T) {
	cfg := &config.Config{BackupSnapshot: config.BackupSnapshot{
		CronSchedule:  "0 2 * * *",
		RetentionDays: 30,
		Enabled:       true,
	}}

	tests := []struct {
		name     string
		setup    func(archiver *mocks.MockArchiver)
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Grava snapshot e remove os antigos",
			setup: func(archiver *mocks.MockArchiver) {
				archiver.EXPECT().CreateSnapshot(gomock.Any()).Return(&domain.BackupSnapshot{ID: 12, SizeBytes: 2048}, nil)
				archiver.EXPECT().PruneSnapshots(gomock.Any(), 30).Return(int64(3), nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, int64(12), status["last_snapshot_id"])
				assert.Equal(t, int64(3), status["last_pruned_snapshots"])
				assert.Equal(t, false, status["running"])
			},
		},
		{
			name: "Falha ao gravar não tenta limpar",
			setup: func(archiver *mocks.MockArchiver) {
				archiver.EXPECT().CreateSnapshot(gomock.Any()).Return(nil, errors.New("postgres fora do ar"))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, int64(0), status["last_snapshot_id"])
				assert.Equal(t, false, status["running"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			archiver := mocks.NewMockArchiver(ctrl)
			tt.setup(archiver)

			service := NewBackupSnapshotService(archiver, cfg)
			service.run(context.Background())
			tt.validate(t, service.GetStatus())
		})
	}
}

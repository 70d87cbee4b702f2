//go:build unit

package sweeper

import (
	"path/filepath"
	"testing"

	"github.com/kgossett/asset-sweeper/pkg/config"
	configMocks "github.com/kgossett/asset-sweeper/pkg/config/mocks"
	"github.com/kgossett/asset-sweeper/pkg/dependencies"
	fsMocks "github.com/kgossett/asset-sweeper/pkg/fs/mocks"
	"github.com/kgossett/asset-sweeper/pkg/logger"
	promptMocks "github.com/kgossett/asset-sweeper/pkg/prompt/mocks"
	stagingMocks "github.com/kgossett/asset-sweeper/pkg/staging/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stageMocks struct {
	fs     *fsMocks.MockFS
	config *configMocks.MockManager
	prompt *promptMocks.MockPrompter
	stager *stagingMocks.MockStager
}

func newStageSweeper(t *testing.T) (AssetSweeper, stageMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := stageMocks{
		fs:     fsMocks.NewMockFS(ctrl),
		config: configMocks.NewMockManager(ctrl),
		prompt: promptMocks.NewMockPrompter(ctrl),
		stager: stagingMocks.NewMockStager(ctrl),
	}

	deps := dependencies.New().
		WithFS(mocks.fs).
		WithConfig(mocks.config).
		WithLogger(logger.NewNoopLogger()).
		WithPrompt(mocks.prompt)

	sweeper, err := NewAssetSweeper(NewAssetSweeperParams{
		Dependencies: deps,
		Stager:       mocks.stager,
	})
	require.NoError(t, err)
	return sweeper, mocks
}

func stageConfig(stagingDir string) config.Config {
	cfg := config.DefaultConfig()
	cfg.StagingDir = stagingDir
	return cfg
}

func TestStage(t *testing.T) {
	sweeper, mocks := newStageSweeper(t)
	src := filepath.Join("/home", "user", "Games", "MyProject")
	dst := filepath.Join("/staging", "MyProject")

	mocks.config.EXPECT().GetConfigWithFallback().Return(stageConfig("/staging"), nil)
	mocks.fs.EXPECT().Exists(dst).Return(false, nil)
	mocks.stager.EXPECT().Stage(src, dst).Return(42, nil)

	got, err := sweeper.Stage(src)
	require.NoError(t, err)
	assert.Equal(t, dst, got)
}

func TestStage_ExpandsHomeDir(t *testing.T) {
	sweeper, mocks := newStageSweeper(t)
	src := filepath.Join("/home", "user", "Games", "MyProject")
	dst := filepath.Join("/home", "user", "Games", "staging", "MyProject")

	mocks.config.EXPECT().GetConfigWithFallback().Return(stageConfig("~/Games/staging"), nil)
	mocks.fs.EXPECT().GetHomeDir().Return(filepath.Join("/home", "user"), nil)
	mocks.fs.EXPECT().Exists(dst).Return(false, nil)
	mocks.stager.EXPECT().Stage(src, dst).Return(1, nil)

	got, err := sweeper.Stage(src)
	require.NoError(t, err)
	assert.Equal(t, dst, got)
}

func TestStage_ReplacesExistingAfterConfirmation(t *testing.T) {
	sweeper, mocks := newStageSweeper(t)
	src := filepath.Join("/home", "user", "Games", "MyProject")
	dst := filepath.Join("/staging", "MyProject")

	mocks.config.EXPECT().GetConfigWithFallback().Return(stageConfig("/staging"), nil)
	mocks.fs.EXPECT().Exists(dst).Return(true, nil)
	mocks.prompt.EXPECT().PromptForConfirmation(gomock.Any(), false).Return(true, nil)
	mocks.fs.EXPECT().RemoveAll(dst).Return(nil)
	mocks.stager.EXPECT().Stage(src, dst).Return(42, nil)

	got, err := sweeper.Stage(src)
	require.NoError(t, err)
	assert.Equal(t, dst, got)
}

func TestStage_ReplaceDeclined(t *testing.T) {
	sweeper, mocks := newStageSweeper(t)
	src := filepath.Join("/home", "user", "Games", "MyProject")
	dst := filepath.Join("/staging", "MyProject")

	mocks.config.EXPECT().GetConfigWithFallback().Return(stageConfig("/staging"), nil)
	mocks.fs.EXPECT().Exists(dst).Return(true, nil)
	mocks.prompt.EXPECT().PromptForConfirmation(gomock.Any(), false).Return(false, nil)

	_, err := sweeper.Stage(src)
	assert.ErrorIs(t, err, ErrStagingDeclined)
}

func TestStage_ForceSkipsConfirmation(t *testing.T) {
	sweeper, mocks := newStageSweeper(t)
	src := filepath.Join("/home", "user", "Games", "MyProject")
	dst := filepath.Join("/staging", "MyProject")

	mocks.config.EXPECT().GetConfigWithFallback().Return(stageConfig("/staging"), nil)
	mocks.fs.EXPECT().Exists(dst).Return(true, nil)
	mocks.fs.EXPECT().RemoveAll(dst).Return(nil)
	mocks.stager.EXPECT().Stage(src, dst).Return(42, nil)

	got, err := sweeper.Stage(src, StageOpts{Force: true})
	require.NoError(t, err)
	assert.Equal(t, dst, got)
}

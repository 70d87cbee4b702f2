//go:build unit

package dependencies

import (
	"testing"

	"github.com/kgossett/asset-sweeper/pkg/config"
	"github.com/kgossett/asset-sweeper/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Prompt)
	assert.Nil(t, deps.Config)
}

func TestValidate_MissingConfig(t *testing.T) {
	deps := New()

	assert.ErrorIs(t, deps.Validate(), ErrConfigMissing)
}

func TestValidate_Complete(t *testing.T) {
	deps := New().WithConfig(config.NewManager("/tmp/config.yaml"))

	assert.NoError(t, deps.Validate())
}

func TestWithChaining(t *testing.T) {
	customLogger := logger.NewDefaultLogger()
	deps := New().WithLogger(customLogger)

	assert.Equal(t, customLogger, deps.Logger)
}

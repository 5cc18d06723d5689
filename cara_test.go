package cara

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystem(t *testing.T) {
	t.Run("create new system", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		sys, err := NewSystem(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, sys)
		defer sys.Close()

		// Verify components are initialized
		assert.NotNil(t, sys.ActRepository())
		assert.NotNil(t, sys.Completer())
		assert.NotNil(t, sys.backend)
		assert.NotNil(t, sys.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a system at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		sys, err := NewSystem(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, sys)
	})
}

func TestSystem_Close(t *testing.T) {
	tmpDir := t.TempDir()
	sys, err := NewSystem(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, sys)

	// Close the system
	err = sys.Close()
	assert.NoError(t, err)
}

func TestSystem_FactoryMethods(t *testing.T) {
	tmpDir := t.TempDir()
	sys, err := NewSystem(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, sys)
	defer sys.Close()

	t.Run("can create analyzer", func(t *testing.T) {
		analyzer, err := sys.NewAnalyzer()
		require.NoError(t, err)
		require.NotNil(t, analyzer)
	})

	t.Run("can create risk scorer", func(t *testing.T) {
		scorer, err := sys.NewRiskScorer()
		require.NoError(t, err)
		require.NotNil(t, scorer)
	})

	t.Run("can create compliance checker", func(t *testing.T) {
		checker, err := sys.NewComplianceChecker()
		require.NoError(t, err)
		require.NotNil(t, checker)
	})

	t.Run("can create runner", func(t *testing.T) {
		runner, err := sys.NewRunner()
		require.NoError(t, err)
		require.NotNil(t, runner)
		runner.Release()
	})
}

func TestSystem_ImportActs(t *testing.T) {
	actsDir := t.TempDir()
	err := os.WriteFile(filepath.Join(actsDir, "contract_act.json"),
		[]byte(`{"title": "Indian Contract Act", "year": 1872, "text": "Section 10. What agreements are contracts."}`), 0644)
	require.NoError(t, err)

	sys, err := NewSystem(t.TempDir())
	require.NoError(t, err)
	defer sys.Close()

	count, err := sys.ImportActs(context.Background(), actsDir)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	act, err := sys.ActRepository().FindActByTitle(context.Background(), "Indian Contract Act")
	require.NoError(t, err)
	assert.Equal(t, 1872, act.Year)
}

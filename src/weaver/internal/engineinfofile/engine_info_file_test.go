package engineinfofile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/siteweaver/weaver/src/weaver/internal/fs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "all required params are present",
			yaml: "engineInfoFilePath: /my/sample/path/.weaverd\n",
		},
		{
			name:    "missing path key",
			yaml:    "otherKey: /my/sample/path/.weaverd\n",
			wantErr: true,
		},
		{
			name:    "missing path value",
			yaml:    "engineInfoFilePath:\notherKey: sample\n",
			wantErr: true,
		},
		{
			name:    "incorrectly formatted entry",
			yaml:    "engineInfoFilePath:\n  infofile: /sample/.file\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.NewYAML(config.Source(strings.NewReader(tt.yaml)))
			assert.NoError(t, err)

			_, err = New(Params{
				Config:    cfg,
				FS:        fs.New(),
				Lifecycle: fxtest.NewLifecycle(t),
				Logger:    zap.NewNop().Sugar(),
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOnStartCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	m := module{
		fs:       fs.New(),
		logger:   zap.NewNop().Sugar(),
		infofile: filepath.Join(dir, "engine", ".weaverd"),
	}

	assert.NoError(t, m.OnStart(context.Background()))
	info, err := os.Stat(filepath.Join(dir, "engine"))
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOnStop(t *testing.T) {
	t.Run("file removed", func(t *testing.T) {
		tempFile, err := os.CreateTemp("", "test")
		assert.NoError(t, err)
		defer os.Remove(tempFile.Name())

		m := module{
			fs:       fs.New(),
			logger:   zap.NewNop().Sugar(),
			infofile: tempFile.Name(),
		}

		err = m.OnStop(context.Background())
		assert.NoError(t, err)
		_, err = os.Stat(tempFile.Name())
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("file removal error", func(t *testing.T) {
		m := module{
			fs:       fs.New(),
			logger:   zap.NewNop().Sugar(),
			infofile: filepath.Join(t.TempDir(), "nested", "missing"),
		}

		err := m.OnStop(context.Background())
		assert.Error(t, err)
	})
}

func TestUpdateField(t *testing.T) {
	t.Run("multiple successful updates", func(t *testing.T) {
		tempFile, err := os.CreateTemp("", "test")
		assert.NoError(t, err)
		defer os.Remove(tempFile.Name())

		m := module{
			infofile:     tempFile.Name(),
			fs:           fs.New(),
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}

		// Make several step by step updates and confirm file contents are as expected
		steps := []struct {
			key        string
			value      string
			expectJSON string
		}{
			{
				key:        "rpc-address",
				value:      "127.0.0.1:9001",
				expectJSON: "{\"rpc-address\":\"127.0.0.1:9001\"}",
			},
			{
				key:        "rpc-address",
				value:      "127.0.0.1:9002",
				expectJSON: "{\"rpc-address\":\"127.0.0.1:9002\"}",
			},
			{
				key:        "pid",
				value:      "4242",
				expectJSON: "{\"pid\":\"4242\",\"rpc-address\":\"127.0.0.1:9002\"}",
			},
		}

		for _, step := range steps {
			err = m.UpdateField(step.key, step.value)
			assert.NoError(t, err)
			assert.Equal(t, step.value, m.fileContents[step.key])
			contents, err := os.ReadFile(tempFile.Name())
			assert.NoError(t, err)
			assert.Equal(t, step.expectJSON, string(contents))
		}
	})

	t.Run("file write failure", func(t *testing.T) {
		m := module{
			infofile:     t.TempDir(),
			fs:           fs.New(),
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}
		err := m.UpdateField("key", "value")
		assert.Error(t, err)
	})
}

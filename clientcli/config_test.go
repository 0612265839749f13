package clientcli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sagarc03/textstore/clientcli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_WithDefaults(t *testing.T) {
	t.Run("empty endpoint gets default", func(t *testing.T) {
		cfg := (&clientcli.Config{}).WithDefaults()
		assert.Equal(t, clientcli.DefaultEndpoint, cfg.Endpoint)
	})

	t.Run("trailing slashes removed", func(t *testing.T) {
		cfg := (&clientcli.Config{Endpoint: "http://host:3000/", BasePath: "/api/"}).WithDefaults()
		assert.Equal(t, "http://host:3000", cfg.Endpoint)
		assert.Equal(t, "/api", cfg.BasePath)
	})

	t.Run("original untouched", func(t *testing.T) {
		orig := &clientcli.Config{}
		_ = orig.WithDefaults()
		assert.Empty(t, orig.Endpoint)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     clientcli.Config
		wantErr error
	}{
		{"empty is valid", clientcli.Config{}, nil},
		{"http endpoint", clientcli.Config{Endpoint: "http://localhost:3000"}, nil},
		{"https with base path", clientcli.Config{Endpoint: "https://example.com", BasePath: "/text"}, nil},
		{"missing scheme", clientcli.Config{Endpoint: "example.com"}, clientcli.ErrInvalidEndpoint},
		{"unsupported scheme", clientcli.Config{Endpoint: "ftp://example.com"}, clientcli.ErrInvalidEndpoint},
		{"relative base path", clientcli.Config{Endpoint: "http://a", BasePath: "text"}, clientcli.ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigFile_Profiles(t *testing.T) {
	newFile := func() *clientcli.ConfigFile {
		return &clientcli.ConfigFile{Profiles: []clientcli.Profile{
			{Name: "local", Endpoint: "http://localhost:3000"},
			{Name: "prod", Endpoint: "https://text.example.com", BasePath: "/store", Default: true},
		}}
	}

	t.Run("get by name", func(t *testing.T) {
		p, err := newFile().GetProfile("local")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000", p.Endpoint)
	})

	t.Run("empty name returns default", func(t *testing.T) {
		p, err := newFile().GetProfile("")
		require.NoError(t, err)
		assert.Equal(t, "prod", p.Name)
	})

	t.Run("first profile when none marked default", func(t *testing.T) {
		cf := &clientcli.ConfigFile{Profiles: []clientcli.Profile{{Name: "a"}, {Name: "b"}}}
		p, err := cf.GetDefaultProfile()
		require.NoError(t, err)
		assert.Equal(t, "a", p.Name)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := newFile().GetProfile("staging")
		assert.ErrorIs(t, err, clientcli.ErrProfileNotFound)
	})

	t.Run("no profiles", func(t *testing.T) {
		_, err := (&clientcli.ConfigFile{}).GetProfile("")
		assert.ErrorIs(t, err, clientcli.ErrNoProfiles)
	})

	t.Run("add duplicate", func(t *testing.T) {
		err := newFile().AddProfile(clientcli.Profile{Name: "local"})
		assert.ErrorIs(t, err, clientcli.ErrProfileExists)
	})

	t.Run("add without name", func(t *testing.T) {
		err := newFile().AddProfile(clientcli.Profile{Endpoint: "http://x"})
		assert.ErrorIs(t, err, clientcli.ErrProfileName)
	})

	t.Run("update missing", func(t *testing.T) {
		err := newFile().UpdateProfile(clientcli.Profile{Name: "staging"})
		assert.ErrorIs(t, err, clientcli.ErrProfileNotFound)
	})

	t.Run("remove default promotes first", func(t *testing.T) {
		cf := newFile()
		require.NoError(t, cf.RemoveProfile("prod"))
		assert.Equal(t, []string{"local"}, cf.ProfileNames())
		assert.True(t, cf.Profiles[0].Default)
	})

	t.Run("set default clears others", func(t *testing.T) {
		cf := newFile()
		require.NoError(t, cf.SetDefault("local"))
		assert.True(t, cf.Profiles[0].Default)
		assert.False(t, cf.Profiles[1].Default)
	})

	t.Run("set default unknown", func(t *testing.T) {
		assert.ErrorIs(t, newFile().SetDefault("staging"), clientcli.ErrProfileNotFound)
	})
}

func TestConfigFile_DefaultName(t *testing.T) {
	assert.Empty(t, (&clientcli.ConfigFile{}).DefaultName())

	cf := &clientcli.ConfigFile{Profiles: []clientcli.Profile{{Name: "a"}, {Name: "b"}}}
	assert.Equal(t, "a", cf.DefaultName())

	cf.Profiles[1].Default = true
	assert.Equal(t, "b", cf.DefaultName())
}

func TestConfigFile_Upsert(t *testing.T) {
	t.Run("first profile becomes default", func(t *testing.T) {
		cf := &clientcli.ConfigFile{}
		updated, err := cf.Upsert(clientcli.Profile{Name: "local", Endpoint: "http://localhost:3000"}, false)
		require.NoError(t, err)
		assert.False(t, updated)
		require.Len(t, cf.Profiles, 1)
		assert.True(t, cf.Profiles[0].Default)
	})

	t.Run("later profile is not default unless asked", func(t *testing.T) {
		cf := &clientcli.ConfigFile{Profiles: []clientcli.Profile{{Name: "local", Default: true}}}
		_, err := cf.Upsert(clientcli.Profile{Name: "prod"}, false)
		require.NoError(t, err)
		assert.Equal(t, "local", cf.DefaultName())
		assert.False(t, cf.Profiles[1].Default)
	})

	t.Run("make default clears others", func(t *testing.T) {
		cf := &clientcli.ConfigFile{Profiles: []clientcli.Profile{{Name: "local", Default: true}}}
		_, err := cf.Upsert(clientcli.Profile{Name: "prod"}, true)
		require.NoError(t, err)
		assert.False(t, cf.Profiles[0].Default)
		assert.True(t, cf.Profiles[1].Default)
	})

	t.Run("update keeps default flag", func(t *testing.T) {
		cf := &clientcli.ConfigFile{Profiles: []clientcli.Profile{
			{Name: "local", Endpoint: "http://old", Default: true},
			{Name: "prod"},
		}}
		updated, err := cf.Upsert(clientcli.Profile{Name: "local", Endpoint: "http://new"}, false)
		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, "http://new", cf.Profiles[0].Endpoint)
		assert.True(t, cf.Profiles[0].Default)
		assert.Len(t, cf.Profiles, 2)
	})

	t.Run("update ignores incoming default flag", func(t *testing.T) {
		cf := &clientcli.ConfigFile{Profiles: []clientcli.Profile{
			{Name: "local", Default: true},
			{Name: "prod"},
		}}
		_, err := cf.Upsert(clientcli.Profile{Name: "prod", Default: true}, false)
		require.NoError(t, err)
		assert.Equal(t, "local", cf.DefaultName())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := (&clientcli.ConfigFile{}).Upsert(clientcli.Profile{}, true)
		assert.ErrorIs(t, err, clientcli.ErrProfileName)
	})
}

func TestLoadOrCreateConfigFile(t *testing.T) {
	cf, err := clientcli.LoadOrCreateConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cf.Profiles)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles: [\n"), 0o600))
	_, err = clientcli.LoadOrCreateConfigFile(path)
	assert.Error(t, err)
}

func TestConfigFile_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cf := &clientcli.ConfigFile{Profiles: []clientcli.Profile{
		{Name: "local", Endpoint: "http://localhost:3000", Default: true},
		{Name: "prod", Endpoint: "https://text.example.com", BasePath: "/store"},
	}}
	require.NoError(t, cf.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := clientcli.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cf, loaded)
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("valid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `profiles:
  - name: local
    endpoint: http://localhost:3000
    base_path: /text
    default: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cf, err := clientcli.LoadConfigFile(path)
		require.NoError(t, err)
		require.Len(t, cf.Profiles, 1)
		assert.Equal(t, clientcli.Profile{
			Name:     "local",
			Endpoint: "http://localhost:3000",
			BasePath: "/text",
			Default:  true,
		}, cf.Profiles[0])
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := clientcli.LoadConfigFile("/nonexistent/path/config.yaml")
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`invalid: [yaml: content`), 0o600))

		_, err := clientcli.LoadConfigFile(path)
		assert.Error(t, err)
	})
}

func TestMergeConfig(t *testing.T) {
	tests := []struct {
		name     string
		configs  []*clientcli.Config
		expected *clientcli.Config
	}{
		{
			name:     "empty configs",
			configs:  []*clientcli.Config{},
			expected: &clientcli.Config{},
		},
		{
			name: "later config overrides",
			configs: []*clientcli.Config{
				{Endpoint: "http://a.com", BasePath: "/a"},
				{Endpoint: "http://b.com"},
			},
			expected: &clientcli.Config{Endpoint: "http://b.com", BasePath: "/a"},
		},
		{
			name: "nil config is skipped",
			configs: []*clientcli.Config{
				{Endpoint: "http://a.com"},
				nil,
				{BasePath: "/b"},
			},
			expected: &clientcli.Config{Endpoint: "http://a.com", BasePath: "/b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clientcli.MergeConfig(tt.configs...))
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TEXTSTORE_ENDPOINT", "http://test.example.com")
	t.Setenv("TEXTSTORE_BASE_PATH", "/text")
	t.Setenv("TEXTSTORE_PROFILE", "prod")
	t.Setenv("TEXTSTORE_CONFIG", "/tmp/textstore.yaml")

	cfg := clientcli.ConfigFromEnv()
	assert.Equal(t, "http://test.example.com", cfg.Endpoint)
	assert.Equal(t, "/text", cfg.BasePath)
	assert.Equal(t, "prod", clientcli.ProfileFromEnv())
	assert.Equal(t, "/tmp/textstore.yaml", clientcli.ConfigPathFromEnv())
}

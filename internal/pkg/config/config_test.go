package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEnv() map[string]string {
	return map[string]string{
		"MONGO_URI":  "mongodb://localhost:27017",
		"DB_NAME":    "restaurant",
		"JWT_SECRET": "s3cret",
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, "*", cfg.ClientURL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTExpires.Duration())
	assert.Equal(t, 5*time.Second, cfg.Menu.CacheTTL)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.Model)
	assert.Equal(t, 500, cfg.Groq.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Groq.Temperature, 0.0001)
	assert.EqualValues(t, 20, cfg.Mongo.MaxPoolSize)
	assert.EqualValues(t, 5, cfg.Mongo.MinPoolSize)
	assert.Empty(t, cfg.Groq.APIKey)
	assert.Empty(t, cfg.Redis.Addr)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFrom_RequiredVariables(t *testing.T) {
	for _, missing := range []string{"MONGO_URI", "DB_NAME", "JWT_SECRET"} {
		t.Run(missing, func(t *testing.T) {
			env := baseEnv()
			delete(env, missing)
			_, err := LoadFrom(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}

func TestLifetime_EnvDecode(t *testing.T) {
	cases := map[string]time.Duration{
		"7d":   7 * 24 * time.Hour,
		"1.5d": 36 * time.Hour,
		"90m":  90 * time.Minute,
		"3600": time.Hour,
	}
	for in, want := range cases {
		var l Lifetime
		require.NoError(t, l.EnvDecode(in), in)
		assert.Equal(t, want, l.Duration(), in)
	}

	var l Lifetime
	assert.Error(t, l.EnvDecode("forever"))
	assert.Error(t, l.EnvDecode("xd"))
}

func TestLoadFrom_JWTExpiresFromEnv(t *testing.T) {
	env := baseEnv()
	env["JWT_EXPIRES"] = "7d"
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(env))
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.JWTExpires.Duration())

	env["JWT_EXPIRES"] = "0"
	_, err = LoadFrom(context.Background(), envconfig.MapLookuper(env))
	assert.Error(t, err)
}

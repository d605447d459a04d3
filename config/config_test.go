package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{
		JWT:   JWTConfig{Secret: "test-secret"},
		Mongo: &MongoConfig{URI: "mongodb://localhost:27017"},
	}
	cfg.applyDefaults()

	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, VariantBasic, cfg.API.Variant)
	assert.Equal(t, StorageDriverMongo, cfg.Storage.Driver)
	assert.Equal(t, "auth", cfg.Mongo.Database)
	assert.Equal(t, "users", cfg.Mongo.Collection)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
}

func TestApplyDefaults_MailFromFallsBackToUsername(t *testing.T) {
	cfg := &Config{Mail: &MailConfig{Username: "shop@example.com"}}
	cfg.applyDefaults()

	assert.Equal(t, "shop@example.com", cfg.Mail.From)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid basic config",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing jwt secret",
			mutate:  func(cfg *Config) { cfg.JWT.Secret = "" },
			wantErr: "jwt.secret",
		},
		{
			name:    "blank jwt secret",
			mutate:  func(cfg *Config) { cfg.JWT.Secret = "   " },
			wantErr: "jwt.secret",
		},
		{
			name:    "unknown variant",
			mutate:  func(cfg *Config) { cfg.API.Variant = 3 },
			wantErr: "unknown api variant",
		},
		{
			name:    "missing mongo uri",
			mutate:  func(cfg *Config) { cfg.Mongo.URI = "" },
			wantErr: "mongo.uri",
		},
		{
			name: "postgres without dsn",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = StorageDriverPostgres
			},
			wantErr: "postgres.dsn",
		},
		{
			name: "postgres with dsn",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = StorageDriverPostgres
				cfg.Postgres.DSN = "postgres://localhost/auth"
			},
		},
		{
			name: "memory needs no connection settings",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = StorageDriverMemory
				cfg.Mongo.URI = ""
			},
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = "redis" },
			wantErr: "unknown storage driver",
		},
		{
			name:    "payments without mail account",
			mutate:  func(cfg *Config) { cfg.API.Variant = VariantPayments },
			wantErr: "mail.username",
		},
		{
			name: "payments without operator address",
			mutate: func(cfg *Config) {
				cfg.API.Variant = VariantPayments
				cfg.Mail.Username = "shop@example.com"
				cfg.Mail.Password = "app-password"
			},
			wantErr: "mail.operatorAddress",
		},
		{
			name: "payments fully configured",
			mutate: func(cfg *Config) {
				cfg.API.Variant = VariantPayments
				cfg.Mail.Username = "shop@example.com"
				cfg.Mail.Password = "app-password"
				cfg.Mail.OperatorAddress = "owner@example.com"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew_ReadsEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("PORT", "6000")
	t.Setenv("EMAIL_USER", "shop@example.com")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, 6000, cfg.HTTP.Port)
	assert.Equal(t, "shop@example.com", cfg.Mail.Username)
	assert.Equal(t, "shop@example.com", cfg.Mail.From)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
}

func TestNew_FailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("MONGO_URI", "mongodb://db:27017")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")
}

func TestAPIConfig_PaymentsEnabled(t *testing.T) {
	assert.False(t, APIConfig{Variant: VariantBasic}.PaymentsEnabled())
	assert.True(t, APIConfig{Variant: VariantPayments}.PaymentsEnabled())
}

// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/classboard/internal/platform/config"
)

const validSecret = "0123456789abcdef0123456789abcdef"

/*
TestLoad_Defaults verifies defaults are applied when only required keys are set.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/classboard")
	t.Setenv("JWT_SECRET", validSecret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, "classboard.app", cfg.JWTIssuer)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.TLSEnabled())
	assert.False(t, cfg.CacheEnabled())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

/*
TestLoad_MissingRequired verifies required keys are enforced.
*/
func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestValidate_CrossField covers secret length, TTL, and TLS pairing.
*/
func TestValidate_CrossField(t *testing.T) {
	base := func() *config.Config {
		return &config.Config{JWTSecret: validSecret, JWTTTL: time.Hour}
	}

	assert.NoError(t, base().Validate())

	weak := base()
	weak.JWTSecret = "short"
	assert.Error(t, weak.Validate())

	noTTL := base()
	noTTL.JWTTTL = 0
	assert.Error(t, noTTL.Validate())

	halfTLS := base()
	halfTLS.TLSCertFile = "/etc/tls/cert.pem"
	assert.Error(t, halfTLS.Validate())

	fullTLS := base()
	fullTLS.TLSCertFile = "/etc/tls/cert.pem"
	fullTLS.TLSKeyFile = "/etc/tls/key.pem"
	assert.NoError(t, fullTLS.Validate())
	assert.True(t, fullTLS.TLSEnabled())
}

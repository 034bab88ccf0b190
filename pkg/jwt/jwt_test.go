package jwt

import (
	"testing"
	"time"

	"reporting-srv/pkg/scope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNew(t *testing.T) {
	t.Run("rejects short secret", func(t *testing.T) {
		_, err := New(Config{SecretKey: "short"})
		assert.Error(t, err)
	})

	t.Run("accepts 32 characters", func(t *testing.T) {
		m, err := New(Config{SecretKey: testSecret})
		require.NoError(t, err)
		assert.NotNil(t, m)
	})
}

func TestCreateAndVerify(t *testing.T) {
	m, err := New(Config{
		SecretKey: testSecret,
		Issuer:    "identity-srv",
		Audience:  []string{"reporting-srv"},
		TTL:       time.Minute,
	})
	require.NoError(t, err)

	token, err := m.CreateToken(scope.Payload{UserID: "42", Username: "mifos", Role: "ADMIN"})
	require.NoError(t, err)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "42", p.UserID)
	assert.Equal(t, "42", p.Subject)
	assert.Equal(t, "mifos", p.Username)
	assert.Equal(t, "ADMIN", p.Role)
	assert.Equal(t, "identity-srv", p.Issuer)
	assert.NotEmpty(t, p.Id)
	assert.Greater(t, p.ExpiresAt, p.IssuedAt)
}

func TestVerifyRejects(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "identity-srv", Audience: []string{"reporting-srv"}})
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		other, err := New(Config{SecretKey: "ffffffffffffffffffffffffffffffff", Issuer: "identity-srv", Audience: []string{"reporting-srv"}})
		require.NoError(t, err)
		token, err := other.CreateToken(scope.Payload{UserID: "1"})
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other audience", func(t *testing.T) {
		other, err := New(Config{SecretKey: testSecret, Issuer: "identity-srv", Audience: []string{"billing-srv"}})
		require.NoError(t, err)
		token, err := other.CreateToken(scope.Payload{UserID: "1"})
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := New(Config{SecretKey: testSecret, Issuer: "identity-srv", Audience: []string{"reporting-srv"}, TTL: -time.Minute})
		require.NoError(t, err)
		token, err := expired.CreateToken(scope.Payload{UserID: "1"})
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

package service

import (
	"crypto/tls"
	"errors"
	"testing"
	"time"

	"qa-tracker-backend/internal/config"
	apperrors "qa-tracker-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLDAP struct {
	bindErr  error
	result   *ldap.SearchResult
	err      error
	requests []*ldap.SearchRequest
	closed   bool
}

func (f *fakeLDAP) Bind(username, password string) error { return f.bindErr }

func (f *fakeLDAP) Search(req *ldap.SearchRequest) (*ldap.SearchResult, error) {
	f.requests = append(f.requests, req)
	return f.result, f.err
}

func (f *fakeLDAP) Close() error {
	f.closed = true
	return nil
}

func (f *fakeLDAP) SetTimeout(time.Duration) {}

func withFakeLDAP(t *testing.T, fake *fakeLDAP) {
	t.Helper()
	original := dialLDAP
	dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
		return fake, nil
	}
	t.Cleanup(func() { dialLDAP = original })
}

func directoryConfig() *config.Config {
	return &config.Config{
		LDAPHost:       "ldap.example.com",
		LDAPPort:       "636",
		LDAPBaseDN:     "DC=example,DC=com",
		LDAPTimeoutSec: 5,
	}
}

func TestDirectorySearch(t *testing.T) {
	fake := &fakeLDAP{result: &ldap.SearchResult{Entries: []*ldap.Entry{
		ldap.NewEntry("CN=Ana,DC=example,DC=com", map[string][]string{
			"displayName": {"Ana Ruiz"},
			"mail":        {"Ana.Ruiz@Example.com"},
		}),
		ldap.NewEntry("CN=Service,DC=example,DC=com", map[string][]string{
			"displayName": {"Build bot"},
		}),
	}}}
	withFakeLDAP(t, fake)

	users, err := NewDirectoryService(directoryConfig()).Search("an*")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ana.ruiz@example.com", users[0].Mail)
	assert.Equal(t, "Ana Ruiz", users[0].FullName())
	assert.True(t, fake.closed)

	require.Len(t, fake.requests, 1)
	assert.Equal(t, `(|(cn=an\2a*)(mail=an\2a*))`, fake.requests[0].Filter)
	assert.Equal(t, "DC=example,DC=com", fake.requests[0].BaseDN)
}

func TestDirectorySearchRejectsShortQuery(t *testing.T) {
	_, err := NewDirectoryService(directoryConfig()).Search(" a ")
	assert.True(t, apperrors.IsValidation(err))
}

func TestDirectoryDisabled(t *testing.T) {
	svc := NewDirectoryService(&config.Config{})
	assert.False(t, svc.Enabled())

	_, err := svc.Search("ana")
	assert.ErrorIs(t, err, apperrors.ErrDirectoryNotConfigured)
}

func TestDirectoryLookupByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		withFakeLDAP(t, &fakeLDAP{result: &ldap.SearchResult{Entries: []*ldap.Entry{
			ldap.NewEntry("CN=Luis,DC=example,DC=com", map[string][]string{
				"givenName": {"Luis"},
				"sn":        {"Mora"},
				"mail":      {"luis@example.com"},
			}),
		}}})

		user, err := NewDirectoryService(directoryConfig()).LookupByEmail("luis@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Luis Mora", user.FullName())
		assert.Equal(t, "CN=Luis,DC=example,DC=com", user.DN)
	})

	t.Run("missing", func(t *testing.T) {
		withFakeLDAP(t, &fakeLDAP{result: &ldap.SearchResult{}})

		_, err := NewDirectoryService(directoryConfig()).LookupByEmail("nobody@example.com")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("bind failure", func(t *testing.T) {
		withFakeLDAP(t, &fakeLDAP{bindErr: errors.New("invalid credentials")})

		_, err := NewDirectoryService(directoryConfig()).LookupByEmail("luis@example.com")
		assert.ErrorContains(t, err, "failed to bind to directory")
	})
}

func TestDirectoryUserFullName(t *testing.T) {
	assert.Equal(t, "x@example.com", DirectoryUser{Mail: "x@example.com"}.FullName())
	assert.Equal(t, "Eva Gil", DirectoryUser{GivenName: "Eva", SN: "Gil", Mail: "e@example.com"}.FullName())
}

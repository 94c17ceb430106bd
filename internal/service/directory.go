package service

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"qa-tracker-backend/internal/config"
	apperrors "qa-tracker-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

// DirectoryUser represents the subset of LDAP attributes the tracker uses
type DirectoryUser struct {
	DN          string `json:"dn"`
	DisplayName string `json:"display_name"`
	GivenName   string `json:"given_name"`
	SN          string `json:"sn"`
	Mail        string `json:"mail"`
}

// FullName prefers the display name and falls back to given name plus surname
func (u DirectoryUser) FullName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	name := strings.TrimSpace(u.GivenName + " " + u.SN)
	if name == "" {
		return u.Mail
	}
	return name
}

// ldapClient is the part of *ldap.Conn the directory needs
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
	SetTimeout(d time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

var directoryAttributes = []string{"displayName", "givenName", "sn", "mail"}

// DirectoryService looks people up in the corporate LDAP directory
type DirectoryService struct {
	cfg *config.Config
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// Enabled reports whether an LDAP server is configured
func (s *DirectoryService) Enabled() bool {
	return s.cfg.LDAPEnabled()
}

// Search finds people whose common name or mail starts with query
func (s *DirectoryService) Search(query string) ([]DirectoryUser, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, apperrors.NewValidationError("q", "must be at least 2 characters")
	}
	escaped := ldap.EscapeFilter(query)
	return s.search("(|(cn=" + escaped + "*)(mail=" + escaped + "*))")
}

// LookupByEmail finds the person with exactly this mail address
func (s *DirectoryService) LookupByEmail(email string) (*DirectoryUser, error) {
	users, err := s.search("(mail=" + ldap.EscapeFilter(strings.TrimSpace(email)) + ")")
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return &users[0], nil
}

func (s *DirectoryService) search(filter string) ([]DirectoryUser, error) {
	if !s.Enabled() {
		return nil, apperrors.ErrDirectoryNotConfigured
	}

	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort
	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify}) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to connect to directory: %w", err)
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, fmt.Errorf("failed to bind to directory: %w", err)
	}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		50,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		directoryAttributes,
		nil,
	)

	res, err := l.Search(req)
	if err != nil && !ldap.IsErrorWithCode(err, ldap.LDAPResultSizeLimitExceeded) {
		return nil, fmt.Errorf("directory search failed: %w", err)
	}
	if res == nil {
		return []DirectoryUser{}, nil
	}

	out := make([]DirectoryUser, 0, len(res.Entries))
	for _, e := range res.Entries {
		mail := e.GetAttributeValue("mail")
		if mail == "" {
			continue
		}
		out = append(out, DirectoryUser{
			DN:          e.DN,
			DisplayName: e.GetAttributeValue("displayName"),
			GivenName:   e.GetAttributeValue("givenName"),
			SN:          e.GetAttributeValue("sn"),
			Mail:        strings.ToLower(mail),
		})
	}
	return out, nil
}

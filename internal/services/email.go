package services

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/mentorhq/mentorship-api/internal/logger"
)

// ErrInvalidEmailDomain is returned when the email domain has no MX records.
var ErrInvalidEmailDomain = errors.New("invalid email domain")

// MXResolver defines a DNS MX lookup abstraction. *net.Resolver satisfies it.
type MXResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// DomainVerdictCache caches MX verification verdicts per domain.
type DomainVerdictCache interface {
	GetVerdict(ctx context.Context, domain string) (valid bool, found bool, err error)
	SetVerdict(ctx context.Context, domain string, valid bool) error
}

// EmailVerifierService verifies that an email's domain can receive mail.
// A domain that definitively has no MX records is rejected; a transient
// resolver failure (timeout, SERVFAIL) is treated as unknown and accepted,
// so a flaky resolver never blocks registration.
type EmailVerifierService struct {
	resolver MXResolver
	cache    DomainVerdictCache
	timeout  time.Duration
}

// NewEmailVerifierService creates a new EmailVerifierService. The cache may be nil.
func NewEmailVerifierService(resolver MXResolver, cache DomainVerdictCache, timeout time.Duration) *EmailVerifierService {
	return &EmailVerifierService{
		resolver: resolver,
		cache:    cache,
		timeout:  timeout,
	}
}

// VerifyDomain checks the MX records of the domain part of email.
func (s *EmailVerifierService) VerifyDomain(ctx context.Context, email string) error {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ErrInvalidEmailDomain
	}
	domain := email[at+1:]

	if s.cache != nil {
		valid, found, err := s.cache.GetVerdict(ctx, domain)
		if err != nil {
			logger.Log.Warnw("email domain cache unavailable", "domain", domain, "error", err)
		} else if found {
			if !valid {
				return ErrInvalidEmailDomain
			}
			return nil
		}
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	records, err := s.resolver.LookupMX(lookupCtx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			s.cacheVerdict(ctx, domain, false)
			return ErrInvalidEmailDomain
		}
		// Timeout or resolver misconfiguration: verdict unknown, accept.
		logger.Log.Warnw("MX lookup inconclusive, accepting domain", "domain", domain, "error", err)
		return nil
	}

	if len(records) == 0 {
		s.cacheVerdict(ctx, domain, false)
		return ErrInvalidEmailDomain
	}

	s.cacheVerdict(ctx, domain, true)
	return nil
}

func (s *EmailVerifierService) cacheVerdict(ctx context.Context, domain string, valid bool) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetVerdict(ctx, domain, valid); err != nil {
		logger.Log.Warnw("failed to cache email domain verdict", "domain", domain, "error", err)
	}
}

package services_test

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mentorhq/mentorship-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestEmailVerifierService_VerifyDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mxRecords := []*net.MX{{Host: "mx1.example.com", Pref: 10}}
	notFoundErr := &net.DNSError{Err: "no such host", Name: "no-mx.example", IsNotFound: true}
	timeoutErr := &net.DNSError{Err: "i/o timeout", Name: "slow.example", IsTimeout: true}

	tests := []struct {
		name      string
		email     string
		records   []*net.MX
		lookupErr error
		wantErr   error
	}{
		{
			name:    "domain with MX records",
			email:   "jane@example.com",
			records: mxRecords,
		},
		{
			name:      "domain without MX records",
			email:     "jane@no-mx.example",
			lookupErr: notFoundErr,
			wantErr:   services.ErrInvalidEmailDomain,
		},
		{
			name:    "empty MX answer",
			email:   "jane@empty.example",
			records: []*net.MX{},
			wantErr: services.ErrInvalidEmailDomain,
		},
		{
			name:      "transient resolver failure is accepted",
			email:     "jane@slow.example",
			lookupErr: timeoutErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockResolver := services.NewMockMXResolver(ctrl)
			svc := services.NewEmailVerifierService(mockResolver, nil, time.Second)

			domain := tt.email[strings.LastIndex(tt.email, "@")+1:]

			mockResolver.EXPECT().
				LookupMX(gomock.Any(), domain).
				Return(tt.records, tt.lookupErr)

			err := svc.VerifyDomain(context.Background(), tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmailVerifierService_VerifyDomain_MalformedEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewEmailVerifierService(services.NewMockMXResolver(ctrl), nil, time.Second)

	for _, email := range []string{"no-at-sign", "trailing@"} {
		err := svc.VerifyDomain(context.Background(), email)
		assert.ErrorIs(t, err, services.ErrInvalidEmailDomain, email)
	}
}

func TestEmailVerifierService_VerifyDomain_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("cached valid verdict skips lookup", func(t *testing.T) {
		mockResolver := services.NewMockMXResolver(ctrl)
		mockCache := services.NewMockDomainVerdictCache(ctrl)
		svc := services.NewEmailVerifierService(mockResolver, mockCache, time.Second)

		mockCache.EXPECT().GetVerdict(gomock.Any(), "example.com").Return(true, true, nil)

		assert.NoError(t, svc.VerifyDomain(context.Background(), "jane@example.com"))
	})

	t.Run("cached invalid verdict skips lookup", func(t *testing.T) {
		mockResolver := services.NewMockMXResolver(ctrl)
		mockCache := services.NewMockDomainVerdictCache(ctrl)
		svc := services.NewEmailVerifierService(mockResolver, mockCache, time.Second)

		mockCache.EXPECT().GetVerdict(gomock.Any(), "no-mx.example").Return(false, true, nil)

		err := svc.VerifyDomain(context.Background(), "jane@no-mx.example")
		assert.ErrorIs(t, err, services.ErrInvalidEmailDomain)
	})

	t.Run("cache miss stores fresh verdict", func(t *testing.T) {
		mockResolver := services.NewMockMXResolver(ctrl)
		mockCache := services.NewMockDomainVerdictCache(ctrl)
		svc := services.NewEmailVerifierService(mockResolver, mockCache, time.Second)

		mockCache.EXPECT().GetVerdict(gomock.Any(), "example.com").Return(false, false, nil)
		mockResolver.EXPECT().
			LookupMX(gomock.Any(), "example.com").
			Return([]*net.MX{{Host: "mx1.example.com", Pref: 10}}, nil)
		mockCache.EXPECT().SetVerdict(gomock.Any(), "example.com", true).Return(nil)

		assert.NoError(t, svc.VerifyDomain(context.Background(), "jane@example.com"))
	})

	t.Run("cache failure falls back to lookup", func(t *testing.T) {
		mockResolver := services.NewMockMXResolver(ctrl)
		mockCache := services.NewMockDomainVerdictCache(ctrl)
		svc := services.NewEmailVerifierService(mockResolver, mockCache, time.Second)

		mockCache.EXPECT().GetVerdict(gomock.Any(), "example.com").Return(false, false, errors.New("redis down"))
		mockResolver.EXPECT().
			LookupMX(gomock.Any(), "example.com").
			Return([]*net.MX{{Host: "mx1.example.com", Pref: 10}}, nil)
		mockCache.EXPECT().SetVerdict(gomock.Any(), "example.com", true).Return(nil)

		assert.NoError(t, svc.VerifyDomain(context.Background(), "jane@example.com"))
	})
}

package providers

import (
	"fmt"
	"time"

	"github.com/owasp-blt/pagescheck/internal/shared/logutil"
	"github.com/owasp-blt/pagescheck/internal/shared/providers/implementations"
	"github.com/owasp-blt/pagescheck/internal/shared/providers/provider"
	"github.com/pkg/errors"
)

type Factory interface {
	BuildForToken(providerName, accessToken string) (provider.Provider, error)
}

type FactoryConfig struct {
	// BaseURL overrides the API root, e.g. for GitHub Enterprise or a fake server in tests.
	BaseURL string

	Timeout time.Duration

	MaxRetries        int
	TotalRetryTimeout time.Duration
}

type BasicFactory struct {
	cfg FactoryConfig
	log logutil.Log
}

var _ Factory = &BasicFactory{}

func NewBasicFactory(cfg FactoryConfig, log logutil.Log) *BasicFactory {
	return &BasicFactory{
		cfg: cfg,
		log: log,
	}
}

func (f BasicFactory) buildImpl(providerName, accessToken string) (provider.Provider, error) {
	switch providerName {
	case implementations.GithubProviderName:
		return implementations.NewGithub(accessToken, f.cfg.Timeout, f.log.Child("github")), nil
	}

	return nil, fmt.Errorf("invalid provider name %q", providerName)
}

func (f BasicFactory) BuildForToken(providerName, accessToken string) (provider.Provider, error) {
	p, err := f.buildImpl(providerName, accessToken)
	if err != nil {
		return nil, err
	}

	if f.cfg.BaseURL != "" {
		if err = p.SetBaseURL(f.cfg.BaseURL); err != nil {
			return nil, errors.Wrapf(err, "failed to set base url %q", f.cfg.BaseURL)
		}
	}

	return implementations.NewStableProvider(p, f.cfg.TotalRetryTimeout, f.cfg.MaxRetries), nil
}

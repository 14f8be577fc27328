package registry

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/fin-tools/finsight/pkg/services/providers"
	"github.com/fin-tools/finsight/pkg/services/providers/qbo"
	"github.com/fin-tools/finsight/pkg/services/providers/xero"
)

// Registry resolves the caller's linked accounting connection from a
// profile file. Credentials in the file are pre-provisioned; this package
// only reads them.
type Registry interface {
	Providers() []string
	// ActiveConnection returns the first usable connection, or
	// providers.ErrNoProviderLinked when none is configured.
	ActiveConnection(ctx context.Context) (*providers.Connection, error)
}

// Options carry non-credential connection settings.
type Options struct {
	XeroBaseURL string
	QBOBaseURL  string
	Categorizer *providers.Categorizer
}

type cfgRegistry struct {
	cfg  *ini.File
	opts Options
}

// NewRegistry loads a connections file of the form:
//
//	[xero]
//	tenant_id = ...
//	token = ...
//
//	[qbo]
//	realm_id = ...
//	token = ...
func NewRegistry(path string, opts Options) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load connections file: %w", err)
	}
	return &cfgRegistry{cfg: cfg, opts: opts}, nil
}

func (r *cfgRegistry) Providers() []string {
	var names []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			names = append(names, section.Name())
		}
	}
	return names
}

func (r *cfgRegistry) ActiveConnection(_ context.Context) (*providers.Connection, error) {
	if conn := r.xeroConnection(); conn != nil {
		return conn, nil
	}
	if conn := r.qboConnection(); conn != nil {
		return conn, nil
	}
	return nil, providers.ErrNoProviderLinked
}

func (r *cfgRegistry) xeroConnection() *providers.Connection {
	section := r.cfg.Section("xero")
	token := section.Key("token").String()
	if token == "" {
		return nil
	}
	return &providers.Connection{
		Name: "xero",
		Fetcher: xero.NewFetcher(xero.FetcherConfig{
			BaseURL:  r.opts.XeroBaseURL,
			TenantID: section.Key("tenant_id").String(),
			Token:    token,
		}),
		Adapter: xero.NewAdapter(r.opts.Categorizer),
	}
}

func (r *cfgRegistry) qboConnection() *providers.Connection {
	section := r.cfg.Section("qbo")
	token := section.Key("token").String()
	if token == "" {
		return nil
	}
	return &providers.Connection{
		Name: "qbo",
		Fetcher: qbo.NewFetcher(qbo.FetcherConfig{
			BaseURL: r.opts.QBOBaseURL,
			RealmID: section.Key("realm_id").String(),
			Token:   token,
		}),
		Adapter: qbo.NewAdapter(r.opts.Categorizer),
	}
}

package server

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/oauth2"

	"github.com/pepealonso95/zeromail/internal/calendar"
	"github.com/pepealonso95/zeromail/internal/contacts"
	"github.com/pepealonso95/zeromail/internal/instrumentation"
	"github.com/pepealonso95/zeromail/internal/leads"
)

// DefaultAccount is the account name used when no account is specified.
const DefaultAccount = "default"

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx             context.Context
	cancel          context.CancelFunc
	tokenSources    map[string]oauth2.TokenSource // Maps account name to token source
	calendarClients map[string]*calendar.Client   // Maps account name to Calendar client
	contactsClients map[string]*contacts.Client   // Maps account name to Contacts client
	leadsClient     *leads.Client
	metrics         *instrumentation.Metrics
	mu              sync.RWMutex
	shutdown        bool
}

// NewServerContext creates a new server context. Token sources for accounts
// are registered separately via SetTokenSource; API clients are lazily
// created on first use.
func NewServerContext(ctx context.Context) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:             shutdownCtx,
		cancel:          cancel,
		tokenSources:    make(map[string]oauth2.TokenSource),
		calendarClients: make(map[string]*calendar.Client),
		contactsClients: make(map[string]*contacts.Client),
		metrics:         &instrumentation.Metrics{},
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// SetTokenSource registers the OAuth2 token source for a specific account.
// Any cached clients for the account are discarded so they are rebuilt with
// the new credentials on next use.
func (sc *ServerContext) SetTokenSource(account string, ts oauth2.TokenSource) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.tokenSources[account] = ts
	delete(sc.calendarClients, account)
	delete(sc.contactsClients, account)
}

// HasTokenSource reports whether a token source is registered for the account.
func (sc *ServerContext) HasTokenSource(account string) bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	_, ok := sc.tokenSources[account]
	return ok
}

// CalendarClientForAccount returns the Calendar client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token source.
func (sc *ServerContext) CalendarClientForAccount(account string) *calendar.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.calendarClients[account]; ok {
		return client
	}

	ts, ok := sc.tokenSources[account]
	if !ok {
		return nil
	}

	client, err := calendar.NewClientForAccount(sc.ctx, account, ts)
	if err != nil {
		slog.Warn("failed to create Calendar client", "account", account, "error", err)
		return nil
	}

	sc.calendarClients[account] = client
	return client
}

// CalendarClient returns the Calendar client for the default account
func (sc *ServerContext) CalendarClient() *calendar.Client {
	return sc.CalendarClientForAccount(DefaultAccount)
}

// SetCalendarClientForAccount sets the Calendar client for a specific account
func (sc *ServerContext) SetCalendarClientForAccount(account string, client *calendar.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.calendarClients[account] = client
}

// SetCalendarClient sets the Calendar client for the default account
func (sc *ServerContext) SetCalendarClient(client *calendar.Client) {
	sc.SetCalendarClientForAccount(DefaultAccount, client)
}

// ContactsClientForAccount returns the Contacts client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token source.
func (sc *ServerContext) ContactsClientForAccount(account string) *contacts.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.contactsClients[account]; ok {
		return client
	}

	ts, ok := sc.tokenSources[account]
	if !ok {
		return nil
	}

	client, err := contacts.NewClientForAccount(sc.ctx, account, ts)
	if err != nil {
		slog.Warn("failed to create Contacts client", "account", account, "error", err)
		return nil
	}

	sc.contactsClients[account] = client
	return client
}

// ContactsClient returns the Contacts client for the default account
func (sc *ServerContext) ContactsClient() *contacts.Client {
	return sc.ContactsClientForAccount(DefaultAccount)
}

// SetContactsClientForAccount sets the Contacts client for a specific account
func (sc *ServerContext) SetContactsClientForAccount(account string, client *contacts.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.contactsClients[account] = client
}

// SetContactsClient sets the Contacts client for the default account
func (sc *ServerContext) SetContactsClient(client *contacts.Client) {
	sc.SetContactsClientForAccount(DefaultAccount, client)
}

// LeadsClient returns the shared lead provider client, or nil if none is
// configured.
func (sc *ServerContext) LeadsClient() *leads.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.leadsClient
}

// SetLeadsClient sets the shared lead provider client.
func (sc *ServerContext) SetLeadsClient(client *leads.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.leadsClient = client
}

// Metrics returns the metrics recorder. Never nil; defaults to a no-op
// recorder until SetMetrics is called.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder.
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	if m == nil {
		return
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}

package auth

import (
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/viant/svcauth/client/auth/store"
	"github.com/viant/svcauth/internal/collection"
	"github.com/viant/svcauth/internal/logging"
)

// Registry owns the service name to Settings mapping.
type Registry struct {
	services *collection.SyncMap[string, *service]
	store    store.Store
	logger   *log.Logger
	mux      sync.RWMutex
	config   config
}

type config struct {
	tokenInHeaders bool
	headerKey      string
	tokenType      string
	rearmOnLogout  bool
}

// service guards one record; every read-modify-write of its settings holds mu.
type service struct {
	mu       sync.Mutex
	settings Settings
}

func (s *service) snapshot() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *service) update(fn func(settings *Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.settings)
}

// New creates a Registry holding only the default service.
func New(options ...Option) *Registry {
	ret := &Registry{
		services: collection.NewSyncMap[string, *service](),
		config:   config{headerKey: DefaultHeaderKey},
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.store == nil {
		ret.store = store.NewMemoryStore()
	}
	if ret.logger == nil {
		ret.logger = logging.L
	}
	if ret.config.headerKey == "" {
		ret.config.headerKey = DefaultHeaderKey
	}
	ret.Register(DefaultService)
	return ret
}

// Store returns the durable token store.
func (r *Registry) Store() store.Store {
	return r.store
}

// Register inserts or replaces the service record, resetting its identify counter.
func (r *Registry) Register(name string, options ...ServiceOption) {
	name = serviceName(name)
	settings := defaultSettings()
	for _, opt := range options {
		opt(&settings)
	}
	settings.TriedToIdentify = 0
	r.services.Put(name, &service{settings: settings})
	r.logger.Debug("registered service", "service", name, "autoIdentify", settings.AutoIdentify, "prepareParams", settings.PrepareParams)
}

// Resolve returns a copy of the settings for name and the name they are
// registered under; unregistered names resolve to DefaultService.
func (r *Registry) Resolve(name string) (Settings, string) {
	svc, effective := r.lookup(name)
	return svc.snapshot(), effective
}

// Services returns registered service names in lexical order.
func (r *Registry) Services() []string {
	var names []string
	r.services.Range(func(name string, _ *service) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// SetUser stores user for the service.
func (r *Registry) SetUser(name string, user User) {
	svc, _ := r.lookup(name)
	svc.update(func(settings *Settings) {
		settings.User = user
	})
}

// User returns the identified user, nil when unknown.
func (r *Registry) User(name string) User {
	svc, _ := r.lookup(name)
	return svc.snapshot().User
}

// IdentifyTries returns how many identify attempts were made for the service.
func (r *Registry) IdentifyTries(name string) int {
	svc, _ := r.lookup(name)
	return svc.snapshot().TriedToIdentify
}

// ForgetUser clears the identified user.
func (r *Registry) ForgetUser(name string) {
	r.SetUser(name, nil)
}

// SetTokenInHeaders switches between header and params injection.
func (r *Registry) SetTokenInHeaders(enabled bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.config.tokenInHeaders = enabled
}

// SetHeaderKey changes the header used in header mode.
func (r *Registry) SetHeaderKey(key string) {
	if key == "" {
		key = DefaultHeaderKey
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	r.config.headerKey = key
}

func (r *Registry) currentConfig() config {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.config
}

func (r *Registry) lookup(name string) (*service, string) {
	svc, effective, _ := r.services.GetOr(serviceName(name), DefaultService)
	return svc, effective
}

func serviceName(name string) string {
	if name == "" {
		return DefaultService
	}
	return name
}

// HeaderKey returns the header used in header mode.
func (r *Registry) HeaderKey() string {
	return r.currentConfig().headerKey
}

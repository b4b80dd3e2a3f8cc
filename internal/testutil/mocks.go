package testutil

import (
	"context"
	"sync"

	"globalpass/internal/models"
	"globalpass/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// MockCatalogProvider implements catalog.ProviderInterface with injectable behavior.
type MockCatalogProvider struct {
	mu           sync.Mutex
	CatalogFn    func(ctx context.Context) (*models.Catalog, error)
	Current      *models.Catalog
	RefreshCalls int
	SeedCalls    []*models.Catalog
}

func (m *MockCatalogProvider) Catalog(ctx context.Context) (*models.Catalog, error) {
	if m.CatalogFn != nil {
		return m.CatalogFn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Current, nil
}

func (m *MockCatalogProvider) Refresh(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshCalls++
	return nil
}

func (m *MockCatalogProvider) Snapshot() *models.Catalog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Current
}

func (m *MockCatalogProvider) Seed(c *models.Catalog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SeedCalls = append(m.SeedCalls, c)
	if m.Current == nil {
		m.Current = c
	}
}

// MockGenerator implements generation.TextGenerator with injectable behavior.
type MockGenerator struct {
	mu         sync.Mutex
	GenerateFn func(ctx context.Context, prompt string) (string, error)
	Prompts    []string
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}
	return "mock answer", nil
}

// MockAssistantService implements services.AssistantServiceInterface.
type MockAssistantService struct {
	mu        sync.Mutex
	AskFn     func(ctx context.Context, question, countryHint string) (*models.ChatTurn, []models.ESIMPackage)
	Questions []string
}

func (m *MockAssistantService) Ask(ctx context.Context, question, countryHint string) (*models.ChatTurn, []models.ESIMPackage) {
	m.mu.Lock()
	m.Questions = append(m.Questions, question)
	m.mu.Unlock()
	if m.AskFn != nil {
		return m.AskFn(ctx, question, countryHint)
	}
	return &models.ChatTurn{Role: models.RoleAssistant, Content: "mock answer"}, nil
}

package extractor

import (
	"fmt"

	"balju/internal/config"
	"balju/internal/port"
)

// ProviderFactory is a function that creates an OrderExtractor from an extractor config.
type ProviderFactory func(cfg *config.ExtractorConfig) (port.OrderExtractor, error)

// registry of extractor provider factories, populated explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an extractor provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewExtractor creates an OrderExtractor from a provider config using the registered factory.
func NewExtractor(cfg *config.ExtractorConfig) (port.OrderExtractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown extractor provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

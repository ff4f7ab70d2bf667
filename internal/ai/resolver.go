package ai

import "log"

// priority is the auto-selection order: direct Llama first, then the Groq
// gateway, then Gemini.
var priority = []string{ProviderMetaDirect, ProviderMeta, ProviderGemini}

// Resolver picks a Provider for each query. Construction wires whichever
// backends have credentials; selection itself is stateless and re-runs
// per call.
type Resolver struct {
	providers  map[string]Provider
	preference string
}

type ResolverConfig struct {
	GeminiAPIKey string
	GroqAPIKey   string
	MetaAPIKey   string
	Preference   string // auto or a provider name
}

func NewResolver(cfg ResolverConfig) *Resolver {
	providers := make(map[string]Provider)

	if cfg.MetaAPIKey != "" {
		providers[ProviderMetaDirect] = NewMetaDirectProvider(cfg.MetaAPIKey)
	}
	if cfg.GroqAPIKey != "" {
		providers[ProviderMeta] = NewGroqProvider(cfg.GroqAPIKey)
	}
	if cfg.GeminiAPIKey != "" {
		p, err := NewGeminiProvider(cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("[AI] Gemini client init failed, provider disabled: %v", err)
		} else {
			providers[ProviderGemini] = p
		}
	}

	pref := cfg.Preference
	if pref == "" {
		pref = ProviderAuto
	}

	return &Resolver{providers: providers, preference: pref}
}

// Select returns the provider for the next query, or nil when none is
// configured. An explicit preference whose credential is absent falls
// through the auto priority order.
func (r *Resolver) Select() Provider {
	if r.preference != ProviderAuto {
		if p, ok := r.providers[r.preference]; ok {
			return p
		}
	}
	for _, name := range priority {
		if name == r.preference {
			continue // already known to be unavailable
		}
		if p, ok := r.providers[name]; ok {
			return p
		}
	}
	return nil
}

// Available reports whether at least one backend is configured.
func (r *Resolver) Available() bool {
	return len(r.providers) > 0
}

// ActiveName is the name Select would currently choose, or "" when no
// backend is configured.
func (r *Resolver) ActiveName() string {
	if p := r.Select(); p != nil {
		return p.Name()
	}
	return ""
}

package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverNoCredentials(t *testing.T) {
	r := NewResolver(ResolverConfig{Preference: ProviderAuto})

	assert.False(t, r.Available())
	assert.Nil(t, r.Select())
	assert.Equal(t, "", r.ActiveName())
}

func TestResolverAutoPriority(t *testing.T) {
	tests := []struct {
		name string
		cfg  ResolverConfig
		want string
	}{
		{
			"meta-direct wins over everything",
			ResolverConfig{GeminiAPIKey: "g", GroqAPIKey: "q", MetaAPIKey: "m", Preference: ProviderAuto},
			ProviderMetaDirect,
		},
		{
			"groq wins over gemini",
			ResolverConfig{GeminiAPIKey: "g", GroqAPIKey: "q", Preference: ProviderAuto},
			ProviderMeta,
		},
		{
			"gemini when alone",
			ResolverConfig{GeminiAPIKey: "g", Preference: ProviderAuto},
			ProviderGemini,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.cfg)
			p := r.Select()
			require.NotNil(t, p)
			assert.Equal(t, tt.want, p.Name())
		})
	}
}

func TestResolverExplicitPreference(t *testing.T) {
	r := NewResolver(ResolverConfig{GeminiAPIKey: "g", GroqAPIKey: "q", Preference: ProviderGemini})
	p := r.Select()
	require.NotNil(t, p)
	assert.Equal(t, ProviderGemini, p.Name())
}

// A preferred backend with no credential falls through the priority order
// instead of failing hard.
func TestResolverPreferenceFallsBack(t *testing.T) {
	r := NewResolver(ResolverConfig{GeminiAPIKey: "g", Preference: ProviderMeta})
	p := r.Select()
	require.NotNil(t, p)
	assert.Equal(t, ProviderGemini, p.Name())
}

func TestResolverSelectionIsStable(t *testing.T) {
	r := NewResolver(ResolverConfig{GroqAPIKey: "q", Preference: ProviderAuto})
	first := r.Select()
	second := r.Select()
	require.NotNil(t, first)
	assert.Equal(t, first.Name(), second.Name())
}

func TestResolverEmptyPreferenceMeansAuto(t *testing.T) {
	r := NewResolver(ResolverConfig{GroqAPIKey: "q"})
	p := r.Select()
	require.NotNil(t, p)
	assert.Equal(t, ProviderMeta, p.Name())
}

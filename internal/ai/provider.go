// Package ai implements the assistant's LLM backends. One Provider per
// backend, selected per query by the Resolver in a fixed priority order.
package ai

import "context"

// Provider names as configured in PREFERRED_AI.
const (
	ProviderGemini     = "gemini"
	ProviderMeta       = "meta"        // Llama via the Groq gateway
	ProviderMetaDirect = "meta-direct" // Llama API directly
	ProviderAuto       = "auto"
)

// SystemPrompt frames every call: who the business is, what it sells, and
// the response constraints (French, sales tone, under 80 words).
const SystemPrompt = `Tu es l'assistant virtuel intelligent de l'entreprise "Pacao" (PDS).

Voici les services que propose Pacao :
1. Création graphique : Logos, Cartes (visite, membres).
2. Impression & Déco : Photos murales, Affiches PUB.
3. Personnalisation : Flocage, Sachets personnalisées.
4. Matériel : Matériels électriques, Ordinateurs.

Réponds de manière professionnelle, élégante et serviable (style concis).
Le but est d'inciter le client à demander un devis ou à s'intéresser aux services.
Réponds impérativement en français. Fais moins de 80 mots.`

// User-facing fixed strings. The assistant never surfaces raw errors.
const (
	MsgNoProvider  = "Aucune IA n'est configurée. Veuillez ajouter META_API_KEY, GROQ_API_KEY ou GEMINI_API_KEY dans votre fichier .env."
	MsgCallFailed  = "La connexion au service a échoué. Veuillez réessayer plus tard."
	MsgEmptyAnswer = "Désolé, je n'ai pas pu générer une réponse."
)

// Provider is one LLM backend. conversation carries the rendered prior
// turns and may be empty on the first query.
type Provider interface {
	Name() string
	Generate(ctx context.Context, query, conversation string) (string, error)
}

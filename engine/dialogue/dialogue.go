// Package dialogue implements the conversation-topic registry. Declared
// items register here so NPCs can be asked about them; the text variants
// stay unexpanded until render time.
package dialogue

import (
	"github.com/google/uuid"
)

// Topic is one registered conversation subject.
type Topic struct {
	QuestUID      uuid.UUID
	Symbol        string
	DisplayName   string
	Kind          string // "thing" for item resources
	InfoVariants  []string
	RumorVariants []string
}

// Registry stores topics keyed by (questUID, symbol).
type Registry struct {
	topics []Topic
}

// NewRegistry creates an empty topic registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterTopic adds or replaces the topic for (questUID, symbol).
func (g *Registry) RegisterTopic(questUID uuid.UUID, symbol, displayName, kind string, infoVariants, rumorVariants []string) {
	t := Topic{
		QuestUID:      questUID,
		Symbol:        symbol,
		DisplayName:   displayName,
		Kind:          kind,
		InfoVariants:  infoVariants,
		RumorVariants: rumorVariants,
	}
	for i, existing := range g.topics {
		if existing.QuestUID == questUID && existing.Symbol == symbol {
			g.topics[i] = t
			return
		}
	}
	g.topics = append(g.topics, t)
}

// RemoveQuestTopics drops every topic registered by the given quest.
// Called during quest teardown.
func (g *Registry) RemoveQuestTopics(questUID uuid.UUID) {
	kept := g.topics[:0]
	for _, t := range g.topics {
		if t.QuestUID != questUID {
			kept = append(kept, t)
		}
	}
	g.topics = kept
}

// Find returns the topic for (questUID, symbol), if registered.
func (g *Registry) Find(questUID uuid.UUID, symbol string) (Topic, bool) {
	for _, t := range g.topics {
		if t.QuestUID == questUID && t.Symbol == symbol {
			return t, true
		}
	}
	return Topic{}, false
}

// Topics returns all registered topics in registration order.
func (g *Registry) Topics() []Topic {
	return append([]Topic(nil), g.topics...)
}

package classify

import (
	"github.com/maryamariyan/classify/pkg/syntax"
)

// Registry maps syntax kinds to the ordered classifiers that run for them.
// Node and token kinds are looked up separately. Registration order is
// invocation order, and every registered classifier runs: distinct
// classifiers may label disjoint aspects of the same region, so there is no
// early exit on the first non-empty result.
//
// A Registry is built up front and read-only during classification; it may
// be shared across concurrent Classify calls.
type Registry struct {
	node  map[syntax.Kind][]Classifier
	token map[syntax.Kind][]Classifier
}

func NewRegistry() *Registry {
	return &Registry{
		node:  make(map[syntax.Kind][]Classifier),
		token: make(map[syntax.Kind][]Classifier),
	}
}

// Node registers classifiers for a node kind, appending after any already
// registered. Returns the registry for chaining.
func (r *Registry) Node(kind syntax.Kind, classifiers ...Classifier) *Registry {
	r.node[kind] = append(r.node[kind], classifiers...)
	return r
}

// Token registers classifiers for a token kind, appending after any already
// registered. Returns the registry for chaining.
func (r *Registry) Token(kind syntax.Kind, classifiers ...Classifier) *Registry {
	r.token[kind] = append(r.token[kind], classifiers...)
	return r
}

// NodeClassifiers returns the ordered classifiers for a node kind, nil if
// none are registered.
func (r *Registry) NodeClassifiers(kind syntax.Kind) []Classifier {
	return r.node[kind]
}

// TokenClassifiers returns the ordered classifiers for a token kind, nil if
// none are registered.
func (r *Registry) TokenClassifiers(kind syntax.Kind) []Classifier {
	return r.token[kind]
}

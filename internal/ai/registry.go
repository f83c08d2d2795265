package ai

import (
	"context"
	"fmt"
)

type entry struct {
	tag      string
	title    string
	provider Provider
}

// Registry — упорядоченный набор провайдеров. Порядок регистрации
// задаёт конфигурация, первый зарегистрированный — провайдер по умолчанию.
// Один Registry разделяется всеми конкурентными хендлерами: после
// старта он только читается.
type Registry struct {
	entries []entry
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(tag, title string, p Provider) {
	r.entries = append(r.entries, entry{tag: tag, title: title, provider: p})
}

func (r *Registry) Get(tag string) (Provider, error) {
	for _, e := range r.entries {
		if e.tag == tag {
			return e.provider, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, tag)
}

func (r *Registry) Default() string {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[0].tag
}

func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		tags = append(tags, e.tag)
	}
	return tags
}

func (r *Registry) Title(tag string) string {
	for _, e := range r.entries {
		if e.tag == tag {
			return e.title
		}
	}
	return tag
}

// Generate — единственная операция шлюза: один исходящий вызов,
// без ретраев. Политика повторов — дело вызывающего.
func (r *Registry) Generate(ctx context.Context, prompt string, temperature float64, tag string) (string, error) {
	p, err := r.Get(tag)
	if err != nil {
		return "", err
	}
	return p.Generate(ctx, prompt, temperature)
}

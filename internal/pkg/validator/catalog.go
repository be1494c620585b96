package validator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// Catalog holds positional message templates ({0}, {1}, ...) keyed by name.
// Placeholders must appear in ascending order. It is safe for concurrent
// Render calls once all templates are registered.
type Catalog struct {
	translator ut.Translator
	arity      map[string]int
}

// NewCatalog creates an English catalog.
func NewCatalog() (*Catalog, error) {
	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	return &Catalog{translator: enTrans, arity: make(map[string]int)}, nil
}

// Register adds a template under key.
func (c *Catalog) Register(key, template string) error {
	if err := c.translator.Add(key, template, false); err != nil {
		return fmt.Errorf("validator: register %q: %w", key, err)
	}
	c.arity[key] = strings.Count(template, "{")
	return nil
}

// Render fills the template for key with params. Missing params render
// empty and extra params are ignored. An unknown key renders as the key itself.
func (c *Catalog) Render(key string, params ...string) string {
	n, ok := c.arity[key]
	if !ok {
		return key
	}
	args := make([]string, n)
	copy(args, params)

	msg, err := c.translator.T(key, args...)
	if err != nil {
		slog.Warn("warning: error translating", "key", key, "error", err)
		return key
	}
	return msg
}

// Package i18n provides key-to-string translation bundles for the CV portal.
// Bundles are flat YAML files, one per locale. A missing translation echoes
// the key back, which the preview pipeline relies on for category-name
// fallback.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Bundle holds translations for every loaded locale and is safe for
// concurrent use. Lookup falls back to the default locale, then to the key
// itself.
type Bundle struct {
	mu            sync.RWMutex
	defaultLocale string
	messages      map[string]map[string]string // locale -> key -> text
}

// NewBundle creates an empty bundle with the given default locale.
func NewBundle(defaultLocale string) *Bundle {
	return &Bundle{
		defaultLocale: defaultLocale,
		messages:      make(map[string]map[string]string),
	}
}

// LoadDir loads every *.yaml / *.yml file in dir. The file name (without
// extension) is the locale, e.g. en.yaml, de.yaml.
func (b *Bundle) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read translations dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if err := b.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile loads (or reloads) a single locale file.
func (b *Bundle) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read translation file %s: %w", path, err)
	}

	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("failed to parse translation file %s: %w", path, err)
	}

	locale := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	b.mu.Lock()
	b.messages[strings.ToLower(locale)] = messages
	b.mu.Unlock()
	return nil
}

// Locales returns the loaded locale codes.
func (b *Bundle) Locales() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	locales := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		locales = append(locales, locale)
	}
	return locales
}

// Translate looks up key for the locale, falling back to the default locale
// and finally echoing the key back unchanged.
func (b *Bundle) Translate(locale, key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if text, ok := b.messages[strings.ToLower(locale)][key]; ok {
		return text
	}
	if text, ok := b.messages[b.defaultLocale][key]; ok {
		return text
	}
	return key
}

// Translator returns a key-to-string lookup bound to one locale, suitable for
// passing into the preview derivation pipeline.
func (b *Bundle) Translator(locale string) func(key string) string {
	return func(key string) string {
		return b.Translate(locale, key)
	}
}

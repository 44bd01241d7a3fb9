// Package i18n resolves human-readable messages for issue codes.
package i18n

import "sync/atomic"

// Translator retrieves messages for Issue codes. data provides optional
// metadata to embed in the message.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in English dictionary.
type dictTranslator struct{}

func (dictTranslator) Message(code string, _ map[string]string) string {
	switch code {
	case "invalid_type":
		return "invalid type"
	case "parse_error":
		return "parse error"
	case "truncated":
		return "truncated"
	case "duplicate_key":
		return "duplicate key"
	case "discriminator_missing":
		return "discriminator missing"
	case "discriminator_unknown":
		return "unrecognized discriminator"
	case "discriminator_malformed":
		return "malformed discriminator"
	case "mapping_failed":
		return "structural mapping failed"
	case "duplicate_tag":
		return "discriminator registered twice"
	case "missing_unknown":
		return "family has no unknown variant"
	case "nesting_too_deep":
		return "nested family has its own nested families"
	case "unclaimed_type":
		return "no family claims the declared type"
	case "invalid_descriptor":
		return "invalid family descriptor"
	}
	return code
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{}}) }

// SetTranslator replaces the Translator implementation; nil restores the
// built-in dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return current.Load().tr.Message(code, data)
}

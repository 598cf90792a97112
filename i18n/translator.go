package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "line" or "path"); placeholders are written as {name}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"cannot_identify":     "cannot identify line {line}",
		"parse_error":         "parse error at line {line}: {reason}",
		"illegal_nested_hash": "mapping nested in a list at {path}",
		"invalid_input":       "input is not a mapping",
		"invalid_key":         "key {path} is empty or contains whitespace",
		"not_canonical":       "not in canonical form",
	},
	"ja": {
		"cannot_identify":     "{line} 行目を識別できません",
		"parse_error":         "{line} 行目で解析エラー: {reason}",
		"illegal_nested_hash": "{path} のリストにマッピングが含まれています",
		"invalid_input":       "入力がマッピングではありません",
		"invalid_key":         "キー {path} が空か空白を含んでいます",
		"not_canonical":       "正規形ではありません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }

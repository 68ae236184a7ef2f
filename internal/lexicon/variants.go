package lexicon

import "strings"

// Variant is an approximate regional pronunciation.
type Variant struct {
	Code   string `json:"code"`
	Accent string `json:"accent"`
	IPA    string `json:"ipa"`
}

var (
	commonSounds = strings.NewReplacer("th", "θ", "sh", "ʃ", "ch", "tʃ", "ng", "ŋ")
	accents      = []struct {
		code, accent string
		rules        []func(string) string
	}{
		{"us", "General American", []func(string) string{
			replaceAll("a", "æ"), replaceAll("er", "ɚ"),
		}},
		{"uk", "Received Pronunciation", []func(string) string{
			replaceAll("a", "ɑː"), replaceAll("er", "ə"), trimSuffix("r"),
		}},
		{"au", "General Australian", []func(string) string{
			replaceAll("a", "æ"), replaceAll("i", "ɪ"), replaceAll("er", "ə"),
		}},
	}
)

// Variants spells word with rough US, UK and Australian IPA. The rewrite is
// letter based and only meant as a study hint.
func Variants(word string) []Variant {
	base := commonSounds.Replace(strings.ToLower(word))
	out := make([]Variant, 0, len(accents))
	for _, a := range accents {
		ipa := base
		for _, rule := range a.rules {
			ipa = rule(ipa)
		}
		out = append(out, Variant{Code: a.code, Accent: a.accent, IPA: "/" + ipa + "/"})
	}
	return out
}

func replaceAll(old, repl string) func(string) string {
	return func(s string) string {
		return strings.ReplaceAll(s, old, repl)
	}
}

func trimSuffix(suffix string) func(string) string {
	return func(s string) string {
		return strings.TrimSuffix(s, suffix)
	}
}

package usecase

import (
	"strings"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var promptTemplate = template.Must(template.New("codeswitch").Parse(`
You are an expert Chinese-English code-switching translator. Your task is to translate mixed Chinese and English (Chinglish) into fluent, natural {{.Language}}.

Rules:
{{- if .English}}
- If Chinese words/phrases appear, translate them to natural English based on context
- Integrate Chinese translations smoothly with existing English parts
- Maintain the original meaning and intent
- Keep names, numbers, and proper nouns accurate
- If the input is already good English, make minimal improvements for fluency
- Do NOT output any Chinese characters or Pinyin in the final translation
- Return ONLY the final fluent English sentence
{{- else}}
- Translate every Chinese and English word or phrase to natural {{.Language}} based on context
- Maintain the original meaning and intent
- Keep names, numbers, and proper nouns accurate
- Do NOT output Pinyin or any language other than {{.Language}} in the final translation
- Return ONLY the final fluent {{.Language}} sentence
{{- end}}

Input text: "{{.Text}}"

Fluent {{.Language}} translation:`))

type promptData struct {
	Language string
	English  bool
	Text     string
}

// BuildTranslationPrompt renders the code-switching instruction for text.
// Unknown target tags are used verbatim as the language name.
func BuildTranslationPrompt(text, targetLanguage string) string {
	data := promptData{Language: targetLanguage, Text: text}

	if tag, err := language.Parse(targetLanguage); err == nil {
		base, _ := tag.Base()
		data.English = base.String() == "en"
		if name := display.Tags(language.English).Name(tag); name != "" {
			data.Language = name
		}
	}
	if data.English {
		data.Language = "English"
	}

	var sb strings.Builder
	// the template only reads string fields, execution cannot fail
	_ = promptTemplate.Execute(&sb, data)
	return sb.String()
}

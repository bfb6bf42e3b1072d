package texttranslator

import "fmt"

// TranslateTask describes one translation: what to translate and between which languages.
type TranslateTask struct {
	SourceLanguage string `json:"source_language"` // ISO 639-1 code, e.g. "en"
	TargetLanguage string `json:"target_language"` // ISO 639-1 code, e.g. "ru"
	Text           string `json:"text"`
}

// TranslationResult is the outcome of a successful translation.
type TranslationResult struct {
	Text string `json:"text"`
}

const defaultTaskText = `This is my rifle. There are many like it, but this one is mine.
My rifle is my best friend. It is my life. I must master it as I must master my life.
My rifle, without me, is useless. Without my rifle, I am useless. I must fire my rifle true.
I must shoot straighter than my enemy who is trying to kill me. I must shoot him before he shoots me. I will...
My rifle and I know that what counts in war is not the rounds we fire, the noise of our burst, nor the smoke we make.
We know that it is the hits that count. We will hit...`

// DefaultTask returns the example task shown in the API documentation.
// It is not used to fill in missing request fields.
func DefaultTask() TranslateTask {
	return TranslateTask{
		SourceLanguage: "en",
		TargetLanguage: "ru",
		Text:           defaultTaskText,
	}
}

func (t TranslateTask) String() string {
	return fmt.Sprintf("TranslateTask:\n  Source Language: %q\n  Target Language: %q\n  Text: %q",
		t.SourceLanguage, t.TargetLanguage, t.Text)
}

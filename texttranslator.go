// Package texttranslator provides an LLM-backed text translation service.
//
// A TranslateTask names a source and a target language (ISO 639-1 codes)
// and the text to translate. The task is handed to an AIProvider, which
// builds a prompt for a chat-completion model and returns the translated
// text, or a *ProviderError classifying what went wrong.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//	    "os"
//
//	    "github.com/YourCarma/text-translator"
//	    "github.com/YourCarma/text-translator/provider"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    p, err := provider.NewOpenAIProvider(provider.OpenAIConfig{
//	        APIKey:    os.Getenv("OPENAI_API_KEY"),
//	        ModelName: "gpt-4o-mini",
//	    }, zap.NewNop())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    t := texttranslator.NewTranslator(p)
//
//	    result, err := t.Translate(context.Background(), texttranslator.TranslateTask{
//	        SourceLanguage: "en",
//	        TargetLanguage: "ru",
//	        Text:           "Hello",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Text) // Привет
//	}
package texttranslator

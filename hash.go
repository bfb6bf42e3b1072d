package texttranslator

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashText computes the SHA-256 hash of the text. Whitespace is significant:
// the model is asked to preserve formatting, so padded input is a different task.
func HashText(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key for a task translated by the given model.
func CacheKey(task TranslateTask, model string) string {
	return HashText(task.Text) + ":" +
		NormalizeLanguageCode(task.SourceLanguage) + ":" +
		NormalizeLanguageCode(task.TargetLanguage) + ":" +
		model
}

// Package provider defines the AI provider interface and implementations.
package provider

import (
	texttranslator "github.com/YourCarma/text-translator"
	"github.com/YourCarma/text-translator/config"
)

// AIProvider is the interface for AI translation backends.
// This is an alias to the main package interface for convenience.
type AIProvider = texttranslator.AIProvider

// TranslateTask is an alias to the main package type.
type TranslateTask = texttranslator.TranslateTask

// OpenAIConfig is an alias to the configuration type of the OpenAI provider.
type OpenAIConfig = config.OpenAIConfig

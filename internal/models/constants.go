// Package models contains data types and constants for the Gemini REST API.
package models

// Endpoints for the Gemini generative-language API
const (
	EndpointBase = "https://generativelanguage.googleapis.com/v1beta"

	// generateContent is appended to the model path: models/{model}:generateContent
	MethodGenerateContent = "generateContent"
)

// Model names understood by the generateContent endpoint
const (
	ModelFlash20     = "gemini-2.0-flash"
	ModelFlash20Lite = "gemini-2.0-flash-lite"
	ModelFlash25     = "gemini-2.5-flash"
	ModelPro25       = "gemini-2.5-pro"

	// DefaultModel is the model the chat panel has always talked to
	DefaultModel = ModelFlash20
)

// AllModels returns a list of known model names
func AllModels() []string {
	return []string{ModelFlash20, ModelFlash20Lite, ModelFlash25, ModelPro25}
}

// IsKnownModel reports whether name is one of AllModels.
func IsKnownModel(name string) bool {
	for _, m := range AllModels() {
		if m == name {
			return true
		}
	}
	return false
}

// Preamble is prepended verbatim to every user prompt.
const Preamble = "before prompt{ Please respond in under 100 words, i am a small kid, be specific, " +
	"structure the output in bullet points and make it beginner friendly, plz dont bold anything }, " +
	"heres the actual prompt\n+ "

// Fallback replies shown in place of a model answer
const (
	// FallbackNoReply is used when the response carried no usable text
	FallbackNoReply = "Sorry, I couldn't understand that."

	// FallbackFetchError is used when the request itself failed
	FallbackFetchError = "Error fetching response from Gemini API."
)

// CompositePrompt joins the preamble and the raw user text.
func CompositePrompt(raw string) string {
	return Preamble + raw
}

// DefaultHeaders returns the default headers for generateContent requests
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   "chatpanel/0.1",
	}
}

// Package api provides the Gemini REST client implementation.
package api

// GJSON paths for values in generateContent responses.
const (
	// Reply text: candidates[0].content.parts[0].text
	PathCandidates = "candidates"
	PathContent    = "content"
	PathParts      = "parts"
	PathText       = "text"
	PathFirst      = "0"

	// PathReply is the whole reply path in one expression
	PathReply = "candidates.0.content.parts.0.text"

	// Error document: {"error": {"code": 400, "message": "...", "status": "..."}}
	PathErrorMessage = "error.message"
	PathErrorStatus  = "error.status"
)

// replySteps is PathReply split into the steps walked by ExtractReply
var replySteps = []string{PathCandidates, PathFirst, PathContent, PathParts, PathFirst, PathText}

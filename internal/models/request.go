package models

// Part is one piece of content; only text parts are sent
type Part struct {
	Text string `json:"text"`
}

// Content groups parts of a single turn
type Content struct {
	Parts []Part `json:"parts"`
}

// GenerateContentRequest is the JSON body of a generateContent call:
// {"contents":[{"parts":[{"text":"..."}]}]}
type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

// NewGenerateContentRequest wraps a single prompt into a request body
func NewGenerateContentRequest(prompt string) GenerateContentRequest {
	return GenerateContentRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
	}
}

package render

import "strings"

// Markdown renders content for terminal display using a pooled renderer.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(content)
}

// Reply renders a bot reply and trims the blank margin glamour puts around
// documents, so the result sits flush inside a message bubble. If the
// style cannot be loaded the plain text is returned with the error.
func Reply(text string, opts Options) (string, error) {
	out, err := Markdown(text, opts)
	if err != nil {
		return text, err
	}
	return strings.Trim(out, "\n"), nil
}

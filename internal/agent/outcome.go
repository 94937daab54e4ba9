package agent

import "bookscan/internal/agent/prompt"

// Outcome is the tagged result of a review generation: either text or the error that prevented it.
type Outcome struct {
	text string
	err  error
}

func Succeeded(text string) Outcome {
	return Outcome{text: text}
}

func Failed(err error) Outcome {
	return Outcome{err: err}
}

func (o Outcome) OK() bool {
	return o.err == nil
}

func (o Outcome) Err() error {
	return o.err
}

// Text returns the generated review, or "Error generating review: <cause>" on failure.
func (o Outcome) Text() string {
	if o.err != nil {
		return prompt.ReviewErrorPrefix + o.err.Error()
	}
	return o.text
}

// FailureCode names the failure class, empty on success.
func (o Outcome) FailureCode() string {
	if o.err == nil {
		return ""
	}
	return FailureCode(o.err).String()
}

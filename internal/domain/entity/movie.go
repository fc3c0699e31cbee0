package entity

// MovieQuestion is the body of POST /ask-movie-question.
type MovieQuestion struct {
	Question string `json:"question"`
}

// MovieAnswer is the success payload for a movie question. Status is always
// "success" here; failures are shaped into ErrorResponse at the API boundary.
type MovieAnswer struct {
	ModelResponse    string `json:"model_response"`
	Status           string `json:"status"`
	QuestionReceived string `json:"question_received"`
	Timestamp        string `json:"timestamp"`
}

// ImageRequest is the body of POST /generate-image.
type ImageRequest struct {
	Text string `json:"text"`
}

// GeneratedImage carries raw image bytes and the MIME type declared by the
// collaborator. It is streamed to the client, never stored.
type GeneratedImage struct {
	Data     []byte
	MIMEType string
}

// ErrorResponse is the JSON shape for every failed request, so clients can
// discriminate on the status field without parsing HTTP codes.
type ErrorResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

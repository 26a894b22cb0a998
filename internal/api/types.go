package api

// ScoreRequest is the POST /scores body.
type ScoreRequest struct {
	Score int    `json:"score"`
	Name  string `json:"name"`
}

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// PublishResponse is returned by POST /stage with the stored identifier,
// which may have been generated server-side.
type PublishResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

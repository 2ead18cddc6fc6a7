package transfer

type FacebookPostResponse struct {
	ID    string         `json:"id"`
	Error *FacebookError `json:"error,omitempty"`
}

type FacebookError struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode"`
	FbtraceID    string `json:"fbtrace_id"`
}

type FacebookTokenResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int            `json:"expires_in"`
	Error       *FacebookError `json:"error,omitempty"`
}

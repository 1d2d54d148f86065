package apiv1

import "github.com/ManuelReschke/Folio/app/models"

// Pong is the response of GET /ping
type Pong struct {
	Ping string `json:"ping"`
}

// Error is the body of every non-2xx response
type Error struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// PostList is one page of public posts
type PostList struct {
	Items   []models.Post `json:"items"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
	Pages   int           `json:"pages"`
}

// ResourceList is the public resource library
type ResourceList struct {
	Items []models.Resource `json:"items"`
}

// SubscribeRequest is the body of the newsletter signup
type SubscribeRequest struct {
	Email string `json:"email" form:"email"`
}

// SubscribeResponse reports a successful signup
type SubscribeResponse struct {
	Message     string `json:"message"`
	Reactivated bool   `json:"reactivated"`
}

// DownloadResponse carries the target of a counted download
type DownloadResponse struct {
	URL       string `json:"url"`
	Downloads int64  `json:"downloads"`
}

// ContactRequest is the body of a contact submission
type ContactRequest struct {
	models.ContactMessage
	CaptchaToken string `json:"captchaToken" form:"h-captcha-response"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

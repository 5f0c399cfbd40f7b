// Package service
package service

type FeedbackServiceInterface interface {
	SubmitFeedback(req *RequestSubmitFeedback) *ApiResponse[ResponseSubmitFeedback]
	SubmitContact(req *RequestSubmitContact) *ApiResponse[ResponseSubmitContact]
	GetFeedbackPage(req *RequestFeedbackPage) *ApiResponse[ResponseFeedbackPage]
}

type RequestSubmitFeedback struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Ip      string `json:"-"`
}

type ResponseSubmitFeedback struct {
	Received bool `json:"received"`
}

type RequestSubmitContact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Ip      string `json:"-"`
}

type ResponseSubmitContact struct {
	Received bool `json:"received"`
}

type RequestFeedbackPage struct {
	JwtHeader
	Page     int `query:"page_number"`
	PageSize int `query:"page_size"`
}

type FeedbackItem struct {
	ID        uint   `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type ResponseFeedbackPage struct {
	Items    []*FeedbackItem `json:"items"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Total    int64           `json:"total"`
}

// Package operation
package operation

type FeedbackOperationInterface interface {
	SaveFeedback(feedback *Feedback) (err error)
	GetFeedbacks(page, pageSize int) (feedbacks []*Feedback, total int64, err error)
}

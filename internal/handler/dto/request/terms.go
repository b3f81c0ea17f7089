package request

type PublishTermsRequest struct {
	Version string `json:"version" binding:"required,max=50"`
	Body    string `json:"body" binding:"required"`
}

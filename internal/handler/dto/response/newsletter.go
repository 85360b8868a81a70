package response

type SubscribeResponse struct {
	Message string `json:"message"`
}

func NewSubscribeResponse(alreadySubscribed bool) *SubscribeResponse {
	if alreadySubscribed {
		return &SubscribeResponse{Message: "Already subscribed."}
	}
	return &SubscribeResponse{Message: "Subscribed successfully."}
}

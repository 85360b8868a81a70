package request

import (
	"cafe-fausse/internal/usecase/commands"
)

type SubscribeRequest struct {
	Name  *string `json:"name,omitempty"`
	Email string  `json:"email"`
}

func (r SubscribeRequest) ToParams() commands.SubscribeParams {
	return commands.SubscribeParams{
		Name:  r.Name,
		Email: r.Email,
	}
}

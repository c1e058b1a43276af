package auth

import "github.com/alexkarev/authgate/pkg/identity"

// CodeDelivery is the client-visible hint about where a code was sent.
// The destination is already masked by the provider.
type CodeDelivery struct {
	Destination string `json:"destination,omitempty"`
	Medium      string `json:"medium,omitempty"`
}

func newCodeDelivery(d *identity.CodeDelivery) *CodeDelivery {
	if d == nil {
		return nil
	}
	return &CodeDelivery{
		Destination: d.Destination,
		Medium:      d.Medium,
	}
}

type SignUpResponse struct {
	Message  string        `json:"message"`
	UserSub  string        `json:"user_sub"`
	Delivery *CodeDelivery `json:"delivery,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ChallengeResponse struct {
	Message       string `json:"message"`
	ChallengeName string `json:"challenge_name"`
	Session       string `json:"session"`
}

// AuthenticatedResponse deliberately carries no token values; tokens travel
// only in HttpOnly cookies.
type AuthenticatedResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

type DeliveryResponse struct {
	Message  string        `json:"message"`
	Delivery *CodeDelivery `json:"delivery,omitempty"`
}

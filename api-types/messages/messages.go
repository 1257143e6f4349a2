// Package messages is for responses of actions without their own representations,
// like follow or like.
package messages

type Message struct {
	Message string `json:"message"`
}

package request_models

type GreetingRequest struct {
	Name       string        `json:"name" binding:"required"`
	Highlights []UpdateEntry `json:"highlights"`
	Tone       string        `json:"tone"`
}

type PortraitRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

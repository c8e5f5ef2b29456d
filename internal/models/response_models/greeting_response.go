package response_models

type GreetingResponse struct {
	Greeting string `json:"greeting"`
}

type PortraitResponse struct {
	PhotoURL string `json:"photo_url"`
}

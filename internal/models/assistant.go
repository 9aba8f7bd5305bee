package models

type AssistantRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

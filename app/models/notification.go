package models

type Notification struct {
	ID   string `json:"id"`
	Data struct {
		Message string `json:"message"`
	} `json:"data"`
	CreatedAt string `json:"created_at"`
}

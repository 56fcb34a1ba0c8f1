package request

import "strings"

// ClientRequest is the payload for creating or replacing a client.
type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

func (r ClientRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r ClientRequest) ResolveEmail() string {
	return strings.TrimSpace(r.Email)
}

package server

import (
	"Collabenote/handler"
)

type Handlers struct {
	Auth          *handler.Auth
	Note          *handler.Note
	Cart          *handler.Cart
	Payment       *handler.Payment
	AccessRequest *handler.AccessRequest
	User          *handler.User
	Admin         *handler.Admin
}

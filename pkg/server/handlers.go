package server

import (
	"Plume/handler"
)

type Handlers struct {
	Article *handler.Article
	User    *handler.User
	Admin   *handler.Admin
}

package server

import (
	"Umami/handler"
)

type Handlers struct {
	Auth       *handler.Auth
	User       *handler.User
	Recipe     *handler.Recipe
	Ingredient *handler.Ingredient
	Tag        *handler.Tag
}

package handler

import "net/http"

// HelloHandler serves the template's canonical example endpoint.
type HelloHandler struct{}

func NewHelloHandler() *HelloHandler { return &HelloHandler{} }

type helloResponse struct {
	Message string `json:"message"`
}

// Hello handles GET /hello
//
// @Summary  Hello world
// @Tags     system
// @Produce  json
// @Success  200  {object}  helloResponse
// @Router   /hello [get]
func (h *HelloHandler) Hello(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, helloResponse{Message: "Hello, World!"})
}

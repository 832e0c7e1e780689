package service

import "github.com/gorilla/mux"

type MuxRouter struct {
	Mux *mux.Router
}

func CreateMux() *MuxRouter {
	return &MuxRouter{Mux: mux.NewRouter()}
}

package http

import (
	"net/http"

	"locamaq-backend/internal/security"
	"locamaq-backend/internal/service"

	"github.com/gorilla/mux"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Tokens        security.TokenManager
	AuthSvc       service.AuthService
	ClientSvc     service.ClientService
	EquipmentSvc  service.EquipmentService
	ContractSvc   service.ContractService
	DevolutionSvc service.DevolutionService
	SignatureSvc  service.SignatureService
}

// NewRouter wires all handlers under /api/v1. Everything except auth and
// health requires a valid bearer token.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware, LoggingMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(deps.AuthSvc)
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(deps.Tokens))

	clientHandler := NewClientHandler(deps.ClientSvc)
	protected.HandleFunc("/clientes", clientHandler.List).Methods("GET")
	protected.HandleFunc("/clientes", clientHandler.Create).Methods("POST")
	protected.HandleFunc("/clientes/{id:[0-9]+}", clientHandler.Get).Methods("GET")
	protected.HandleFunc("/clientes/{id:[0-9]+}", clientHandler.Update).Methods("PUT")
	protected.HandleFunc("/clientes/{id:[0-9]+}", clientHandler.Delete).Methods("DELETE")

	equipmentHandler := NewEquipmentHandler(deps.EquipmentSvc)
	protected.HandleFunc("/equipamentos", equipmentHandler.List).Methods("GET")
	protected.HandleFunc("/equipamentos", equipmentHandler.Create).Methods("POST")
	protected.HandleFunc("/equipamentos/estatisticas", equipmentHandler.Statistics).Methods("GET")
	protected.HandleFunc("/equipamentos/{id:[0-9]+}", equipmentHandler.Get).Methods("GET")
	protected.HandleFunc("/equipamentos/{id:[0-9]+}", equipmentHandler.Update).Methods("PUT")
	protected.HandleFunc("/equipamentos/{id:[0-9]+}", equipmentHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/equipamentos/{id:[0-9]+}/cotacao", equipmentHandler.Quote).Methods("GET")

	contractHandler := NewContractHandler(deps.ContractSvc)
	protected.HandleFunc("/contratos", contractHandler.List).Methods("GET")
	protected.HandleFunc("/contratos", contractHandler.Create).Methods("POST")
	protected.HandleFunc("/contratos/{id:[0-9]+}", contractHandler.Get).Methods("GET")
	protected.HandleFunc("/contratos/{id:[0-9]+}", contractHandler.Update).Methods("PUT")
	protected.HandleFunc("/contratos/{id:[0-9]+}", contractHandler.Delete).Methods("DELETE")

	signatureHandler := NewSignatureHandler(deps.SignatureSvc)
	protected.HandleFunc("/contratos/{id:[0-9]+}/assinatura", signatureHandler.Get).Methods("GET")
	protected.HandleFunc("/contratos/{id:[0-9]+}/assinatura/solicitar", signatureHandler.Request).Methods("POST")
	protected.HandleFunc("/contratos/{id:[0-9]+}/assinatura/assinar", signatureHandler.Sign).Methods("POST")
	protected.HandleFunc("/contratos/{id:[0-9]+}/assinatura/rejeitar", signatureHandler.Reject).Methods("POST")

	devolutionHandler := NewDevolutionHandler(deps.DevolutionSvc)
	protected.HandleFunc("/devolucoes", devolutionHandler.List).Methods("GET")
	protected.HandleFunc("/devolucoes", devolutionHandler.Create).Methods("POST")
	protected.HandleFunc("/devolucoes/estatisticas", devolutionHandler.Statistics).Methods("GET")
	protected.HandleFunc("/devolucoes/{id:[0-9]+}", devolutionHandler.Get).Methods("GET")
	protected.HandleFunc("/devolucoes/{id:[0-9]+}", devolutionHandler.Update).Methods("PUT")
	protected.HandleFunc("/devolucoes/{id:[0-9]+}", devolutionHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/devolucoes/{id:[0-9]+}/processar", devolutionHandler.Process).Methods("POST")
	protected.HandleFunc("/devolucoes/{id:[0-9]+}/multa", devolutionHandler.Penalize).Methods("POST")

	return router
}

package http

import (
	"rental-backend/internal/handlers"
	"rental-backend/internal/middleware"

	"github.com/gorilla/mux"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	propertyHandler *handlers.PropertyHandler,
	unitHandler *handlers.UnitHandler,
	clientHandler *handlers.ClientHandler,
	contractHandler *handlers.ContractHandler,
	paymentHandler *handlers.PaymentHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	vaultHandler *handlers.VaultHandler,
	customerHandler *handlers.CustomerHandler,
	supplierHandler *handlers.SupplierHandler,
	exchangeHandler *handlers.ExchangeHandler,
	importHandler *handlers.ImportHandler,
	exportHandler *handlers.ExportHandler,
	preferenceHandler *handlers.PreferenceHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Everything under /api requires a valid token
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/me", authHandler.Me).Methods("GET")

	api.HandleFunc("/properties", propertyHandler.ListProperties).Methods("GET")
	api.HandleFunc("/properties", propertyHandler.CreateProperty).Methods("POST")
	api.HandleFunc("/properties/{id}", propertyHandler.GetProperty).Methods("GET")
	api.HandleFunc("/properties/{id}", propertyHandler.UpdateProperty).Methods("PUT")
	api.HandleFunc("/properties/{id}", propertyHandler.DeleteProperty).Methods("DELETE")
	api.HandleFunc("/properties/{id}/occupancy", propertyHandler.PropertyOccupancy).Methods("GET")

	api.HandleFunc("/units", unitHandler.ListUnits).Methods("GET")
	api.HandleFunc("/units", unitHandler.CreateUnit).Methods("POST")
	api.HandleFunc("/units/{id}", unitHandler.GetUnit).Methods("GET")
	api.HandleFunc("/units/{id}", unitHandler.UpdateUnit).Methods("PUT")
	api.HandleFunc("/units/{id}", unitHandler.DeleteUnit).Methods("DELETE")
	api.HandleFunc("/units/{id}/occupancy", unitHandler.UnitOccupancy).Methods("GET")

	api.HandleFunc("/clients", clientHandler.ListClients).Methods("GET")
	api.HandleFunc("/clients", clientHandler.CreateClient).Methods("POST")
	api.HandleFunc("/clients/{id}", clientHandler.GetClient).Methods("GET")
	api.HandleFunc("/clients/{id}", clientHandler.UpdateClient).Methods("PUT")
	api.HandleFunc("/clients/{id}", clientHandler.DeleteClient).Methods("DELETE")

	api.HandleFunc("/contracts", contractHandler.ListContracts).Methods("GET")
	api.HandleFunc("/contracts", contractHandler.CreateContract).Methods("POST")
	api.HandleFunc("/contracts/{id}", contractHandler.GetContract).Methods("GET")
	api.HandleFunc("/contracts/{id}", contractHandler.UpdateContract).Methods("PUT")
	api.HandleFunc("/contracts/{id}", contractHandler.DeleteContract).Methods("DELETE")
	api.HandleFunc("/contracts/{id}/terminate", contractHandler.Terminate).Methods("POST")
	api.HandleFunc("/contracts/{id}/schedule", contractHandler.Schedule).Methods("GET")
	api.HandleFunc("/contracts/{id}/statement.pdf", exportHandler.Statement).Methods("GET")

	api.HandleFunc("/payments", paymentHandler.ListPayments).Methods("GET")
	api.HandleFunc("/payments", paymentHandler.CreatePayment).Methods("POST")
	api.HandleFunc("/payments/{id}", paymentHandler.GetPayment).Methods("GET")
	api.HandleFunc("/payments/{id}", paymentHandler.UpdatePayment).Methods("PUT")
	api.HandleFunc("/payments/{id}", paymentHandler.DeletePayment).Methods("DELETE")
	api.HandleFunc("/payments/{id}/confirm", paymentHandler.Confirm).Methods("POST")

	api.HandleFunc("/maintenance", maintenanceHandler.ListRequests).Methods("GET")
	api.HandleFunc("/maintenance", maintenanceHandler.CreateRequest).Methods("POST")
	api.HandleFunc("/maintenance/{id}", maintenanceHandler.GetRequest).Methods("GET")
	api.HandleFunc("/maintenance/{id}", maintenanceHandler.UpdateRequest).Methods("PUT")
	api.HandleFunc("/maintenance/{id}", maintenanceHandler.DeleteRequest).Methods("DELETE")

	api.HandleFunc("/vaults", vaultHandler.ListVaults).Methods("GET")
	api.HandleFunc("/vaults", vaultHandler.CreateVault).Methods("POST")
	api.HandleFunc("/vaults/{id}", vaultHandler.GetVault).Methods("GET")
	api.HandleFunc("/vaults/{id}", vaultHandler.UpdateVault).Methods("PUT")
	api.HandleFunc("/vaults/{id}", vaultHandler.DeleteVault).Methods("DELETE")

	api.HandleFunc("/customers", customerHandler.ListCustomers).Methods("GET")
	api.HandleFunc("/customers", customerHandler.CreateCustomer).Methods("POST")
	api.HandleFunc("/customers/{id}", customerHandler.GetCustomer).Methods("GET")
	api.HandleFunc("/customers/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	api.HandleFunc("/customers/{id}", customerHandler.DeleteCustomer).Methods("DELETE")

	api.HandleFunc("/suppliers", supplierHandler.ListSuppliers).Methods("GET")
	api.HandleFunc("/suppliers", supplierHandler.CreateSupplier).Methods("POST")
	api.HandleFunc("/suppliers/{id}", supplierHandler.GetSupplier).Methods("GET")
	api.HandleFunc("/suppliers/{id}", supplierHandler.UpdateSupplier).Methods("PUT")
	api.HandleFunc("/suppliers/{id}", supplierHandler.DeleteSupplier).Methods("DELETE")

	api.HandleFunc("/exchange", exchangeHandler.ListTransactions).Methods("GET")
	api.HandleFunc("/exchange", exchangeHandler.RecordExchange).Methods("POST")
	api.HandleFunc("/exchange/{id}", exchangeHandler.GetTransaction).Methods("GET")
	api.HandleFunc("/exchange/{id}", exchangeHandler.DeleteTransaction).Methods("DELETE")

	api.HandleFunc("/import/classify", importHandler.Classify).Methods("POST")
	api.HandleFunc("/export/dataset.xlsx", exportHandler.DatasetExcel).Methods("GET")
	api.HandleFunc("/export/dataset.json", exportHandler.DatasetJSON).Methods("GET")

	api.HandleFunc("/preferences", preferenceHandler.GetPreferences).Methods("GET")
	api.HandleFunc("/preferences", preferenceHandler.UpdatePreferences).Methods("PUT")

	return r
}

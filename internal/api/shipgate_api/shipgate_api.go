package shipgate_api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cafeatonce/shipgate/internal/models"
	"github.com/cafeatonce/shipgate/internal/services/shipments"
	"github.com/go-chi/chi/v5"
)

const serviceVersion = "1.0.0"

type ShipgateAPI struct {
	svc *shipments.Service
}

func New(svc *shipments.Service) *ShipgateAPI {
	return &ShipgateAPI{svc: svc}
}

func (a *ShipgateAPI) Routes(r chi.Router) {
	r.Get("/", a.root)
	r.Get("/api/health", a.health)

	r.Get("/api/shiprocket/tracking/order/{order_id}", a.trackByOrderID)
	r.Get("/api/shiprocket/tracking/{awb_code}", a.trackByAWB)
	r.Post("/api/shiprocket/shipment/create", a.createShipment)
	r.Get("/api/shiprocket/couriers", a.serviceability)
	r.Get("/api/shiprocket/orders", a.listOrders)
	r.Post("/api/shiprocket/awb/generate", a.generateAWB)
}

func (a *ShipgateAPI) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "shiprocket-integration",
		"version": serviceVersion,
	})
}

func (a *ShipgateAPI) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *ShipgateAPI) trackByAWB(w http.ResponseWriter, r *http.Request) {
	awbCode := chi.URLParam(r, "awb_code")
	writeJSON(w, http.StatusOK, a.svc.TrackByAWB(r.Context(), awbCode))
}

func (a *ShipgateAPI) trackByOrderID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	writeJSON(w, http.StatusOK, a.svc.TrackByOrderID(r.Context(), orderID))
}

func (a *ShipgateAPI) createShipment(w http.ResponseWriter, r *http.Request) {
	var in models.ShipmentCreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ShipmentCreateResult{
			Success: false,
			Error:   "invalid request body: " + err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, a.svc.CreateShipment(r.Context(), in))
}

func (a *ShipgateAPI) serviceability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	weight, _ := strconv.ParseFloat(q.Get("weight"), 64)
	cod, _ := strconv.Atoi(q.Get("cod"))

	res := a.svc.CheckServiceability(r.Context(),
		q.Get("pickup_pincode"), q.Get("delivery_pincode"), weight, cod)
	writeJSON(w, http.StatusOK, res)
}

func (a *ShipgateAPI) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	writeJSON(w, http.StatusOK, a.svc.ListOrders(r.Context(), page, perPage))
}

type generateAWBRequest struct {
	ShipmentID int64 `json:"shipment_id"`
	CourierID  int64 `json:"courier_id"`
}

func (a *ShipgateAPI) generateAWB(w http.ResponseWriter, r *http.Request) {
	var req generateAWBRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AWBResult{
			Success: false,
			Error:   "invalid request body: " + err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, a.svc.GenerateAWB(r.Context(), req.ShipmentID, req.CourierID))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// CORS открыт настежь, как во фронтовой интеграции.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

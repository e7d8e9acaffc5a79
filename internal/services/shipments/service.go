package shipments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cafeatonce/shipgate/internal/cache"
	"github.com/cafeatonce/shipgate/internal/integrations/shiprocket"
	"github.com/cafeatonce/shipgate/internal/models"
	"github.com/pkg/errors"
)

const defaultOrderStatus = "PENDING"

type ProviderClient interface {
	TrackAWB(ctx context.Context, awbCode string) (shiprocket.TrackAWBPayload, error)
	TrackOrder(ctx context.Context, orderID string) (*shiprocket.OrderTrackPayload, error)
	CreateOrder(ctx context.Context, payload shiprocket.OrderCreatePayload) (shiprocket.OrderCreateAck, error)
	Serviceability(ctx context.Context, q shiprocket.ServiceabilityQuery) (shiprocket.ServiceabilityPayload, error)
	ListOrders(ctx context.Context, page, perPage int) (shiprocket.OrderListPayload, error)
	AssignAWB(ctx context.Context, shipmentID, courierID int64) (shiprocket.AssignAWBPayload, error)
}

type Service struct {
	client     ProviderClient
	cache      cache.BytesCache
	currentTTL time.Duration
	now        func() time.Time
}

func New(client ProviderClient, c cache.BytesCache, currentTTL time.Duration) *Service {
	return &Service{
		client:     client,
		cache:      c,
		currentTTL: currentTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// TrackByAWB никогда не возвращает ошибку наружу: любой сбой деградирует
// либо в error-результат (non-2xx кроме 401/403), либо в синтетические
// demo-данные. Demo-деградация применяется ТОЛЬКО здесь, остальные
// операции отдают success=false.
func (s *Service) TrackByAWB(ctx context.Context, awbCode string) models.TrackingResult {
	// best effort: кэш не обязан быть
	if s.cache != nil && s.currentTTL > 0 {
		if b, ok, err := s.cache.Get(ctx, awbKey(awbCode)); err == nil && ok {
			var res models.TrackingResult
			if json.Unmarshal(b, &res) == nil {
				return res
			}
		}
	}

	payload, err := s.client.TrackAWB(ctx, awbCode)
	if err != nil {
		var se *shiprocket.StatusError
		if errors.As(err, &se) {
			if se.Code == http.StatusUnauthorized || se.Code == http.StatusForbidden {
				return s.demoTracking(awbCode)
			}
			return models.TrackingResult{
				Success:     false,
				AWBCode:     awbCode,
				Error:       fmt.Sprintf("Shiprocket API error: %d", se.Code),
				Message:     "Failed to fetch tracking information",
				Checkpoints: []models.Checkpoint{},
			}
		}
		return s.demoTracking(awbCode)
	}

	res := shiprocket.NormalizeTrackAWB(awbCode, payload)

	if s.cache != nil && s.currentTTL > 0 {
		b, _ := json.Marshal(res)
		_ = s.cache.Set(ctx, awbKey(awbCode), b, s.currentTTL)
	}
	return res
}

func (s *Service) TrackByOrderID(ctx context.Context, orderID string) models.TrackingResult {
	info, err := s.client.TrackOrder(ctx, orderID)
	if err != nil {
		return models.TrackingResult{
			Success:     false,
			OrderID:     orderID,
			Error:       err.Error(),
			Message:     "Failed to fetch tracking",
			Checkpoints: []models.Checkpoint{},
		}
	}

	if info == nil {
		return models.TrackingResult{
			Success:     false,
			OrderID:     orderID,
			Message:     "No tracking data found for this order",
			Checkpoints: []models.Checkpoint{},
		}
	}

	// один прыжок на детальный трекинг, без цикла
	if info.AWBCode != "" {
		return s.TrackByAWB(ctx, info.AWBCode)
	}

	status := info.CurrentStatus
	if status == "" {
		status = defaultOrderStatus
	}
	return models.TrackingResult{
		Success:       true,
		OrderID:       orderID,
		CurrentStatus: status,
		Message:       "Basic tracking info available",
		Checkpoints:   []models.Checkpoint{},
	}
}

func (s *Service) CreateShipment(ctx context.Context, in models.ShipmentCreateInput) models.ShipmentCreateResult {
	payload := shiprocket.BuildOrderPayload(in)

	ack, err := s.client.CreateOrder(ctx, payload)
	if err != nil {
		var se *shiprocket.StatusError
		if errors.As(err, &se) {
			return models.ShipmentCreateResult{
				Success: false,
				Error:   fmt.Sprintf("Shiprocket API error: %s", se.Detail()),
				Message: "Failed to create shipment",
			}
		}
		return models.ShipmentCreateResult{
			Success: false,
			Error:   err.Error(),
			Message: "An error occurred",
		}
	}

	return shiprocket.NormalizeOrderCreateAck(ack)
}

func (s *Service) CheckServiceability(ctx context.Context, pickupPincode, deliveryPincode string, weight float64, cod int) models.ServiceabilityResult {
	if weight <= 0 {
		weight = shiprocket.DefaultWeight
	}

	payload, err := s.client.Serviceability(ctx, shiprocket.ServiceabilityQuery{
		PickupPincode:   pickupPincode,
		DeliveryPincode: deliveryPincode,
		Weight:          weight,
		COD:             cod,
	})
	if err != nil {
		return models.ServiceabilityResult{
			Success:     false,
			Serviceable: false,
			Couriers:    []models.CourierOption{},
			Error:       err.Error(),
		}
	}
	return shiprocket.NormalizeServiceability(payload)
}

func (s *Service) ListOrders(ctx context.Context, page, perPage int) models.OrderListResult {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}

	payload, err := s.client.ListOrders(ctx, page, perPage)
	if err != nil {
		return models.OrderListResult{
			Success: false,
			Orders:  json.RawMessage("[]"),
			Error:   err.Error(),
		}
	}

	orders := payload.Data
	if len(orders) == 0 {
		orders = json.RawMessage("[]")
	}
	return models.OrderListResult{
		Success: true,
		Orders:  orders,
		Meta:    payload.Meta,
	}
}

func (s *Service) GenerateAWB(ctx context.Context, shipmentID, courierID int64) models.AWBResult {
	payload, err := s.client.AssignAWB(ctx, shipmentID, courierID)
	if err != nil {
		return models.AWBResult{
			Success: false,
			Error:   err.Error(),
			Message: "Failed to generate AWB",
		}
	}
	return shiprocket.NormalizeAssignAWB(payload)
}

func awbKey(awbCode string) string {
	return fmt.Sprintf("tracking:awb:%s:current", awbCode)
}

package shipments

import (
	"time"

	"github.com/cafeatonce/shipgate/internal/integrations/shiprocket"
	"github.com/cafeatonce/shipgate/internal/models"
)

const (
	// DemoMessage — единственный маркер синтетических данных; вызывающая
	// сторона не должна его отбрасывать.
	DemoMessage = "Demo tracking data (Shiprocket credentials need to be updated)"

	demoCourier        = "Delhivery Express"
	demoShipmentStatus = 17 // OUT_FOR_DELIVERY
)

// demoTracking синтезирует правдоподобную историю из пяти чекпоинтов,
// от свежего к старому.
func (s *Service) demoTracking(awbCode string) models.TrackingResult {
	now := s.now()

	checkpoints := []models.Checkpoint{
		{
			Date:     now.Add(-2 * time.Hour).Format(time.RFC3339),
			Activity: "Shipment Out for Delivery",
			Location: "Mumbai Hub",
			Status:   "OUT_FOR_DELIVERY",
		},
		{
			Date:     now.Add(-8 * time.Hour).Format(time.RFC3339),
			Activity: "Arrived at Destination Hub",
			Location: "Mumbai Hub",
			Status:   "REACHED_DEST_HUB",
		},
		{
			Date:     now.Add(-24 * time.Hour).Format(time.RFC3339),
			Activity: "In Transit - Moving to Destination",
			Location: "Pune Sorting Center",
			Status:   "IN_TRANSIT",
		},
		{
			Date:     now.Add(-36 * time.Hour).Format(time.RFC3339),
			Activity: "Shipment Picked Up",
			Location: "Warehouse - Pune",
			Status:   "PICKED",
		},
		{
			Date:     now.Add(-48 * time.Hour).Format(time.RFC3339),
			Activity: "Order Confirmed - Ready for Pickup",
			Location: "Cafe at Once Warehouse",
			Status:   "MANIFESTED",
		},
	}

	suffix := awbCode
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}

	code := demoShipmentStatus
	st := shiprocket.MapStatus(code)
	edd := now.Add(4 * time.Hour).Format("2006-01-02")
	pickup := now.Add(-36 * time.Hour).Format("2006-01-02 15:04")

	return models.TrackingResult{
		Success:                  true,
		OrderID:                  "CAO" + suffix,
		AWBCode:                  awbCode,
		CourierName:              demoCourier,
		CurrentStatus:            st.Status,
		CurrentStatusDescription: st.Description,
		ShipmentStatus:           &code,
		EstimatedDelivery:        &edd,
		PickupDate:               &pickup,
		Origin:                   "Pune, Maharashtra",
		Destination:              "Mumbai, Maharashtra",
		Checkpoints:              checkpoints,
		TrackingURL:              shiprocket.TrackingURL(awbCode),
		Message:                  DemoMessage,
	}
}

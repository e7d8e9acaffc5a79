package shiprocket

import (
	"strings"

	"github.com/cafeatonce/shipgate/internal/models"
)

// Дефолты, которые раньше были размазаны по динамическому JSON.
const (
	DefaultPickupLocation = "Primary"
	DefaultCountry        = "India"
	DefaultPaymentMethod  = "prepaid"
	DefaultWeight         = 0.5
	DefaultDimension      = 10

	defaultItemName  = "Coffee Product"
	defaultItemSKU   = "SKU001"
	defaultItemUnits = 1

	maxServiceableCouriers = 5

	trackingURLPrefix = "https://www.shiprocket.in/shipment-tracking/?awb="
)

func TrackingURL(awbCode string) string {
	return trackingURLPrefix + awbCode
}

// NormalizeTrackAWB перекладывает сырой ответ трекинга в стабильную форму.
// Тотальная: пустой payload даёт success=true с пустыми полями, не панику.
func NormalizeTrackAWB(awbCode string, p TrackAWBPayload) models.TrackingResult {
	td := p.TrackingData

	checkpoints := make([]models.Checkpoint, 0, len(td.ShipmentTrackActivities))
	for _, a := range td.ShipmentTrackActivities {
		checkpoints = append(checkpoints, models.Checkpoint{
			Date:     a.Date,
			Activity: a.Activity,
			Location: a.Location,
			Status:   a.SRStatusLabel,
		})
	}

	code := td.ShipmentStatus
	st := MapStatus(code)

	res := models.TrackingResult{
		Success:                  true,
		AWBCode:                  awbCode,
		CurrentStatus:            st.Status,
		CurrentStatusDescription: st.Description,
		ShipmentStatus:           &code,
		Checkpoints:              checkpoints,
		TrackingURL:              TrackingURL(awbCode),
		Message:                  "Tracking information retrieved successfully",
	}

	// Первый элемент shipment_track — авторитетный источник по курьеру и датам.
	if len(td.ShipmentTrack) > 0 {
		t := td.ShipmentTrack[0]
		res.OrderID = t.OrderID.String()
		res.CourierName = t.CourierName
		res.DeliveredDate = t.DeliveredDate
		res.EstimatedDelivery = t.EDD
		res.PickupDate = t.PickupDate
		res.Origin = t.Origin
		res.Destination = t.Destination
	}

	return res
}

// NormalizeServiceability обрезает список до первых 5 курьеров в порядке
// апстрима; serviceable считается по необрезанному списку.
func NormalizeServiceability(p ServiceabilityPayload) models.ServiceabilityResult {
	companies := p.Data.AvailableCourierCompanies

	out := make([]models.CourierOption, 0, maxServiceableCouriers)
	for i, c := range companies {
		if i == maxServiceableCouriers {
			break
		}
		out = append(out, models.CourierOption{
			ID:            c.CourierCompanyID,
			Name:          c.CourierName,
			Rate:          c.Rate,
			EstimatedDays: c.EstimatedDeliveryDays,
			CODAvailable:  c.COD == 1,
			MinWeight:     c.MinWeight,
			Rating:        c.Rating,
		})
	}

	return models.ServiceabilityResult{
		Success:     true,
		Serviceable: len(companies) > 0,
		Couriers:    out,
	}
}

// BuildOrderPayload собирает adhoc-заказ: billing зеркалит customer,
// shipping_is_billing всегда true, метод оплаты капсом.
func BuildOrderPayload(in models.ShipmentCreateInput) OrderCreatePayload {
	items := make([]OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		name := it.Name
		if name == "" {
			name = defaultItemName
		}
		sku := it.SKU
		if sku == "" {
			sku = it.ID
		}
		if sku == "" {
			sku = defaultItemSKU
		}
		units := it.Quantity
		if units <= 0 {
			units = defaultItemUnits
		}
		items = append(items, OrderItem{
			Name:         name,
			SKU:          sku,
			Units:        units,
			SellingPrice: it.Price,
		})
	}

	pickup := in.PickupLocation
	if pickup == "" {
		pickup = DefaultPickupLocation
	}
	country := in.CustomerCountry
	if country == "" {
		country = DefaultCountry
	}
	payment := in.PaymentMethod
	if payment == "" {
		payment = DefaultPaymentMethod
	}
	weight := in.Weight
	if weight <= 0 {
		weight = DefaultWeight
	}
	length := in.Length
	if length <= 0 {
		length = DefaultDimension
	}
	breadth := in.Breadth
	if breadth <= 0 {
		breadth = DefaultDimension
	}
	height := in.Height
	if height <= 0 {
		height = DefaultDimension
	}

	return OrderCreatePayload{
		OrderID:             in.OrderID,
		OrderDate:           in.OrderDate,
		PickupLocation:      pickup,
		ChannelID:           in.ChannelID,
		BillingCustomerName: in.CustomerName,
		BillingAddress:      in.CustomerAddress,
		BillingCity:         in.CustomerCity,
		BillingPincode:      in.CustomerPincode,
		BillingState:        in.CustomerState,
		BillingCountry:      country,
		BillingEmail:        in.CustomerEmail,
		BillingPhone:        in.CustomerPhone,
		ShippingIsBilling:   true,
		OrderItems:          items,
		PaymentMethod:       strings.ToUpper(payment),
		SubTotal:            in.SubTotal,
		Length:              length,
		Breadth:             breadth,
		Height:              height,
		Weight:              weight,
	}
}

func NormalizeOrderCreateAck(ack OrderCreateAck) models.ShipmentCreateResult {
	return models.ShipmentCreateResult{
		Success:     true,
		OrderID:     ack.OrderID,
		ShipmentID:  ack.ShipmentID,
		AWBCode:     ack.AWBCode,
		CourierName: ack.CourierName,
		Message:     "Shipment created successfully",
	}
}

func NormalizeAssignAWB(p AssignAWBPayload) models.AWBResult {
	return models.AWBResult{
		Success:     true,
		AWBCode:     p.Response.Data.AWBCode,
		CourierName: p.Response.Data.CourierName,
		Message:     "AWB generated successfully",
	}
}

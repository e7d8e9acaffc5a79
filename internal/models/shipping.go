package models

import "encoding/json"

// Checkpoint — одно событие в истории перемещения отправления.
// Порядок чекпоинтов такой, как отдал провайдер; мы его не пересортировываем.
type Checkpoint struct {
	Date     string `json:"date"`
	Activity string `json:"activity"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status,omitempty"`
}

type TrackingResult struct {
	Success                  bool         `json:"success"`
	OrderID                  string       `json:"order_id,omitempty"`
	AWBCode                  string       `json:"awb_code,omitempty"`
	CourierName              string       `json:"courier_name,omitempty"`
	CurrentStatus            string       `json:"current_status,omitempty"`
	CurrentStatusDescription string       `json:"current_status_description,omitempty"`
	ShipmentStatus           *int         `json:"shipment_status,omitempty"`
	DeliveredDate            *string      `json:"delivered_date,omitempty"`
	EstimatedDelivery        *string      `json:"estimated_delivery,omitempty"`
	PickupDate               *string      `json:"pickup_date,omitempty"`
	Origin                   string       `json:"origin,omitempty"`
	Destination              string       `json:"destination,omitempty"`
	Checkpoints              []Checkpoint `json:"checkpoints"`
	TrackingURL              string       `json:"tracking_url,omitempty"`
	Message                  string       `json:"message,omitempty"`
	Error                    string       `json:"error,omitempty"`
}

type ShipmentItem struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name,omitempty"`
	SKU      string  `json:"sku,omitempty"`
	Quantity int     `json:"quantity,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

type ShipmentCreateInput struct {
	OrderID         string         `json:"order_id"`
	OrderDate       string         `json:"order_date"`
	PickupLocation  string         `json:"pickup_location,omitempty"`
	ChannelID       *int           `json:"channel_id,omitempty"`
	CustomerName    string         `json:"customer_name"`
	CustomerEmail   string         `json:"customer_email"`
	CustomerPhone   string         `json:"customer_phone"`
	CustomerAddress string         `json:"customer_address"`
	CustomerCity    string         `json:"customer_city"`
	CustomerState   string         `json:"customer_state"`
	CustomerPincode string         `json:"customer_pincode"`
	CustomerCountry string         `json:"customer_country,omitempty"`
	Items           []ShipmentItem `json:"items"`
	PaymentMethod   string         `json:"payment_method,omitempty"`
	SubTotal        float64        `json:"sub_total"`
	Weight          float64        `json:"weight,omitempty"`
	Length          float64        `json:"length,omitempty"`
	Breadth         float64        `json:"breadth,omitempty"`
	Height          float64        `json:"height,omitempty"`
}

type ShipmentCreateResult struct {
	Success     bool   `json:"success"`
	OrderID     int64  `json:"order_id,omitempty"`
	ShipmentID  int64  `json:"shipment_id,omitempty"`
	AWBCode     string `json:"awb_code,omitempty"`
	CourierName string `json:"courier_name,omitempty"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
}

type CourierOption struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Rate          float64 `json:"rate"`
	EstimatedDays string  `json:"estimated_days"`
	CODAvailable  bool    `json:"cod_available"`
	MinWeight     float64 `json:"min_weight"`
	Rating        float64 `json:"rating"`
}

type ServiceabilityResult struct {
	Success     bool            `json:"success"`
	Serviceable bool            `json:"serviceable"`
	Couriers    []CourierOption `json:"couriers"`
	Error       string          `json:"error,omitempty"`
}

// OrderListResult прокидывает data/meta провайдера как есть.
type OrderListResult struct {
	Success bool            `json:"success"`
	Orders  json.RawMessage `json:"orders"`
	Meta    json.RawMessage `json:"meta,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type AWBResult struct {
	Success     bool   `json:"success"`
	AWBCode     string `json:"awb_code,omitempty"`
	CourierName string `json:"courier_name,omitempty"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
}

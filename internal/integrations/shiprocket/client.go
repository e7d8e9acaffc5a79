package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://apiv2.shiprocket.in"

	loginPath          = "/v1/external/auth/login"
	trackAWBPath       = "/v1/external/courier/track/awb/"
	trackOrderPath     = "/v1/external/courier/track"
	createOrderPath    = "/v1/external/orders/create/adhoc"
	serviceabilityPath = "/v1/external/courier/serviceability/"
	listOrdersPath     = "/v1/external/orders"
	assignAWBPath      = "/v1/external/courier/assign/awb"

	requestTimeout = 30 * time.Second
	tokenTTL       = 23 * time.Hour
)

type Client struct {
	baseURL  string
	email    string
	password string
	httpc    *http.Client
	now      func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func New(baseURL, email, password string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:  baseURL,
		email:    email,
		password: password,
		httpc: &http.Client{
			Timeout: requestTimeout,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

type TrackActivity struct {
	Date          string `json:"date"`
	Activity      string `json:"activity"`
	Location      string `json:"location"`
	SRStatusLabel string `json:"sr-status-label"`
}

type ShipmentTrack struct {
	OrderID       json.Number `json:"order_id"`
	CourierName   string      `json:"courier_name"`
	DeliveredDate *string     `json:"delivered_date"`
	EDD           *string     `json:"edd"`
	PickupDate    *string     `json:"pickup_date"`
	Origin        string      `json:"origin"`
	Destination   string      `json:"destination"`
}

type TrackingData struct {
	ShipmentStatus          int             `json:"shipment_status"`
	ShipmentTrack           []ShipmentTrack `json:"shipment_track"`
	ShipmentTrackActivities []TrackActivity `json:"shipment_track_activities"`
}

type TrackAWBPayload struct {
	TrackingData TrackingData `json:"tracking_data"`
}

type OrderTrackPayload struct {
	AWBCode       string `json:"awb_code"`
	CurrentStatus string `json:"current_status"`
}

type OrderItem struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
	Discount     float64 `json:"discount"`
	Tax          float64 `json:"tax"`
	HSN          string  `json:"hsn"`
}

type OrderCreatePayload struct {
	OrderID             string      `json:"order_id"`
	OrderDate           string      `json:"order_date"`
	PickupLocation      string      `json:"pickup_location"`
	ChannelID           *int        `json:"channel_id,omitempty"`
	BillingCustomerName string      `json:"billing_customer_name"`
	BillingLastName     string      `json:"billing_last_name"`
	BillingAddress      string      `json:"billing_address"`
	BillingAddress2     string      `json:"billing_address_2"`
	BillingCity         string      `json:"billing_city"`
	BillingPincode      string      `json:"billing_pincode"`
	BillingState        string      `json:"billing_state"`
	BillingCountry      string      `json:"billing_country"`
	BillingEmail        string      `json:"billing_email"`
	BillingPhone        string      `json:"billing_phone"`
	ShippingIsBilling   bool        `json:"shipping_is_billing"`
	OrderItems          []OrderItem `json:"order_items"`
	PaymentMethod       string      `json:"payment_method"`
	SubTotal            float64     `json:"sub_total"`
	Length              float64     `json:"length"`
	Breadth             float64     `json:"breadth"`
	Height              float64     `json:"height"`
	Weight              float64     `json:"weight"`
}

type OrderCreateAck struct {
	OrderID     int64  `json:"order_id"`
	ShipmentID  int64  `json:"shipment_id"`
	AWBCode     string `json:"awb_code"`
	CourierName string `json:"courier_name"`
}

type CourierCompany struct {
	CourierCompanyID      int64   `json:"courier_company_id"`
	CourierName           string  `json:"courier_name"`
	Rate                  float64 `json:"rate"`
	EstimatedDeliveryDays string  `json:"estimated_delivery_days"`
	COD                   int     `json:"cod"`
	MinWeight             float64 `json:"min_weight"`
	Rating                float64 `json:"rating"`
}

type ServiceabilityPayload struct {
	Data struct {
		AvailableCourierCompanies []CourierCompany `json:"available_courier_companies"`
	} `json:"data"`
}

type ServiceabilityQuery struct {
	PickupPincode   string
	DeliveryPincode string
	Weight          float64
	COD             int
}

type OrderListPayload struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta"`
}

type AssignAWBPayload struct {
	Response struct {
		Data struct {
			AWBCode     string `json:"awb_code"`
			CourierName string `json:"courier_name"`
		} `json:"data"`
	} `json:"response"`
}

func (c *Client) TrackAWB(ctx context.Context, awbCode string) (TrackAWBPayload, error) {
	var out TrackAWBPayload
	err := c.getJSON(ctx, trackAWBPath+url.PathEscape(awbCode), nil, &out)
	return out, err
}

// TrackOrder возвращает nil без ошибки, когда апстрим ничего не нашёл
// (пустой список/объект/null).
func (c *Client) TrackOrder(ctx context.Context, orderID string) (*OrderTrackPayload, error) {
	q := url.Values{}
	q.Set("order_id", orderID)

	var raw json.RawMessage
	if err := c.getJSON(ctx, trackOrderPath, q, &raw); err != nil {
		return nil, err
	}

	// Апстрим отдаёт то список, то объект.
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) ||
		bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("{}")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var list []OrderTrackPayload
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, errors.Wrap(err, "decode")
		}
		if len(list) == 0 {
			return nil, nil
		}
		return &list[0], nil
	}

	var single OrderTrackPayload
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	return &single, nil
}

func (c *Client) CreateOrder(ctx context.Context, payload OrderCreatePayload) (OrderCreateAck, error) {
	var out OrderCreateAck
	err := c.postJSON(ctx, createOrderPath, payload, &out)
	return out, err
}

func (c *Client) Serviceability(ctx context.Context, sq ServiceabilityQuery) (ServiceabilityPayload, error) {
	q := url.Values{}
	q.Set("pickup_postcode", sq.PickupPincode)
	q.Set("delivery_postcode", sq.DeliveryPincode)
	q.Set("weight", strconv.FormatFloat(sq.Weight, 'f', -1, 64))
	q.Set("cod", strconv.Itoa(sq.COD))

	var out ServiceabilityPayload
	err := c.getJSON(ctx, serviceabilityPath, q, &out)
	return out, err
}

func (c *Client) ListOrders(ctx context.Context, page, perPage int) (OrderListPayload, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var out OrderListPayload
	err := c.getJSON(ctx, listOrdersPath, q, &out)
	return out, err
}

func (c *Client) AssignAWB(ctx context.Context, shipmentID, courierID int64) (AssignAWBPayload, error) {
	body := map[string]int64{
		"shipment_id": shipmentID,
		"courier_id":  courierID,
	}
	var out AssignAWBPayload
	err := c.postJSON(ctx, assignAWBPath, body, &out)
	return out, err
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "parse base url")
	}
	u.Path = path
	if q != nil {
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	return c.doJSON(ctx, req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "marshal body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(ctx, req, out)
}

func (c *Client) doJSON(ctx context.Context, req *http.Request, out any) error {
	tok, err := c.Token(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &StatusError{Code: resp.StatusCode, Body: body}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode")
	}
	return nil
}

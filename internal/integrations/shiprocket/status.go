package shiprocket

import "fmt"

const StatusUnknown = "UNKNOWN"

type StatusInfo struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

// Коды статусов Shiprocket.
var statusTable = map[int]StatusInfo{
	1:  {Status: "AWB_ASSIGNED", Description: "AWB Assigned"},
	2:  {Status: "LABEL_GENERATED", Description: "Label Generated"},
	3:  {Status: "PICKUP_SCHEDULED", Description: "Pickup Scheduled"},
	4:  {Status: "PICKUP_QUEUED", Description: "Pickup Queued"},
	5:  {Status: "MANIFESTED", Description: "Manifested"},
	6:  {Status: "SHIPPED", Description: "Shipped - In Transit"},
	7:  {Status: "DELIVERED", Description: "Delivered"},
	8:  {Status: "CANCELLED", Description: "Cancelled"},
	9:  {Status: "RTO_INITIATED", Description: "RTO Initiated"},
	10: {Status: "RTO_DELIVERED", Description: "RTO Delivered"},
	11: {Status: "PENDING", Description: "Pending"},
	12: {Status: "LOST", Description: "Lost"},
	13: {Status: "PICKUP_ERROR", Description: "Pickup Error"},
	14: {Status: "RTO_ACKNOWLEDGED", Description: "RTO Acknowledged"},
	15: {Status: "OUT_FOR_PICKUP", Description: "Out For Pickup"},
	16: {Status: "PICKED", Description: "Picked Up"},
	17: {Status: "OUT_FOR_DELIVERY", Description: "Out For Delivery"},
	18: {Status: "IN_TRANSIT", Description: "In Transit"},
	19: {Status: "REACHED_DEST_HUB", Description: "Reached Destination Hub"},
	20: {Status: "UNDELIVERED", Description: "Undelivered - Delivery Attempt Failed"},
}

// MapStatus — незнакомый код не ошибка: отдаём UNKNOWN с кодом в описании.
func MapStatus(code int) StatusInfo {
	if s, ok := statusTable[code]; ok {
		return s
	}
	return StatusInfo{Status: StatusUnknown, Description: fmt.Sprintf("Status Code: %d", code)}
}

package domain

import "time"

const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superAdmin"
	RoleShipper    = "shipper"
)

// CanViewRevenue reports whether role may read revenue reports.
func CanViewRevenue(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

const OrderStatusCompleted = "completed"

type Order struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	Timestamp   time.Time   `json:"timestamp"`
	Items       []OrderItem `json:"items"`
}

type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// RevenueReportRequest selects a calendar month, or a single day of it
// when Day is non-zero.
type RevenueReportRequest struct {
	Year  int `json:"year" validate:"required,min=1,max=9999"`
	Month int `json:"month" validate:"required,min=1,max=12"`
	Day   int `json:"day" validate:"min=0,max=31"`
}

type TransactionDetail struct {
	ID           string  `json:"id"`
	ItemsSummary string  `json:"itemsSummary"`
	TotalAmount  float64 `json:"totalAmount"`
	Timestamp    string  `json:"timestamp"`
}

type RevenueReport struct {
	TotalRevenue       float64             `json:"totalRevenue"`
	TransactionDetails []TransactionDetail `json:"transactionDetails"`
	// DailyRevenueMap is keyed by day of month.
	DailyRevenueMap map[int]float64 `json:"dailyRevenueMap"`
}

type SendMessageInput struct {
	ChatID      string `json:"chatId" validate:"required"`
	Message     string `json:"message" validate:"required"`
	CustomerID  string `json:"customerId" validate:"required"`
	ShipperID   string `json:"shipperId" validate:"required"`
	CustomerUID string `json:"customerUID" validate:"required"`
	ShipperUID  string `json:"shipperUID" validate:"required"`
}

const (
	DefaultCustomerName = "Customer"
	DefaultShipperName  = "Shipper"
)

// ChatHeader is merged into the chat document so clients can render the
// participants without reading their user documents.
type ChatHeader struct {
	UserID       string `json:"userId"`
	ShipperID    string `json:"shipperId"`
	CustomerName string `json:"customerName"`
	ShipperName  string `json:"shipperName"`
}

type ChatMessage struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	CustomerUID string    `json:"customerUID"`
	ShipperUID  string    `json:"shipperUID"`
}

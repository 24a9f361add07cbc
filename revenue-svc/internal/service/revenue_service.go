package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/logging"
	"fooddelivery/revenue-svc/internal/domain"
)

var revenueReports = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "revenue_reports_total",
	Help: "Revenue report requests by outcome.",
}, []string{"outcome"})

type RevenueService struct {
	users    UserRepository
	orders   OrderRepository
	location *time.Location
	logger   *zap.Logger
}

func NewRevenueService(users UserRepository, orders OrderRepository, location *time.Location, logger *zap.Logger) *RevenueService {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RevenueService{users: users, orders: orders, location: location, logger: logger}
}

// Report sums completed orders over the requested period. Only admins may
// read it; the period is checked before any store access.
func (s *RevenueService) Report(ctx context.Context, uid string, req domain.RevenueReportRequest) (*domain.RevenueReport, error) {
	start, end, err := ReportPeriod(req, s.location)
	if err != nil {
		revenueReports.WithLabelValues("invalid").Inc()
		return nil, err
	}

	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		revenueReports.WithLabelValues("error").Inc()
		return nil, apperrors.Internal("failed to check permissions", err)
	}
	role := domain.RoleCustomer
	if user != nil && user.Role != "" {
		role = user.Role
	}
	if !domain.CanViewRevenue(role) {
		revenueReports.WithLabelValues("denied").Inc()
		return nil, apperrors.PermissionDenied("revenue reports require an admin role")
	}

	orders, err := s.orders.ListCompletedOrders(ctx, start, end)
	if err != nil {
		revenueReports.WithLabelValues("error").Inc()
		return nil, apperrors.Internal("failed to query orders", err)
	}

	report := BuildReport(orders, s.location)
	revenueReports.WithLabelValues("ok").Inc()
	logging.FromContext(ctx, s.logger).Info("revenue report built",
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int("orders", len(orders)),
		zap.Float64("total", report.TotalRevenue),
	)
	return report, nil
}

// ReportPeriod returns the half-open range [start, end) covering the
// requested day, or the whole month when Day is zero.
func ReportPeriod(req domain.RevenueReportRequest, loc *time.Location) (time.Time, time.Time, error) {
	if req.Year < 1 || req.Year > 9999 {
		return time.Time{}, time.Time{}, apperrors.InvalidArgument("year is required")
	}
	if req.Month < 1 || req.Month > 12 {
		return time.Time{}, time.Time{}, apperrors.InvalidArgument("month must be between 1 and 12")
	}

	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, loc)
	if req.Day == 0 {
		return monthStart, monthStart.AddDate(0, 1, 0), nil
	}

	lastDay := monthStart.AddDate(0, 1, -1).Day()
	if req.Day < 0 || req.Day > lastDay {
		return time.Time{}, time.Time{}, apperrors.InvalidArgument(
			"day must be between 1 and " + strconv.Itoa(lastDay) + " for this month")
	}
	dayStart := time.Date(req.Year, time.Month(req.Month), req.Day, 0, 0, 0, 0, loc)
	return dayStart, dayStart.AddDate(0, 0, 1), nil
}

// BuildReport keeps the order of orders. Amounts are summed in cents.
func BuildReport(orders []domain.Order, loc *time.Location) *domain.RevenueReport {
	var totalCents int64
	dailyCents := make(map[int]int64)
	details := make([]domain.TransactionDetail, 0, len(orders))

	for _, order := range orders {
		cents := toCents(order.TotalAmount)
		totalCents += cents

		ts := order.Timestamp.In(loc)
		dailyCents[ts.Day()] += cents

		details = append(details, domain.TransactionDetail{
			ID:           order.ID,
			ItemsSummary: ItemsSummary(order.Items),
			TotalAmount:  fromCents(cents),
			Timestamp:    order.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	daily := make(map[int]float64, len(dailyCents))
	for day, cents := range dailyCents {
		daily[day] = fromCents(cents)
	}
	return &domain.RevenueReport{
		TotalRevenue:       fromCents(totalCents),
		TransactionDetails: details,
		DailyRevenueMap:    daily,
	}
}

// ItemsSummary renders one "<name> x<quantity>" line per item.
func ItemsSummary(items []domain.OrderItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.Name+" x"+strconv.Itoa(item.Quantity))
	}
	return strings.Join(lines, "\n")
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}

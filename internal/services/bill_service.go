package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "famledger/internal/errors"
	"famledger/internal/models"
	"famledger/internal/pagination"
)

// billAnalyticsMonths is the trailing window the bill analytics view covers.
const billAnalyticsMonths = 6

// billService handles essential bill business logic.
type billService struct {
	db *gorm.DB
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB) BillServicer {
	return &billService{db: db}
}

// CreateBill creates a new essential bill in Pending state.
func (s *billService) CreateBill(
	userID uint,
	title string,
	category models.BillCategory,
	amount int64,
	dueDate time.Time,
	recurrence models.Recurrence,
	billURL, description string,
) (*models.EssentialBill, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bill title is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if dueDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}

	bill := &models.EssentialBill{
		UserID:        userID,
		Title:         title,
		Category:      category,
		Amount:        amount,
		DueDate:       dueDate,
		PaymentStatus: models.PaymentStatusPending,
		Recurrence:    recurrence,
		BillURL:       billURL,
		Description:   description,
	}

	if err := s.db.Create(bill).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bill, nil
}

// GetUserBills retrieves a paginated list of bills, soonest due first,
// optionally filtered by payment status.
func (s *billService) GetUserBills(userID uint, page pagination.PageRequest, status *models.PaymentStatus) (*pagination.PageResponse[models.EssentialBill], error) {
	page.Defaults()

	base := s.db.Model(&models.EssentialBill{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("payment_status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var bills []models.EssentialBill
	if err := base.Order("due_date ASC").Scopes(pagination.Paginate(page)).Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(bills, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBillByID returns a bill by ID if it belongs to the user.
func (s *billService) GetBillByID(userID, billID uint) (*models.EssentialBill, error) {
	var bill models.EssentialBill
	if err := s.db.Where("id = ? AND user_id = ?", billID, userID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// UpdateBill updates an existing bill's fields.
func (s *billService) UpdateBill(
	userID, billID uint,
	title string,
	amount *int64,
	dueDate *time.Time,
	billURL, description *string,
) (*models.EssentialBill, error) {
	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = title
	}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = *amount
	}
	if dueDate != nil {
		updates["due_date"] = *dueDate
	}
	if billURL != nil {
		updates["bill_url"] = *billURL
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(bill).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return bill, nil
}

// DeleteBill soft-deletes a bill.
func (s *billService) DeleteBill(userID, billID uint) error {
	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(bill).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// MarkBillPaid records a payment. Recurring bills roll their due date
// forward one period and return to Pending; one-time bills stay Paid.
func (s *billService) MarkBillPaid(userID, billID uint) (*models.EssentialBill, error) {
	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"last_paid_date": now,
		"payment_status": models.PaymentStatusPaid,
	}

	switch bill.Recurrence {
	case models.RecurrenceMonthly:
		updates["due_date"] = bill.DueDate.AddDate(0, 1, 0)
		updates["payment_status"] = models.PaymentStatusPending
	case models.RecurrenceQuarterly:
		updates["due_date"] = bill.DueDate.AddDate(0, 3, 0)
		updates["payment_status"] = models.PaymentStatusPending
	case models.RecurrenceYearly:
		updates["due_date"] = bill.DueDate.AddDate(1, 0, 0)
		updates["payment_status"] = models.PaymentStatusPending
	case models.RecurrenceOneTime:
		// Due date stays; the bill is settled.
	}

	if err := s.db.Model(bill).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bill, nil
}

// MarkOverdueBills flips every pending bill past its due date to Overdue and
// returns how many were updated.
func (s *billService) MarkOverdueBills(userID uint) (int64, error) {
	today := time.Now().Truncate(24 * time.Hour)

	res := s.db.Model(&models.EssentialBill{}).
		Where("user_id = ? AND payment_status = ? AND due_date < ?", userID, models.PaymentStatusPending, today).
		Update("payment_status", models.PaymentStatusOverdue)
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected, nil
}

// GetUpcomingBills lists unpaid bills due within the given window, soonest first.
func (s *billService) GetUpcomingBills(userID uint, within time.Duration) ([]models.EssentialBill, error) {
	now := time.Now()

	var bills []models.EssentialBill
	err := s.db.Where("user_id = ? AND payment_status <> ? AND due_date BETWEEN ? AND ?",
		userID, models.PaymentStatusPaid, now, now.Add(within)).
		Order("due_date ASC").Find(&bills).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bills, nil
}

// GetBillAnalytics aggregates bill data: a trailing monthly series of paid
// amounts (every month in the window present, zero-filled) plus status counts.
func (s *billService) GetBillAnalytics(userID uint) (*BillAnalytics, error) {
	var bills []models.EssentialBill
	if err := s.db.Where("user_id = ?", userID).Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	analytics := &BillAnalytics{
		MonthlyTotals: TrailingPaidBillSeries(bills, billAnalyticsMonths, time.Now()),
	}
	for _, b := range bills {
		switch b.PaymentStatus {
		case models.PaymentStatusPending:
			analytics.PendingCount++
		case models.PaymentStatusPaid:
			analytics.PaidCount++
		case models.PaymentStatusOverdue:
			analytics.OverdueCount++
		}
	}
	return analytics, nil
}

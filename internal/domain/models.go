package domain

import "time"

// ServiceRequestStatus представляет статус заявки на ремонт
type ServiceRequestStatus string

const (
	StatusPending    ServiceRequestStatus = "PENDING"
	StatusEstimated  ServiceRequestStatus = "ESTIMATED"
	StatusAccepted   ServiceRequestStatus = "ACCEPTED"
	StatusInProgress ServiceRequestStatus = "IN_PROGRESS"
	StatusCompleted  ServiceRequestStatus = "COMPLETED"
	StatusRejected   ServiceRequestStatus = "REJECTED"
)

// Valid проверяет, что статус известен
func (s ServiceRequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusEstimated, StatusAccepted, StatusInProgress, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// TransactionType представляет тип операции в кошельке
type TransactionType string

const (
	TransactionTypeDeposit        TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal     TransactionType = "WITHDRAWAL"
	TransactionTypePayment        TransactionType = "PAYMENT"
	TransactionTypeRefund         TransactionType = "REFUND"
	TransactionTypeServicePayment TransactionType = "SERVICE_PAYMENT"
)

// Sign возвращает знак операции для баланса: +1 для пополнений, -1 для списаний
func (t TransactionType) Sign() int64 {
	switch t {
	case TransactionTypeDeposit, TransactionTypeRefund:
		return 1
	default:
		return -1
	}
}

// Item описывает предмет ремонта
type Item struct {
	Name             string `json:"name"`
	Condition        string `json:"condition"`
	IssueDescription string `json:"issueDescription"`
}

// CouponSnapshot фиксирует купон на момент погашения.
// Скидка хранится в заявке и не зависит от последующих изменений купона.
type CouponSnapshot struct {
	Code          string  `json:"code"`
	DiscountValue float64 `json:"discountValue"`
}

// ServiceRequest представляет заявку клиента на ремонт
type ServiceRequest struct {
	ID                   int64                `json:"id"`
	CustomerID           int64                `json:"customerId"`
	TechnicianID         *int64               `json:"technicianId"`
	Item                 Item                 `json:"item"`
	RequestedServiceDate time.Time            `json:"requestedServiceDate"`
	Status               ServiceRequestStatus `json:"status"`
	CouponCode           *string              `json:"couponCode"`
	Coupon               *CouponSnapshot      `json:"coupon,omitempty"`
	PaymentMethodID      int64                `json:"paymentMethodId"`
	Estimate             *Estimate            `json:"estimate"`
	Report               *Report              `json:"report"`
	FinalCost            *int64               `json:"finalCost"`
	CreatedAt            time.Time            `json:"createdDate"`
	UpdatedAt            time.Time            `json:"updatedDate"`
}

// Estimate представляет оценку техника: цену и срок выполнения
type Estimate struct {
	ID               int64     `json:"id"`
	ServiceRequestID int64     `json:"serviceRequestId"`
	TechnicianID     int64     `json:"technicianId"`
	Cost             int64     `json:"cost"`
	CompletionDate   time.Time `json:"completionDate"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"createdDate"`
}

// Report представляет отчет техника о выполненном ремонте
type Report struct {
	ID                int64     `json:"id"`
	ServiceRequestID  int64     `json:"serviceRequestId"`
	TechnicianID      int64     `json:"technicianId"`
	RepairDetails     string    `json:"repairDetails"`
	ResolutionSummary string    `json:"resolutionSummary"`
	CompletionDate    time.Time `json:"completionDate"`
	CreatedAt         time.Time `json:"createdDate"`
}

// Review представляет отзыв клиента о технике по завершенной заявке.
// На одну заявку допускается один отзыв.
type Review struct {
	ID               int64     `json:"id"`
	ServiceRequestID int64     `json:"serviceRequestId"`
	CustomerID       int64     `json:"customerId"`
	TechnicianID     int64     `json:"technicianId"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment"`
	CreatedAt        time.Time `json:"createdDate"`
	UpdatedAt        time.Time `json:"updatedDate"`
}

// Coupon представляет скидочный купон
type Coupon struct {
	Code          string    `json:"code"`
	DiscountValue float64   `json:"discountValue"`
	MaxUsage      int       `json:"maxUsage"`
	UsageCount    int       `json:"usageCount"`
	ExpiryDate    time.Time `json:"expiryDate"`
	CreatedAt     time.Time `json:"createdDate"`
}

// Wallet представляет кошелек пользователя. Баланс в минимальных единицах валюты.
type Wallet struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"ownerId"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"createdDate"`
}

// Transaction представляет запись журнала кошелька. Записи только добавляются.
type Transaction struct {
	ID          int64           `json:"id"`
	WalletID    int64           `json:"walletId"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
}

// PaymentMethod представляет способ оплаты (справочные данные)
type PaymentMethod struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

// ServiceRequestInput содержит редактируемые клиентом поля заявки
type ServiceRequestInput struct {
	Item                 Item
	RequestedServiceDate time.Time
	PaymentMethodID      int64
	CouponCode           string
}

// EstimateInput содержит поля оценки техника
type EstimateInput struct {
	Cost           int64
	CompletionDate time.Time
	Notes          string
}

// ReportInput содержит поля отчета техника
type ReportInput struct {
	RepairDetails     string
	ResolutionSummary string
	CompletionDate    time.Time
}

// ReviewInput содержит поля отзыва. TechnicianID необязателен:
// техник берется из заявки, а указанный клиентом должен с ним совпадать.
type ReviewInput struct {
	ServiceRequestID int64
	TechnicianID     int64
	Rating           int
	Comment          string
}

// EstimateAction представляет ответ клиента на оценку
type EstimateAction string

const (
	EstimateActionAccept EstimateAction = "ACCEPT"
	EstimateActionReject EstimateAction = "REJECT"
)

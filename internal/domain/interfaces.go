package domain

import (
	"context"
	"time"
)

// ServiceRequestRepository определяет методы для работы с заявками, оценками и отчетами.
// Методы *ForUpdate блокируют сущность до конца транзакции.
type ServiceRequestRepository interface {
	CreateServiceRequest(ctx context.Context, sr *ServiceRequest) error
	GetServiceRequest(ctx context.Context, id int64) (*ServiceRequest, error)
	GetServiceRequestForUpdate(ctx context.Context, id int64) (*ServiceRequest, error)
	UpdateServiceRequest(ctx context.Context, sr *ServiceRequest) error
	DeleteServiceRequest(ctx context.Context, id int64) error
	ListByCustomer(ctx context.Context, customerID int64) ([]*ServiceRequest, error)
	ListForTechnician(ctx context.Context, technicianID int64, status ServiceRequestStatus) ([]*ServiceRequest, error)
	CreateEstimate(ctx context.Context, e *Estimate) error
	CreateReport(ctx context.Context, r *Report) error
	ListReportsByTechnician(ctx context.Context, technicianID int64) ([]*Report, error)
}

// CouponRepository определяет методы для работы с купонами
type CouponRepository interface {
	CreateCoupon(ctx context.Context, c *Coupon) error
	GetCoupon(ctx context.Context, code string) (*Coupon, error)
	GetCouponForUpdate(ctx context.Context, code string) (*Coupon, error)
	UpdateCoupon(ctx context.Context, c *Coupon) error
	DeleteCoupon(ctx context.Context, code string) error
	ListCoupons(ctx context.Context) ([]*Coupon, error)
}

// WalletRepository определяет методы для работы с кошельками и журналом операций
type WalletRepository interface {
	EnsureWallet(ctx context.Context, ownerID int64) (*Wallet, error)
	GetWalletByOwner(ctx context.Context, ownerID int64) (*Wallet, error)
	GetWalletByOwnerForUpdate(ctx context.Context, ownerID int64) (*Wallet, error)
	AppendTransaction(ctx context.Context, w *Wallet, t *Transaction) error
	ListTransactions(ctx context.Context, walletID int64) ([]*Transaction, error)
}

// PaymentMethodRepository определяет методы для работы со способами оплаты
type PaymentMethodRepository interface {
	ListPaymentMethods(ctx context.Context) ([]*PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, id int64) (*PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, p *PaymentMethod) error
	UpdatePaymentMethod(ctx context.Context, p *PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, id int64) error
}

// ReviewRepository определяет методы для работы с отзывами
type ReviewRepository interface {
	CreateReview(ctx context.Context, rv *Review) error
	GetReview(ctx context.Context, id int64) (*Review, error)
	GetReviewForUpdate(ctx context.Context, id int64) (*Review, error)
	UpdateReview(ctx context.Context, rv *Review) error
	DeleteReview(ctx context.Context, id int64) error
	ListReviewsByTechnician(ctx context.Context, technicianID int64) ([]*Review, error)
	ListReviewsByCustomer(ctx context.Context, customerID int64) ([]*Review, error)
}

// Repositories объединяет репозитории, работающие в одной транзакции или вне ее
type Repositories interface {
	ServiceRequests() ServiceRequestRepository
	Coupons() CouponRepository
	Wallets() WalletRepository
	PaymentMethods() PaymentMethodRepository
	Reviews() ReviewRepository
}

// Store - хранилище движка. WithinTx выполняет fn как одну атомарную единицу:
// при ошибке ни одно изменение не становится видимым.
type Store interface {
	Repositories
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
	Ping(ctx context.Context) error
}

// ServiceRequestService определяет операции жизненного цикла заявки
type ServiceRequestService interface {
	Create(ctx context.Context, actor Actor, in ServiceRequestInput) (*ServiceRequest, error)
	Get(ctx context.Context, actor Actor, id int64) (*ServiceRequest, error)
	ListForCustomer(ctx context.Context, actor Actor) ([]*ServiceRequest, error)
	ListForTechnician(ctx context.Context, actor Actor, status ServiceRequestStatus) ([]*ServiceRequest, error)
	Update(ctx context.Context, actor Actor, id int64, in ServiceRequestInput) (*ServiceRequest, error)
	Delete(ctx context.Context, actor Actor, id int64) error
	StartWork(ctx context.Context, actor Actor, id int64) (*ServiceRequest, error)
	Complete(ctx context.Context, actor Actor, id int64, finalPrice int64) (*ServiceRequest, error)
	AdvanceStatus(ctx context.Context, actor Actor, id int64, status ServiceRequestStatus, finalPrice *int64) (*ServiceRequest, error)
}

// EstimateService определяет операции согласования оценки
type EstimateService interface {
	CreateEstimate(ctx context.Context, actor Actor, requestID int64, in EstimateInput) (*Estimate, error)
	RespondToEstimate(ctx context.Context, actor Actor, requestID int64, action EstimateAction, feedback string) (*ServiceRequest, error)
}

// ReportService определяет операции с отчетами о ремонте
type ReportService interface {
	CreateReport(ctx context.Context, actor Actor, requestID int64, in ReportInput) (*Report, error)
	GetReport(ctx context.Context, actor Actor, requestID int64) (*Report, error)
	ListReports(ctx context.Context, actor Actor) ([]*Report, error)
}

// ReviewService определяет операции с отзывами о техниках
type ReviewService interface {
	CreateReview(ctx context.Context, actor Actor, in ReviewInput) (*Review, error)
	GetReview(ctx context.Context, actor Actor, id int64) (*Review, error)
	UpdateReview(ctx context.Context, actor Actor, id int64, in ReviewInput) (*Review, error)
	DeleteReview(ctx context.Context, actor Actor, id int64) error
	ListForTechnician(ctx context.Context, actor Actor, technicianID int64) ([]*Review, error)
	ListMine(ctx context.Context, actor Actor) ([]*Review, error)
}

// CouponService определяет операции журнала купонов
type CouponService interface {
	Validate(ctx context.Context, actor Actor, code string) (*Coupon, error)
	ValidateAndUse(ctx context.Context, actor Actor, code string) (*CouponSnapshot, error)
	CreateCoupon(ctx context.Context, actor Actor, c *Coupon) (*Coupon, error)
	ListCoupons(ctx context.Context, actor Actor) ([]*Coupon, error)
	UpdateCoupon(ctx context.Context, actor Actor, code string, c *Coupon) (*Coupon, error)
	DeleteCoupon(ctx context.Context, actor Actor, code string) error
}

// WalletService определяет операции кошелька владельца
type WalletService interface {
	GetWallet(ctx context.Context, actor Actor) (*Wallet, error)
	Deposit(ctx context.Context, actor Actor, amount int64, description string) (*Transaction, error)
	Withdraw(ctx context.Context, actor Actor, amount int64, description string) (*Transaction, error)
	ListTransactions(ctx context.Context, actor Actor) ([]*Transaction, error)
}

// PaymentMethodService определяет операции со способами оплаты
type PaymentMethodService interface {
	List(ctx context.Context, actor Actor) ([]*PaymentMethod, error)
	Get(ctx context.Context, actor Actor, id int64) (*PaymentMethod, error)
	Create(ctx context.Context, actor Actor, p *PaymentMethod) (*PaymentMethod, error)
	Update(ctx context.Context, actor Actor, id int64, p *PaymentMethod) (*PaymentMethod, error)
	Delete(ctx context.Context, actor Actor, id int64) error
}

// NotificationType представляет тип уведомления
type NotificationType string

const (
	NotificationEstimateSubmitted NotificationType = "ESTIMATE_SUBMITTED"
	NotificationEstimateAccepted  NotificationType = "ESTIMATE_ACCEPTED"
	NotificationEstimateRejected  NotificationType = "ESTIMATE_REJECTED"
	NotificationWorkCompleted     NotificationType = "WORK_COMPLETED"
	NotificationReportFiled       NotificationType = "REPORT_FILED"
	NotificationReviewPosted      NotificationType = "REVIEW_POSTED"
)

// Notification представляет уведомление, отправляемое вне основной операции
type Notification struct {
	ID               string           `json:"id"`
	Type             NotificationType `json:"type"`
	RecipientID      int64            `json:"recipientId"`
	ServiceRequestID int64            `json:"serviceRequestId"`
	Message          string           `json:"message"`
	CreatedAt        time.Time        `json:"createdDate"`
}

// Notifier принимает уведомления к отправке. Не блокирует и не возвращает ошибок:
// результат операции движка не зависит от доставки.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotificationSender доставляет одно уведомление получателю
type NotificationSender interface {
	Send(ctx context.Context, n Notification) error
}

package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Ограничения полей заявки
const (
	ItemNameMinLength         = 2
	ItemNameMaxLength         = 100
	IssueDescriptionMinLength = 10
	IssueDescriptionMaxLength = 500
	ServiceDateMaxDaysAhead   = 90
	RepairDetailsMinLength    = 20
)

// Ограничения отзыва
const (
	RatingMin              = 1
	RatingMax              = 5
	ReviewCommentMaxLength = 1000
)

// StartOfDay возвращает полночь дня t в его часовом поясе
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Validate проверяет поля заявки на момент now
func (in ServiceRequestInput) Validate(now time.Time) error {
	name := strings.TrimSpace(in.Item.Name)
	if n := utf8.RuneCountInString(name); n < ItemNameMinLength || n > ItemNameMaxLength {
		return InvalidInputf("item name must be %d-%d characters", ItemNameMinLength, ItemNameMaxLength)
	}
	if strings.TrimSpace(in.Item.Condition) == "" {
		return InvalidInputf("item condition is required")
	}
	desc := strings.TrimSpace(in.Item.IssueDescription)
	if n := utf8.RuneCountInString(desc); n < IssueDescriptionMinLength || n > IssueDescriptionMaxLength {
		return InvalidInputf("issue description must be %d-%d characters", IssueDescriptionMinLength, IssueDescriptionMaxLength)
	}

	tomorrow := StartOfDay(now).AddDate(0, 0, 1)
	latest := StartOfDay(now).AddDate(0, 0, ServiceDateMaxDaysAhead+1)
	if in.RequestedServiceDate.Before(tomorrow) {
		return InvalidInputf("service date must be at least tomorrow")
	}
	if !in.RequestedServiceDate.Before(latest) {
		return InvalidInputf("service date cannot be more than %d days from now", ServiceDateMaxDaysAhead)
	}

	if in.PaymentMethodID <= 0 {
		return InvalidInputf("payment method is required")
	}
	return nil
}

// Validate проверяет оценку: положительная цена и дата строго после сегодняшнего дня
func (in EstimateInput) Validate(now time.Time) error {
	if in.Cost <= 0 {
		return InvalidInputf("cost must be positive")
	}
	if in.CompletionDate.Before(StartOfDay(now).AddDate(0, 0, 1)) {
		return InvalidInputf("completion date must be in the future")
	}
	return nil
}

// Validate проверяет отчет: дата не в будущем и не раньше даты создания заявки
func (in ReportInput) Validate(now, requestCreated time.Time) error {
	if utf8.RuneCountInString(strings.TrimSpace(in.RepairDetails)) < RepairDetailsMinLength {
		return InvalidInputf("repair details must be at least %d characters", RepairDetailsMinLength)
	}
	if strings.TrimSpace(in.ResolutionSummary) == "" {
		return InvalidInputf("resolution summary is required")
	}
	if in.CompletionDate.IsZero() {
		return InvalidInputf("completion date is required")
	}
	if in.CompletionDate.After(now) {
		return InvalidInputf("completion date cannot be in the future")
	}
	if in.CompletionDate.Before(StartOfDay(requestCreated)) {
		return InvalidInputf("completion date cannot precede the request date")
	}
	return nil
}

// Validate проверяет параметры купона
func (c *Coupon) Validate() error {
	if c.DiscountValue <= 0 || c.DiscountValue > 1 {
		return InvalidInputf("discount value must be in (0, 1]")
	}
	if c.MaxUsage <= 0 {
		return InvalidInputf("max usage must be positive")
	}
	if c.UsageCount < 0 || c.UsageCount > c.MaxUsage {
		return InvalidInputf("max usage cannot be below current usage count")
	}
	if c.ExpiryDate.IsZero() {
		return InvalidInputf("expiry date is required")
	}
	return nil
}

// Validate проверяет способ оплаты
func (p *PaymentMethod) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return InvalidInputf("payment method name is required")
	}
	if strings.TrimSpace(p.Provider) == "" {
		return InvalidInputf("payment method provider is required")
	}
	return nil
}

// Validate проверяет оценку и комментарий отзыва
func (in ReviewInput) Validate() error {
	if in.Rating < RatingMin || in.Rating > RatingMax {
		return InvalidInputf("rating must be between %d and %d", RatingMin, RatingMax)
	}
	comment := strings.TrimSpace(in.Comment)
	if comment == "" {
		return InvalidInputf("review comment is required")
	}
	if utf8.RuneCountInString(comment) > ReviewCommentMaxLength {
		return InvalidInputf("review comment cannot exceed %d characters", ReviewCommentMaxLength)
	}
	return nil
}

package domain

import (
	"math"
	"time"
)

const basisPoints = 10000

// ApplyDiscount возвращает сумму после скидки. Скидка считается в базисных пунктах,
// чтобы результат не зависел от погрешности float64.
func ApplyDiscount(amount int64, discountValue float64) int64 {
	if discountValue <= 0 {
		return amount
	}
	bp := int64(math.Round(discountValue * basisPoints))
	if bp > basisPoints {
		bp = basisPoints
	}
	// amount*bp переполняет int64 на больших суммах, поэтому сумма делится на части
	return amount - (amount/basisPoints*bp + amount%basisPoints*bp/basisPoints)
}

// AmountDue возвращает сумму к оплате клиентом при завершении работ.
// Скидка купона применяется только здесь, а не к самой оценке.
func (sr *ServiceRequest) AmountDue(finalPrice int64) int64 {
	if sr.Coupon == nil {
		return finalPrice
	}
	return ApplyDiscount(finalPrice, sr.Coupon.DiscountValue)
}

// DisplayCost возвращает стоимость, показываемую пользователю:
// сырую стоимость оценки до завершения и итоговую после.
func (sr *ServiceRequest) DisplayCost() *int64 {
	if sr.Status == StatusCompleted && sr.FinalCost != nil {
		cost := *sr.FinalCost
		return &cost
	}
	if sr.Estimate != nil {
		cost := sr.Estimate.Cost
		return &cost
	}
	return nil
}

// DiscountPreview возвращает ожидаемую сумму со скидкой для отображения.
// Значение нигде не сохраняется.
func (sr *ServiceRequest) DiscountPreview() *int64 {
	if sr.Estimate == nil || sr.Coupon == nil {
		return nil
	}
	due := ApplyDiscount(sr.Estimate.Cost, sr.Coupon.DiscountValue)
	return &due
}

// Redeem проверяет купон и увеличивает счетчик использований.
// Вызывается только под блокировкой купона.
func (c *Coupon) Redeem(now time.Time) error {
	if err := c.Check(now); err != nil {
		return err
	}
	c.UsageCount++
	return nil
}

// Check проверяет срок действия и лимит использований без изменения купона
func (c *Coupon) Check(now time.Time) error {
	if now.After(c.ExpiryDate) {
		return ErrCouponExpired
	}
	if c.UsageCount >= c.MaxUsage {
		return ErrCouponExhausted
	}
	return nil
}

// Snapshot возвращает данные купона, привязываемые к заявке
func (c *Coupon) Snapshot() *CouponSnapshot {
	return &CouponSnapshot{Code: c.Code, DiscountValue: c.DiscountValue}
}

// Post применяет операцию к балансу кошелька и возвращает запись журнала.
// Баланс не может стать отрицательным.
func (w *Wallet) Post(txType TransactionType, amount int64, description string, now time.Time) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if txType.Sign() > 0 && amount > math.MaxInt64-w.Balance {
		return nil, InvalidInputf("balance overflow")
	}

	next := w.Balance + txType.Sign()*amount
	if next < 0 {
		return nil, ErrInsufficientFunds
	}
	w.Balance = next

	return &Transaction{
		WalletID:    w.ID,
		Type:        txType,
		Amount:      amount,
		Description: description,
		Timestamp:   now,
	}, nil
}

// SignedAmount возвращает сумму операции со знаком для пересчета баланса
func (t *Transaction) SignedAmount() int64 {
	return t.Type.Sign() * t.Amount
}

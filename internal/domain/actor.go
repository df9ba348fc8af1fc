package domain

// Role представляет роль аутентифицированного пользователя
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleTechnician Role = "TECHNICIAN"
	RoleAdmin      Role = "ADMIN"
)

// Valid проверяет, что роль известна
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleTechnician || r == RoleAdmin
}

// Actor представляет пользователя, от имени которого выполняется операция.
// Передается в каждую операцию движка явно.
type Actor struct {
	UserID int64 `json:"userId"`
	Role   Role  `json:"role"`
}

// Require возвращает ErrForbidden, если роль актора не входит в список
func (a Actor) Require(roles ...Role) error {
	for _, r := range roles {
		if a.Role == r {
			return nil
		}
	}
	return ErrForbidden
}

// IsAdmin сообщает, является ли актор администратором
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanView проверяет право чтения заявки
func (a Actor) CanView(sr *ServiceRequest) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleCustomer:
		return sr.CustomerID == a.UserID
	case RoleTechnician:
		if sr.Status == StatusPending {
			return true
		}
		if sr.TechnicianID != nil && *sr.TechnicianID == a.UserID {
			return true
		}
		return sr.Estimate != nil && sr.Estimate.TechnicianID == a.UserID
	}
	return false
}

// OwnsRequest проверяет, что актор - клиент-владелец заявки
func (a Actor) OwnsRequest(sr *ServiceRequest) bool {
	return a.Role == RoleCustomer && sr.CustomerID == a.UserID
}

// AssignedTo проверяет, что актор - назначенный на заявку техник
func (a Actor) AssignedTo(sr *ServiceRequest) bool {
	return a.Role == RoleTechnician && sr.TechnicianID != nil && *sr.TechnicianID == a.UserID
}

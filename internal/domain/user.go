package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	ShopIDs      []int64    `json:"shop_ids"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	UserShops  []int64
	jwt.RegisteredClaims
}

// CanAccessShop verifica se o usuário está vinculado à loja.
// Administradores acessam todas as lojas.
func (c *Claims) CanAccessShop(shopID int64, adminRoleID int) bool {
	if c == nil {
		return false
	}
	if c.UserRoleID == adminRoleID {
		return true
	}
	for _, id := range c.UserShops {
		if id == shopID {
			return true
		}
	}
	return false
}

package domain

import (
	"fmt"
	"time"
)

// Shop é uma loja do vendedor no marketplace
type Shop struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	APIToken  string    `json:"-"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName retorna o nome da loja ou um nome padrão a partir do ID
func (s Shop) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("Loja %d", s.ID)
}

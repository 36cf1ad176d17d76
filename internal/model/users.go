package model

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RolePartner  Role = "partner"
)

type User struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RegisterDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type TokenInfo struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Role  Role   `json:"role"`
}

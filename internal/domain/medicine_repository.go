package domain

import "context"

//go:generate mockgen -source=medicine_repository.go -destination=medicine_repository_mock.go -package=domain

type MedicineRepository interface {
	GetMedicinesForUser(ctx context.Context, userID string) ([]Medicine, error)
	GetMedicine(ctx context.Context, userID, medicineID string) (*Medicine, error)
	CreateMedicine(ctx context.Context, medicine *Medicine) error
	UpdateMedicine(ctx context.Context, medicine *Medicine) error
	DeleteMedicine(ctx context.Context, userID, medicineID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, userID string) (*User, error)
	ListUserIDs(ctx context.Context) ([]string, error)
	DeleteUser(ctx context.Context, userID string) error
}

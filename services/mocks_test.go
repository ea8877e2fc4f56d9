package services

import (
	"context"

	"bookstore/models"

	"github.com/stretchr/testify/mock"
)

type mockExternal struct {
	mock.Mock
}

func (m *mockExternal) BookExists(ctx context.Context, bookID int) *models.BookDetails {
	args := m.Called(bookID)
	book, _ := args.Get(0).(*models.BookDetails)
	return book
}

func (m *mockExternal) GetCartItems(ctx context.Context, token string) *models.CartData {
	args := m.Called(token)
	cart, _ := args.Get(0).(*models.CartData)
	return cart
}

func (m *mockExternal) RemoveFromCart(ctx context.Context, userID, bookID int, token string) models.APIResponse[any] {
	return m.Called(userID, bookID, token).Get(0).(models.APIResponse[any])
}

func (m *mockExternal) UpdateStock(ctx context.Context, bookID, quantity int, token string) models.APIResponse[*models.BookDetails] {
	return m.Called(bookID, quantity, token).Get(0).(models.APIResponse[*models.BookDetails])
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Insert(ctx context.Context, order models.Order) models.APIResponse[*models.Order] {
	return m.Called(order).Get(0).(models.APIResponse[*models.Order])
}

func (m *mockOrderRepo) FindByID(ctx context.Context, orderID string, userID int) models.APIResponse[*models.Order] {
	return m.Called(orderID, userID).Get(0).(models.APIResponse[*models.Order])
}

func (m *mockOrderRepo) Delete(ctx context.Context, orderID string, userID int) models.APIResponse[*models.Order] {
	return m.Called(orderID, userID).Get(0).(models.APIResponse[*models.Order])
}

func (m *mockOrderRepo) ListByUser(ctx context.Context, userID int) models.APIResponse[[]models.Order] {
	return m.Called(userID).Get(0).(models.APIResponse[[]models.Order])
}

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Add(ctx context.Context, userID int, req models.CustomerDetailsRequest) models.APIResponse[*models.CustomerDetails] {
	return m.Called(userID, req).Get(0).(models.APIResponse[*models.CustomerDetails])
}

func (m *mockCustomerRepo) ListByUser(ctx context.Context, userID int) models.APIResponse[[]models.CustomerDetails] {
	return m.Called(userID).Get(0).(models.APIResponse[[]models.CustomerDetails])
}

func (m *mockCustomerRepo) Delete(ctx context.Context, addressID string, userID int) models.APIResponse[*models.CustomerDetails] {
	return m.Called(addressID, userID).Get(0).(models.APIResponse[*models.CustomerDetails])
}

func (m *mockCustomerRepo) Update(ctx context.Context, addressID string, userID int, req models.CustomerDetailsRequest) models.APIResponse[*models.CustomerDetails] {
	return m.Called(addressID, userID, req).Get(0).(models.APIResponse[*models.CustomerDetails])
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, addressID string, userID int) models.APIResponse[*models.CustomerDetails] {
	return m.Called(addressID, userID).Get(0).(models.APIResponse[*models.CustomerDetails])
}

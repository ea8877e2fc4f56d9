package external

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *HTTPService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPService(Config{
		BookServiceURL: srv.URL + "/api/book/",
		CartServiceURL: srv.URL + "/api/cart",
	}, srv.Client())
}

func TestBookExists(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/api/book/1":
			_, _ = io.WriteString(w, `{"Success":true,"Message":"ok","Data":{"BookId":1,"Title":"Dune","Author":"Herbert","StockQuantity":5,"Price":19.99,"Image":"dune.png"}}`)
		case "/api/book/2":
			_, _ = io.WriteString(w, `{"success":false,"message":"Book not found","data":null}`)
		case "/api/book/3":
			_, _ = io.WriteString(w, `{not json`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	book := svc.BookExists(context.Background(), 1)
	require.NotNil(t, book)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, 5, book.StockQuantity)
	assert.True(t, decimal.RequireFromString("19.99").Equal(book.Price))

	assert.Nil(t, svc.BookExists(context.Background(), 2), "service said no")
	assert.Nil(t, svc.BookExists(context.Background(), 3), "malformed body")
	assert.Nil(t, svc.BookExists(context.Background(), 4), "non-success status")
}

func TestBookEndpointNormalisesBaseURL(t *testing.T) {
	for _, base := range []string{"http://catalog/api/book", "http://catalog/api/book/", "http://catalog/api/book//"} {
		svc := NewHTTPService(Config{BookServiceURL: base}, nil)
		assert.Equal(t, "http://catalog/api/book/5", svc.bookEndpoint(5), base)
	}
}

func TestBookExistsWithoutTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/book/5", r.URL.Path)
		_, _ = io.WriteString(w, `{"success":true,"message":"","data":{"bookId":5,"title":"Emma"}}`)
	}))
	t.Cleanup(srv.Close)

	svc := NewHTTPService(Config{BookServiceURL: srv.URL + "/api/book"}, srv.Client())

	book := svc.BookExists(context.Background(), 5)
	require.NotNil(t, book)
	assert.Equal(t, "Emma", book.Title)
}

func TestBookExistsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	svc := NewHTTPService(Config{BookServiceURL: url + "/api/book/"}, nil)
	assert.Nil(t, svc.BookExists(context.Background(), 1))
}

func TestGetCartItems(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cart", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"success":true,"message":"","data":{"cartItems":[{"bookId":1,"quantity":2,"price":"10.50"},{"bookId":7,"quantity":1,"price":3}],"totalQuantity":3,"totalPrice":24}}`)
	})

	cart := svc.GetCartItems(context.Background(), "good")
	require.NotNil(t, cart)
	require.Len(t, cart.CartItems, 2)
	assert.Equal(t, 1, cart.CartItems[0].BookID)
	assert.Equal(t, 2, cart.CartItems[0].Quantity)
	assert.Equal(t, 7, cart.CartItems[1].BookID)

	assert.Nil(t, svc.GetCartItems(context.Background(), "bad"))
	assert.Nil(t, svc.GetCartItems(context.Background(), ""))
}

func TestRemoveFromCart(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/cart/1":
			_, _ = io.WriteString(w, `{"success":true,"message":"Cart item deleted successfully"}`)
		case "/api/cart/2":
			_, _ = io.WriteString(w, `{"success":false,"message":"nope"}`)
		case "/api/cart/3":
			_, _ = io.WriteString(w, `<html>`)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	})

	ctx := context.Background()

	res := svc.RemoveFromCart(ctx, 10, 1, "tok")
	assert.True(t, res.Success)
	assert.Equal(t, "Cart item deleted successfully", res.Message)

	res = svc.RemoveFromCart(ctx, 10, 2, "tok")
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to remove item with ID 2", res.Message)

	res = svc.RemoveFromCart(ctx, 10, 3, "tok")
	assert.False(t, res.Success)
	assert.Equal(t, "Error deserializing response", res.Message)

	res = svc.RemoveFromCart(ctx, 10, 4, "tok")
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to delete item. Status Code: 502", res.Message)

	assert.False(t, svc.RemoveFromCart(ctx, 10, 1, "").Success)
}

func TestUpdateStock(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch r.URL.Path {
		case "/api/book/1":
			assert.Equal(t, 4, body["stockQuantity"])
			_, _ = io.WriteString(w, `{"success":true,"message":"Book updated","data":{"bookId":1,"stockQuantity":4}}`)
		case "/api/book/2":
			_, _ = io.WriteString(w, `{"success":false,"message":"denied"}`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	ctx := context.Background()

	res := svc.UpdateStock(ctx, 1, 4, "tok")
	require.True(t, res.Success)
	assert.Equal(t, 4, res.Data.StockQuantity)

	res = svc.UpdateStock(ctx, 2, 4, "tok")
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to update stock.", res.Message)

	res = svc.UpdateStock(ctx, 3, 4, "tok")
	assert.False(t, res.Success)
	assert.Equal(t, "HTTP request failed.", res.Message)
}

package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"bookstore/models"

	"github.com/rs/zerolog"
)

// Service talks to the catalog and cart services. Every method folds
// transport errors, non-2xx statuses and undecodable bodies into a nil or
// failure result; callers never see a distinction between them.
type Service interface {
	BookExists(ctx context.Context, bookID int) *models.BookDetails
	GetCartItems(ctx context.Context, token string) *models.CartData
	RemoveFromCart(ctx context.Context, userID, bookID int, token string) models.APIResponse[any]
	UpdateStock(ctx context.Context, bookID, quantity int, token string) models.APIResponse[*models.BookDetails]
}

type Config struct {
	BookServiceURL string
	CartServiceURL string
}

type HTTPService struct {
	client  *http.Client
	bookURL string
	cartURL string
}

var _ Service = (*HTTPService)(nil)

func NewHTTPService(cfg Config, client *http.Client) *HTTPService {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPService{
		client:  client,
		bookURL: strings.TrimRight(cfg.BookServiceURL, "/") + "/",
		cartURL: strings.TrimRight(cfg.CartServiceURL, "/"),
	}
}

func (s *HTTPService) bookEndpoint(bookID int) string {
	return s.bookURL + strconv.Itoa(bookID)
}

func (s *HTTPService) BookExists(ctx context.Context, bookID int) *models.BookDetails {
	log := zerolog.Ctx(ctx).With().Int("book_id", bookID).Logger()

	status, body, err := s.do(ctx, http.MethodGet, s.bookEndpoint(bookID), "", nil)
	if err != nil {
		log.Warn().Err(err).Msg("book lookup failed")
		return nil
	}
	if !isSuccess(status) {
		log.Warn().Int("status", status).Msg("book lookup returned non-success status")
		return nil
	}

	var resp models.APIResponse[*models.BookDetails]
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Warn().Err(err).Msg("book lookup response could not be decoded")
		return nil
	}
	if !resp.Success || resp.Data == nil {
		log.Info().Str("message", resp.Message).Msg("book not found")
		return nil
	}
	return resp.Data
}

func (s *HTTPService) GetCartItems(ctx context.Context, token string) *models.CartData {
	log := zerolog.Ctx(ctx)

	if token == "" {
		log.Warn().Msg("cart lookup skipped: no token")
		return nil
	}

	status, body, err := s.do(ctx, http.MethodGet, s.cartURL, token, nil)
	if err != nil {
		log.Warn().Err(err).Msg("cart lookup failed")
		return nil
	}
	if !isSuccess(status) {
		log.Warn().Int("status", status).Msg("cart lookup returned non-success status")
		return nil
	}

	var resp models.APIResponse[*models.CartData]
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Warn().Err(err).Msg("cart response could not be decoded")
		return nil
	}
	if !resp.Success {
		log.Info().Str("message", resp.Message).Msg("cart service refused lookup")
		return nil
	}
	return resp.Data
}

func (s *HTTPService) RemoveFromCart(ctx context.Context, userID, bookID int, token string) models.APIResponse[any] {
	log := zerolog.Ctx(ctx).With().Int("user_id", userID).Int("book_id", bookID).Logger()

	if token == "" {
		return models.Fail[any]("No token provided.")
	}

	status, body, err := s.do(ctx, http.MethodDelete, s.cartURL+"/"+strconv.Itoa(bookID), token, nil)
	if err != nil {
		log.Warn().Err(err).Msg("cart removal failed")
		return models.Fail[any]("HTTP request failed.")
	}
	if !isSuccess(status) {
		log.Warn().Int("status", status).Msg("cart removal returned non-success status")
		return models.Fail[any](fmt.Sprintf("Failed to delete item. Status Code: %d", status))
	}

	var resp models.APIResponse[any]
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Warn().Err(err).Msg("cart removal response could not be decoded")
		return models.Fail[any]("Error deserializing response")
	}
	if !resp.Success {
		return models.Fail[any](fmt.Sprintf("Failed to remove item with ID %d", bookID))
	}
	return resp
}

func (s *HTTPService) UpdateStock(ctx context.Context, bookID, quantity int, token string) models.APIResponse[*models.BookDetails] {
	log := zerolog.Ctx(ctx).With().Int("book_id", bookID).Int("stock_quantity", quantity).Logger()

	payload, err := json.Marshal(models.UpdateStockRequest{StockQuantity: quantity})
	if err != nil {
		return models.Fail[*models.BookDetails]("Failed to update stock.")
	}

	status, body, err := s.do(ctx, http.MethodPut, s.bookEndpoint(bookID), token, payload)
	if err != nil || !isSuccess(status) {
		log.Warn().Err(err).Int("status", status).Msg("stock update request failed")
		return models.Fail[*models.BookDetails]("HTTP request failed.")
	}

	var resp models.APIResponse[*models.BookDetails]
	if err := json.Unmarshal(body, &resp); err != nil || !resp.Success {
		log.Warn().Err(err).Msg("stock update rejected")
		return models.Fail[*models.BookDetails]("Failed to update stock.")
	}
	return resp
}

func (s *HTTPService) do(ctx context.Context, method, url, token string, payload []byte) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build %s %s: %w", method, url, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read %s %s: %w", method, url, err)
	}
	return resp.StatusCode, data, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

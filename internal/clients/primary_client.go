package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/rofexbuy/internal/domain"
)

const (
	// RemarketsURL base URL of the reMarkets simulation environment.
	RemarketsURL = "https://api.remarkets.primary.com.ar/"
	// DefaultMarketID market used when none is configured.
	DefaultMarketID = "ROFX"

	tokenHeader    = "X-Auth-Token"
	usernameHeader = "X-Username"
	passwordHeader = "X-Password"

	statusOK = "OK"

	marketDataDepth = 1
)

var (
	// ErrAuthentication is returned when the market rejects the credentials.
	ErrAuthentication = errors.New("authentication failed, incorrect user or password")
	// ErrAPI is returned when the market answers with an ERROR status.
	ErrAPI = errors.New("primary API error")
)

// PrimaryClient is a REST client for the Primary trading API.
type PrimaryClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPrimaryClient creates a client for the given base URL.
func NewPrimaryClient(baseURL string, httpClient *http.Client) *PrimaryClient {
	if baseURL == "" {
		baseURL = RemarketsURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &PrimaryClient{baseURL: baseURL, httpClient: httpClient}
}

// envelope fields shared by every REST response
type envelope struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	Description string `json:"description,omitempty"`
}

func (e envelope) err() error {
	if e.Status == statusOK {
		return nil
	}
	return errors.Wrapf(ErrAPI, "status %q: %s %s", e.Status, e.Message, e.Description)
}

type instrumentsResponse struct {
	envelope
	Instruments []instrument `json:"instruments"`
}

type instrument struct {
	InstrumentID struct {
		MarketID string `json:"marketId"`
		Symbol   string `json:"symbol"`
	} `json:"instrumentId"`
	CFICode string `json:"cficode"`
}

type marketDataResponse struct {
	envelope
	MarketData struct {
		LA *priceEntry  `json:"LA"`
		BI []priceEntry `json:"BI"`
	} `json:"marketData"`
}

type priceEntry struct {
	Price decimal.Decimal `json:"price"`
	Size  decimal.Decimal `json:"size"`
}

type newOrderResponse struct {
	envelope
	Order struct {
		ClientID    string `json:"clientId"`
		Proprietary string `json:"proprietary"`
	} `json:"order"`
}

// Authenticate exchanges user and password for a session token.
func (c *PrimaryClient) Authenticate(ctx context.Context, user, password string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"auth/getToken", nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create auth request")
	}
	req.Header.Set(usernameHeader, user)
	req.Header.Set(passwordHeader, password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to send auth request")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrapf(ErrAuthentication, "status code %d", resp.StatusCode)
	}

	token := resp.Header.Get(tokenHeader)
	if token == "" {
		return "", errors.Wrap(ErrAuthentication, "empty token")
	}

	return token, nil
}

// AllInstruments lists every instrument known to the market.
func (c *PrimaryClient) AllInstruments(ctx context.Context, token string) ([]domain.Instrument, error) {
	var resp instrumentsResponse
	if err := c.get(ctx, token, "rest/instruments/all", nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to get instruments")
	}

	instruments := make([]domain.Instrument, 0, len(resp.Instruments))
	for _, in := range resp.Instruments {
		instruments = append(instruments, domain.Instrument{
			ID: domain.InstrumentID{
				MarketID: in.InstrumentID.MarketID,
				Symbol:   domain.Symbol(in.InstrumentID.Symbol),
			},
			CFICode: in.CFICode,
		})
	}

	return instruments, nil
}

// MarketData fetches a snapshot of the requested entries for symbol.
func (c *PrimaryClient) MarketData(ctx context.Context, token, marketID string, symbol domain.Symbol, entries []domain.Entry) (domain.MarketData, error) {
	query := url.Values{}
	query.Set("marketId", marketID)
	query.Set("symbol", symbol.String())
	query.Set("entries", domain.JoinEntries(entries))
	query.Set("depth", strconv.Itoa(marketDataDepth))

	var resp marketDataResponse
	if err := c.get(ctx, token, "rest/marketdata/get", query, &resp); err != nil {
		return domain.MarketData{}, errors.Wrapf(err, "failed to get market data for %s", symbol)
	}

	md := domain.MarketData{Symbol: symbol}
	if la := resp.MarketData.LA; la != nil {
		md.Last = &domain.LastTrade{Price: la.Price, Size: la.Size}
	}
	for _, bid := range resp.MarketData.BI {
		md.Bids = append(md.Bids, domain.PriceLevel{Price: bid.Price, Size: bid.Size})
	}

	return md, nil
}

// NewSingleOrder sends an order on behalf of account.
func (c *PrimaryClient) NewSingleOrder(ctx context.Context, token, marketID, account string, order domain.Order) (domain.OrderAck, error) {
	query := url.Values{}
	query.Set("marketId", marketID)
	query.Set("symbol", order.Symbol.String())
	query.Set("price", order.Price.String())
	query.Set("orderQty", strconv.FormatInt(order.Size, 10))
	query.Set("ordType", string(order.Type))
	query.Set("side", string(order.Side))
	query.Set("timeInForce", string(order.TimeInForce))
	query.Set("account", account)
	query.Set("cancelPrevious", "false")
	query.Set("iceberg", "false")

	var resp newOrderResponse
	if err := c.get(ctx, token, "rest/order/newSingleOrder", query, &resp); err != nil {
		return domain.OrderAck{}, errors.Wrapf(err, "failed to send order %s", order.String())
	}

	return domain.OrderAck{
		ClientID:    resp.Order.ClientID,
		Proprietary: resp.Order.Proprietary,
	}, nil
}

type statusChecker interface {
	err() error
}

func (c *PrimaryClient) get(ctx context.Context, token, path string, query url.Values, out statusChecker) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set(tokenHeader, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "failed to unmarshal response")
	}

	return out.err()
}

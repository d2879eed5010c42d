package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"metalwatch/internal/domain"
	"metalwatch/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProcessor struct{ mock.Mock }

func (m *MockProcessor) Process(execID, text string) (domain.Dialect, string, bool) {
	args := m.Called(execID, text)
	dialect, _ := args.Get(0).(domain.Dialect)
	return dialect, args.String(1), args.Bool(2)
}

type MockQuoteStore struct{ mock.Mock }

func (m *MockQuoteStore) SetSpot(rec store.SpotRecord) { m.Called(rec) }

func (m *MockQuoteStore) Spot() (store.SpotRecord, bool) {
	args := m.Called()
	rec, _ := args.Get(0).(store.SpotRecord)
	return rec, args.Bool(1)
}

func (m *MockQuoteStore) SetCompany(company domain.Company, rec store.CompanyRecord) {
	m.Called(company, rec)
}

func (m *MockQuoteStore) Companies() (map[domain.Company]store.CompanyRecord, bool) {
	args := m.Called()
	records, _ := args.Get(0).(map[domain.Company]store.CompanyRecord)
	return records, args.Bool(1)
}

type MockReplyCache struct{ mock.Mock }

func (m *MockReplyCache) Get(messageSid string) (string, bool) {
	args := m.Called(messageSid)
	return args.String(0), args.Bool(1)
}

func (m *MockReplyCache) Set(messageSid, reply string) { m.Called(messageSid, reply) }

type errorJSON struct {
	Error string `json:"error"`
}

func newWebhookForm(t *testing.T, values url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// --- Webhook ---

func TestHandler_Webhook_FormBody(t *testing.T) {
	mockProcessor := new(MockProcessor)
	mockCache := new(MockReplyCache)
	h := NewHandler(mockProcessor, new(MockQuoteStore), mockCache)

	req := newWebhookForm(t, url.Values{
		"Body":       {"*Aluminium* 245.50 (+1.25)"},
		"MessageSid": {"SM100"},
	})
	rr := httptest.NewRecorder()

	mockCache.On("Get", "SM100").Return("", false).Once()
	mockProcessor.On("Process", mock.Anything, "*Aluminium* 245.50 (+1.25)").
		Return(domain.DialectSpotTicker, "spotPrice = 245.50", true).Once()
	mockCache.On("Set", "SM100", "spotPrice = 245.50").Return().Once()

	h.Webhook(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "text/xml", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	require.Contains(t, body, "<Response>")
	require.Contains(t, body, "<Message>")
	require.Contains(t, body, "spotPrice = 245.50")
	mockProcessor.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestHandler_Webhook_JSONBody(t *testing.T) {
	mockProcessor := new(MockProcessor)
	mockCache := new(MockReplyCache)
	h := NewHandler(mockProcessor, new(MockQuoteStore), mockCache)

	req := httptest.NewRequest(http.MethodPost, "/webhook",
		strings.NewReader(`{"Body":"hello","MessageSid":"SM200"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	mockCache.On("Get", "SM200").Return("", false).Once()
	mockProcessor.On("Process", mock.Anything, "hello").
		Return(domain.Dialect(""), "Sorry, could not parse data from the message.", false).Once()
	mockCache.On("Set", "SM200", "Sorry, could not parse data from the message.").Return().Once()

	h.Webhook(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Sorry, could not parse data from the message.")
	mockProcessor.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestHandler_Webhook_StatusPing(t *testing.T) {
	mockProcessor := new(MockProcessor)
	h := NewHandler(mockProcessor, new(MockQuoteStore), new(MockReplyCache))

	req := newWebhookForm(t, url.Values{"MessageStatus": {"delivered"}, "MessageSid": {"SM300"}})
	rr := httptest.NewRecorder()

	h.Webhook(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "OK", rr.Body.String())
	mockProcessor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHandler_Webhook_EmptyBody(t *testing.T) {
	mockProcessor := new(MockProcessor)
	h := NewHandler(mockProcessor, new(MockQuoteStore), new(MockReplyCache))

	req := newWebhookForm(t, url.Values{})
	rr := httptest.NewRecorder()

	h.Webhook(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "OK", rr.Body.String())
	mockProcessor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHandler_Webhook_ReplayedSidServesCachedReply(t *testing.T) {
	mockProcessor := new(MockProcessor)
	mockCache := new(MockReplyCache)
	h := NewHandler(mockProcessor, new(MockQuoteStore), mockCache)

	req := newWebhookForm(t, url.Values{
		"Body":       {"*Aluminium* 245.50 (+1.25)"},
		"MessageSid": {"SM100"},
	})
	rr := httptest.NewRecorder()

	mockCache.On("Get", "SM100").Return("spotPrice = 245.50", true).Once()

	h.Webhook(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "spotPrice = 245.50")
	mockProcessor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestHandler_Webhook_NoSidSkipsCache(t *testing.T) {
	mockProcessor := new(MockProcessor)
	mockCache := new(MockReplyCache)
	h := NewHandler(mockProcessor, new(MockQuoteStore), mockCache)

	req := newWebhookForm(t, url.Values{"Body": {"hello"}})
	rr := httptest.NewRecorder()

	mockProcessor.On("Process", mock.Anything, "hello").
		Return(domain.Dialect(""), "Sorry, could not parse data from the message.", false).Once()

	h.Webhook(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	mockCache.AssertNotCalled(t, "Get", mock.Anything)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	mockProcessor.AssertExpectations(t)
}

// --- GetSpotPrice ---

func TestHandler_GetSpotPrice_NotFound(t *testing.T) {
	mockStore := new(MockQuoteStore)
	h := NewHandler(new(MockProcessor), mockStore, new(MockReplyCache))

	mockStore.On("Spot").Return(store.SpotRecord{}, false).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/spot", nil)
	rr := httptest.NewRecorder()

	h.GetSpotPrice(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, domain.ErrNoSpotPrice.Error(), ej.Error)
	mockStore.AssertExpectations(t)
}

func TestHandler_GetSpotPrice_Success(t *testing.T) {
	mockStore := new(MockQuoteStore)
	h := NewHandler(new(MockProcessor), mockStore, new(MockReplyCache))

	change := decimal.RequireFromString("1.25")
	percent := decimal.RequireFromString("0.51")
	updatedAt := time.Date(2025, 5, 14, 15, 4, 5, 0, time.UTC)
	mockStore.On("Spot").Return(store.SpotRecord{
		Price:         decimal.RequireFromString("245.50"),
		Change:        &change,
		ChangePercent: &percent,
		Source:        domain.DialectSpotTicker,
		LastUpdated:   updatedAt,
	}, true).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/spot", nil)
	rr := httptest.NewRecorder()

	h.GetSpotPrice(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res GetSpotPriceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.True(t, res.SpotPrice.Equal(decimal.RequireFromString("245.50")))
	require.NotNil(t, res.PriceChange)
	require.True(t, res.PriceChange.Equal(change))
	require.NotNil(t, res.ChangePercentage)
	require.True(t, res.ChangePercentage.Equal(percent))
	require.Equal(t, "spot_ticker", res.Source)
	require.True(t, res.LastUpdated.Equal(updatedAt))
	mockStore.AssertExpectations(t)
}

func TestHandler_GetSpotPrice_SettlementSourcedHasNullChange(t *testing.T) {
	mockStore := new(MockQuoteStore)
	h := NewHandler(new(MockProcessor), mockStore, new(MockReplyCache))

	mockStore.On("Spot").Return(store.SpotRecord{
		Price:       decimal.RequireFromString("248.75"),
		Source:      domain.DialectCashSettlement,
		LastUpdated: time.Date(2025, 5, 14, 15, 4, 5, 0, time.UTC),
	}, true).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/spot", nil)
	rr := httptest.NewRecorder()

	h.GetSpotPrice(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res GetSpotPriceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Nil(t, res.PriceChange)
	require.Nil(t, res.ChangePercentage)
	require.Equal(t, "cash_settlement", res.Source)
}

// --- GetCompanyUpdates ---

func TestHandler_GetCompanyUpdates_NotFound(t *testing.T) {
	mockStore := new(MockQuoteStore)
	h := NewHandler(new(MockProcessor), mockStore, new(MockReplyCache))

	mockStore.On("Companies").Return(map[domain.Company]store.CompanyRecord(nil), false).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/companies", nil)
	rr := httptest.NewRecorder()

	h.GetCompanyUpdates(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, domain.ErrNoCompanyUpdates.Error(), ej.Error)
	mockStore.AssertExpectations(t)
}

func TestHandler_GetCompanyUpdates_AllSlotsPresent(t *testing.T) {
	mockStore := new(MockQuoteStore)
	h := NewHandler(new(MockProcessor), mockStore, new(MockReplyCache))

	mockStore.On("Companies").Return(map[domain.Company]store.CompanyRecord{
		domain.CompanyVedanta: {
			Amount:        decimal.NewFromInt(2500),
			Sign:          "-",
			Unit:          "PMT",
			EffectiveDate: "08/05/2025",
			LastUpdated:   time.Date(2025, 5, 8, 12, 30, 0, 0, time.UTC),
		},
	}, true).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/companies", nil)
	rr := httptest.NewRecorder()

	h.GetCompanyUpdates(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res map[string]*CompanyUpdateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res, 3)

	require.NotNil(t, res["Vedanta"])
	require.True(t, res["Vedanta"].Amount.Equal(decimal.NewFromInt(2500)))
	require.Equal(t, "-", res["Vedanta"].Sign)
	require.Equal(t, "08/05/2025", res["Vedanta"].EffectiveDate)
	require.Nil(t, res["Hindalco"])
	require.Nil(t, res["NALCO"])
	mockStore.AssertExpectations(t)
}

// --- plain text endpoints ---

func TestHandler_PlainTextEndpoints(t *testing.T) {
	h := NewHandler(new(MockProcessor), new(MockQuoteStore), new(MockReplyCache))

	cases := []struct {
		name string
		call func(http.ResponseWriter, *http.Request)
		want string
	}{
		{name: "home", call: h.Home, want: "WhatsApp Metal Price Parser is running!"},
		{name: "webhook info", call: h.WebhookInfo, want: "Webhook endpoint is working!"},
		{name: "status info", call: h.StatusInfo, want: "Status endpoint is working!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			tc.call(rr, req)
			require.Equal(t, http.StatusOK, rr.Code)
			require.Contains(t, rr.Body.String(), tc.want)
		})
	}
}

func TestHandler_Status_Post(t *testing.T) {
	h := NewHandler(new(MockProcessor), new(MockQuoteStore), new(MockReplyCache))

	req := httptest.NewRequest(http.MethodPost, "/status",
		strings.NewReader(url.Values{"MessageStatus": {"sent"}, "MessageSid": {"SM400"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()

	h.Status(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "OK", rr.Body.String())
}
